package users

import (
	"context"
	"strings"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/repository"
	"github.com/Domenick1991/altera/internal/validation"
	"github.com/sirupsen/logrus"
)

type UserUseCase interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, input UserInput) (*domain.User, error)
	// Sync is called on sign-in. It returns the user for the email, creating
	// a non-admin one the first time.
	Sync(ctx context.Context, input SyncInput) (*domain.User, error)
	Update(ctx context.Context, id int64, input UserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type UserInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  bool   `json:"role"`
}

type SyncInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domain.Invalid("email is required")
	}
	return s.repo.GetByEmail(ctx, email)
}

func (s *UserService) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	user := &domain.User{Name: input.Name, Email: strings.ToLower(input.Email), Role: input.Role}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Sync(ctx context.Context, input SyncInput) (*domain.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	user, created, err := s.repo.Ensure(ctx, input.Name, strings.ToLower(input.Email))
	if err != nil {
		return nil, err
	}
	if created {
		logrus.WithField("user_id", user.ID).Info("user registered")
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int64, input UserInput) (*domain.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	user := &domain.User{ID: id, Name: input.Name, Email: strings.ToLower(input.Email), Role: input.Role}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var _ UserUseCase = (*UserService)(nil)
