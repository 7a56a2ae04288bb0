package repository

import (
	"context"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/jackc/pgx/v5"
)

type MealRepository interface {
	List(ctx context.Context) ([]domain.MealOption, error)
	GetByID(ctx context.Context, id int64) (*domain.MealOption, error)
	Create(ctx context.Context, meal *domain.MealOption) error
	Update(ctx context.Context, meal *domain.MealOption) error
	Delete(ctx context.Context, id int64) error

	Attach(ctx context.Context, class domain.FareClass, flightID, mealID int64) error
	Detach(ctx context.Context, class domain.FareClass, flightID, mealID int64) error
	ListForOffering(ctx context.Context, class domain.FareClass, flightID int64) ([]domain.MealOption, error)
}

type PGMealRepository struct {
	db DB
}

func NewMealRepository(db DB) MealRepository {
	return &PGMealRepository{db: db}
}

const mealColumns = `id, snack, meal_type, description, (cost*100)::bigint`

func scanMeal(row pgx.Row, m *domain.MealOption) error {
	return row.Scan(&m.ID, &m.Snack, &m.MealType, &m.Description, &m.Cost)
}

func (r *PGMealRepository) List(ctx context.Context) ([]domain.MealOption, error) {
	rows, err := r.db.Query(ctx, `SELECT `+mealColumns+` FROM mealoption ORDER BY id`)
	if err != nil {
		return nil, readErr("meals", err)
	}
	return collect(rows, func(rows pgx.Rows, m *domain.MealOption) error { return scanMeal(rows, m) })
}

func (r *PGMealRepository) GetByID(ctx context.Context, id int64) (*domain.MealOption, error) {
	var m domain.MealOption
	if err := scanMeal(r.db.QueryRow(ctx, `SELECT `+mealColumns+` FROM mealoption WHERE id=$1`, id), &m); err != nil {
		return nil, readErr("meal", err)
	}
	return &m, nil
}

func (r *PGMealRepository) Create(ctx context.Context, meal *domain.MealOption) error {
	row := r.db.QueryRow(ctx, `INSERT INTO mealoption (snack, meal_type, description, cost)
		VALUES ($1, $2, $3, $4::bigint::numeric/100)
		RETURNING `+mealColumns, meal.Snack, meal.MealType, meal.Description, int64(meal.Cost))
	if err := scanMeal(row, meal); err != nil {
		return writeErr("meal", err)
	}
	return nil
}

func (r *PGMealRepository) Update(ctx context.Context, meal *domain.MealOption) error {
	row := r.db.QueryRow(ctx, `UPDATE mealoption SET snack=$1, meal_type=$2, description=$3, cost=$4::bigint::numeric/100
		WHERE id=$5
		RETURNING `+mealColumns, meal.Snack, meal.MealType, meal.Description, int64(meal.Cost), meal.ID)
	if err := scanMeal(row, meal); err != nil {
		return writeErr("meal", err)
	}
	return nil
}

// Delete also drops the meal from every offering. Meals chosen by a
// reservation are kept.
func (r *PGMealRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM mealoption WHERE id=$1`, id)
	if err != nil {
		return deleteErr("meal", err)
	}
	return affected("meal", tag)
}

func (r *PGMealRepository) Attach(ctx context.Context, class domain.FareClass, flightID, mealID int64) error {
	_, assocTable, assocColumn, err := offeringTable(class)
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, `INSERT INTO `+assocTable+` (`+assocColumn+`, meal_option_id) VALUES ($1, $2)`, flightID, mealID); err != nil {
		return writeErr("meal association", err)
	}
	return nil
}

func (r *PGMealRepository) Detach(ctx context.Context, class domain.FareClass, flightID, mealID int64) error {
	_, assocTable, assocColumn, err := offeringTable(class)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM `+assocTable+` WHERE `+assocColumn+`=$1 AND meal_option_id=$2`, flightID, mealID)
	if err != nil {
		return deleteErr("meal association", err)
	}
	return affected("meal association", tag)
}

func (r *PGMealRepository) ListForOffering(ctx context.Context, class domain.FareClass, flightID int64) ([]domain.MealOption, error) {
	_, assocTable, assocColumn, err := offeringTable(class)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT m.id, m.snack, m.meal_type, m.description, (m.cost*100)::bigint
		FROM `+assocTable+` a
		JOIN mealoption m ON m.id = a.meal_option_id
		WHERE a.`+assocColumn+`=$1
		ORDER BY m.id`, flightID)
	if err != nil {
		return nil, readErr("offering meals", err)
	}
	return collect(rows, func(rows pgx.Rows, m *domain.MealOption) error { return scanMeal(rows, m) })
}

var _ MealRepository = (*PGMealRepository)(nil)
