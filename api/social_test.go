package api

import (
	"net/http"
	"testing"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/service/social"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSocialHandler_follow_Twice(t *testing.T) {
	mockService := &MockSocialUseCase{}
	handler := NewSocialHandler(mockService)

	mockService.On("Follow", mock.Anything, int64(1), int64(2)).Return(nil).Once()
	mockService.On("Follow", mock.Anything, int64(1), int64(2)).Return(domain.Conflict("already following this user")).Once()

	c, w := newContext(http.MethodPost, "/social/follows", `{"user_id":1,"follower_id":2}`)
	handler.follow(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = newContext(http.MethodPost, "/social/follows", `{"user_id":1,"follower_id":2}`)
	handler.follow(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"conflict: already following this user"}`, w.Body.String())
}

func TestSocialHandler_count(t *testing.T) {
	mockService := &MockSocialUseCase{}
	handler := NewSocialHandler(mockService)

	mockService.On("CountFollowers", mock.Anything, int64(1)).Return(int64(3), nil)

	c, w := newContext(http.MethodGet, "/social/users/1/followers/count", "", gin.Param{Key: "id", Value: "1"})
	handler.count(mockService.CountFollowers)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":3}`, w.Body.String())
}

func TestSocialHandler_vote(t *testing.T) {
	mockService := &MockSocialUseCase{}
	handler := NewSocialHandler(mockService)

	mockService.On("Vote", mock.Anything, social.VoteInput{PostID: 5, UserID: 2, Kind: "up"}).Return(nil).Once()

	c, w := newContext(http.MethodPost, "/social/posts/5/votes", `{"user_id":2,"kind":"up"}`, gin.Param{Key: "id", Value: "5"})
	handler.vote(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}
