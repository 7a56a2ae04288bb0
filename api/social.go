package api

import (
	"context"
	"net/http"

	"github.com/Domenick1991/altera/internal/service/social"
	"github.com/gin-gonic/gin"
)

type SocialHandler struct {
	service social.SocialUseCase
}

func NewSocialHandler(service social.SocialUseCase) *SocialHandler {
	return &SocialHandler{service: service}
}

func (h *SocialHandler) Register(public, _ *gin.RouterGroup) {
	g := public.Group("/social")

	g.POST("/follows", h.follow)
	g.DELETE("/follows/:user_id/:follower_id", h.unfollow)

	g.GET("/users/:id/followers", h.followers)
	g.GET("/users/:id/following", h.following)
	g.GET("/users/:id/followers/count", h.count(h.service.CountFollowers))
	g.GET("/users/:id/following/count", h.count(h.service.CountFollowing))
	g.GET("/users/:id/posts", h.posts)
	g.GET("/users/:id/posts/count", h.count(h.service.CountPosts))
	g.GET("/users/:id/feed", h.feed)

	g.POST("/posts", h.createPost)
	g.PUT("/posts/:id", h.updatePost)
	g.DELETE("/posts/:id", h.deletePost)

	g.POST("/posts/:id/votes", h.vote)
	g.GET("/posts/:id/votes", h.voteTotals)

	g.POST("/posts/:id/comments", h.addComment)
	g.GET("/posts/:id/comments", h.comments)
	g.PUT("/comments/:id", h.updateComment)
	g.DELETE("/comments/:id", h.deleteComment)
}

type followRequest struct {
	UserID     int64 `json:"user_id"`
	FollowerID int64 `json:"follower_id"`
}

func (h *SocialHandler) follow(c *gin.Context) {
	var req followRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.service.Follow(c.Request.Context(), req.UserID, req.FollowerID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user_id": req.UserID, "follower_id": req.FollowerID})
}

func (h *SocialHandler) unfollow(c *gin.Context) {
	userID, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	followerID, ok := paramID(c, "follower_id")
	if !ok {
		return
	}
	if err := h.service.Unfollow(c.Request.Context(), userID, followerID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SocialHandler) followers(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	list, err := h.service.ListFollowerNames(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SocialHandler) following(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	list, err := h.service.ListFollowingNames(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SocialHandler) count(fn func(context.Context, int64) (int64, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		n, err := fn(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": n})
	}
}

func (h *SocialHandler) posts(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	list, err := h.service.ListPosts(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// feed lists posts by the users id follows.
func (h *SocialHandler) feed(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	list, err := h.service.Feed(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SocialHandler) createPost(c *gin.Context) {
	var input social.PostInput
	if !bindJSON(c, &input) {
		return
	}
	post, err := h.service.CreatePost(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

type contentRequest struct {
	Content string `json:"content"`
}

func (h *SocialHandler) updatePost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req contentRequest
	if !bindJSON(c, &req) {
		return
	}
	post, err := h.service.UpdatePost(c.Request.Context(), id, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *SocialHandler) deletePost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeletePost(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type voteRequest struct {
	UserID int64  `json:"user_id"`
	Kind   string `json:"kind"`
}

func (h *SocialHandler) vote(c *gin.Context) {
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req voteRequest
	if !bindJSON(c, &req) {
		return
	}
	input := social.VoteInput{PostID: postID, UserID: req.UserID, Kind: req.Kind}
	if err := h.service.Vote(c.Request.Context(), input); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *SocialHandler) voteTotals(c *gin.Context) {
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}
	totals, err := h.service.VoteTotals(c.Request.Context(), postID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

type commentRequest struct {
	UserID  int64  `json:"user_id"`
	Content string `json:"comment_content"`
}

func (h *SocialHandler) addComment(c *gin.Context) {
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req commentRequest
	if !bindJSON(c, &req) {
		return
	}
	comment, err := h.service.AddComment(c.Request.Context(), social.CommentInput{
		PostID:  postID,
		UserID:  req.UserID,
		Content: req.Content,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *SocialHandler) comments(c *gin.Context) {
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}
	list, err := h.service.ListComments(c.Request.Context(), postID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SocialHandler) updateComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Content string `json:"comment_content"`
	}
	if !bindJSON(c, &req) {
		return
	}
	comment, err := h.service.UpdateComment(c.Request.Context(), id, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *SocialHandler) deleteComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteComment(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
