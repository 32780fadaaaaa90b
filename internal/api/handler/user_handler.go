package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gamehub/internal/api/dto"
	"gamehub/internal/api/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/:user_id", h.Profile)
}

type userSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *UserHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, err := h.svc.GetUsers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}

	out := make([]userSummary, 0, len(users))
	for _, u := range users {
		out = append(out, userSummary{ID: u.ID, Username: u.Username, Role: u.Role})
	}
	c.JSON(http.StatusOK, out)
}

type userProfileResponse struct {
	User    userSummary           `json:"user"`
	Library *dto.LibraryResponse  `json:"library"`
	Reviews []*dto.ReviewResponse `json:"reviews"`
	Ratings []*dto.RatingResponse `json:"ratings"`
}

func (h *UserHandler) Profile(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	details, err := h.svc.GetUserDetails(ctx, c.Param("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}

	resp := userProfileResponse{
		User: userSummary{
			ID:       details.User.ID,
			Username: details.User.Username,
			Role:     details.User.Role,
		},
		Reviews: make([]*dto.ReviewResponse, 0, len(details.Reviews)),
		Ratings: make([]*dto.RatingResponse, 0, len(details.Ratings)),
	}
	if details.Library != nil {
		lib := dto.FromModelToLibraryResponse(details.Library)
		resp.Library = &lib
	}
	for i := range details.Reviews {
		resp.Reviews = append(resp.Reviews, dto.FromModelToReviewResponse(&details.Reviews[i]))
	}
	for i := range details.Ratings {
		resp.Ratings = append(resp.Ratings, dto.FromModelToRatingResponse(&details.Ratings[i]))
	}
	c.JSON(http.StatusOK, resp)
}
