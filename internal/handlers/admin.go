package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fransit/francheese-website1/internal/model"
	"github.com/fransit/francheese-website1/internal/store"
)

type AdminHTTP struct {
	Store *store.Store
}

func NewAdminHTTP(st *store.Store) *AdminHTTP {
	return &AdminHTTP{Store: st}
}

// updateUserReq is a patch: name and email apply only when non-empty, the
// rest only when present in the body.
type updateUserReq struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	IsAdmin    *bool    `json:"isAdmin"`
	Points     *int     `json:"points"`
	TotalSpent *float64 `json:"totalSpent"`
}

// ListUsers marshals the full records; the password hash is excluded by the
// model's json tags.
func (h *AdminHTTP) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Users())
}

func (h *AdminHTTP) UpdateUser(c *gin.Context) {
	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	_, ok := h.Store.UpdateUser(c.Param("id"), func(u *model.User) {
		if req.Name != "" {
			u.Name = req.Name
		}
		if req.Email != "" {
			u.Email = strings.ToLower(req.Email)
		}
		if req.IsAdmin != nil {
			u.IsAdmin = *req.IsAdmin
		}
		if req.Points != nil {
			u.Points = *req.Points
		}
		if req.TotalSpent != nil {
			u.TotalSpent = *req.TotalSpent
		}
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (h *AdminHTTP) DeleteUser(c *gin.Context) {
	if !h.Store.DeleteUser(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
