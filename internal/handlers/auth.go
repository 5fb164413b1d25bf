// Package handlers contains the gin route handlers. Each handler struct
// wraps the services or store it needs; response shapes are plain JSON with
// `message` (or `errors` for registration validation) on failure.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fransit/francheese-website1/internal/middleware"
	"github.com/fransit/francheese-website1/internal/model"
	"github.com/fransit/francheese-website1/internal/service"
	"github.com/fransit/francheese-website1/internal/store"
)

type AuthHTTP struct {
	Auth   service.AuthService
	Orders service.OrderService
	Store  *store.Store
}

func NewAuthHTTP(auth service.AuthService, orders service.OrderService, st *store.Store) *AuthHTTP {
	return &AuthHTTP{Auth: auth, Orders: orders, Store: st}
}

type registerReq struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userView is the account projection returned by register/login; it omits
// the purchase list and timestamps.
func userView(u model.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"isAdmin":    u.IsAdmin,
		"points":     u.Points,
		"totalSpent": u.TotalSpent,
		"verified":   u.Verified,
	}
}

// validationErrors flattens binding failures into the `{errors:[...]}`
// shape registration clients expect.
func validationErrors(err error) []gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []gin.H{{"message": err.Error()}}
	}
	out := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, gin.H{"field": fe.Field(), "message": fe.Tag()})
	}
	return out
}

func (h *AuthHTTP) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErrors(err)})
		return
	}

	u, err := h.Auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully! You can now login.",
		"user":    userView(u),
	})
}

func (h *AuthHTTP) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	token, u, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userView(u)})
}

// Profile returns the caller's account with `purchases` replaced by the
// deduplicated product ids drawn from all of their orders.
func (h *AuthHTTP) Profile(c *gin.Context) {
	u, ok := h.Store.UserByID(middleware.UserID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"isAdmin":    u.IsAdmin,
		"purchases":  h.Orders.PurchasedProductIDs(u.ID),
		"points":     u.Points,
		"totalSpent": u.TotalSpent,
		"verified":   u.Verified,
	})
}
