package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fransit/francheese-website1/internal/middleware"
	"github.com/fransit/francheese-website1/internal/model"
	"github.com/fransit/francheese-website1/internal/service"
)

type OrderHTTP struct {
	Orders service.OrderService
}

func NewOrderHTTP(orders service.OrderService) *OrderHTTP {
	return &OrderHTTP{Orders: orders}
}

type createOrderReq struct {
	Items []model.OrderItem `json:"items"`
	Total float64           `json:"total"`
}

func (h *OrderHTTP) Create(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	order, err := h.Orders.Place(middleware.UserID(c), req.Items, req.Total)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, order)
}
