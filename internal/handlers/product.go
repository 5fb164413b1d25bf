package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fransit/francheese-website1/internal/model"
	"github.com/fransit/francheese-website1/internal/store"
)

type ProductHTTP struct {
	Store *store.Store
}

func NewProductHTTP(st *store.Store) *ProductHTTP {
	return &ProductHTTP{Store: st}
}

type createProductReq struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	VideoURL    string   `json:"videoUrl"`
	FileURL     string   `json:"fileUrl"`
	Features    []string `json:"features"`
	PointsCost  int      `json:"pointsCost"`
	Version     string   `json:"version"`
}

// updateProductReq is a patch: only fields present in the body are applied.
type updateProductReq struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Image       *string   `json:"image"`
	Category    *string   `json:"category"`
	Stock       *int      `json:"stock"`
	VideoURL    *string   `json:"videoUrl"`
	FileURL     *string   `json:"fileUrl"`
	Features    *[]string `json:"features"`
	PointsCost  *int      `json:"pointsCost"`
	Version     *string   `json:"version"`
	Sold        *int      `json:"sold"`
}

func (h *ProductHTTP) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Products())
}

func (h *ProductHTTP) Get(c *gin.Context) {
	p, ok := h.Store.ProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHTTP) Create(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if req.Version == "" {
		req.Version = "1.0.0"
	}
	p := h.Store.CreateProduct(model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Stock:       req.Stock,
		VideoURL:    req.VideoURL,
		FileURL:     req.FileURL,
		Features:    req.Features,
		PointsCost:  req.PointsCost,
		Version:     req.Version,
	})
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHTTP) Update(c *gin.Context) {
	var req updateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	p, ok := h.Store.UpdateProduct(c.Param("id"), func(p *model.Product) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Image != nil {
			p.Image = *req.Image
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		if req.VideoURL != nil {
			p.VideoURL = *req.VideoURL
		}
		if req.FileURL != nil {
			p.FileURL = *req.FileURL
		}
		if req.Features != nil {
			p.Features = *req.Features
		}
		if req.PointsCost != nil {
			p.PointsCost = *req.PointsCost
		}
		if req.Version != nil {
			p.Version = *req.Version
		}
		if req.Sold != nil {
			p.Sold = *req.Sold
		}
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHTTP) Delete(c *gin.Context) {
	if !h.Store.DeleteProduct(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
