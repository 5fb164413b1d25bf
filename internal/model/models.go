package model

import "time"

// User is an account record. Password holds the bcrypt hash and is never
// serialized. Purchases holds order ids, in placement order.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	IsAdmin    bool      `json:"isAdmin"`
	Purchases  []string  `json:"purchases"`
	Points     int       `json:"points"`
	TotalSpent float64   `json:"totalSpent"`
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured"`
	VideoURL    string   `json:"videoUrl"`
	FileURL     string   `json:"fileUrl"`
	Features    []string `json:"features"`
	PointsCost  int      `json:"pointsCost"`
	Version     string   `json:"version"`
	Sold        int      `json:"sold"`
}

// OrderItem comes straight from the client payload at checkout; the product
// reference is not cross-checked against the catalog.
type OrderItem struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

const OrderStatusPending = "pending"

type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}
