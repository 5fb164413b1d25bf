// Package store holds all application state in process memory. Nothing
// survives a restart. Lookups are linear scans over slices; every access
// goes through one mutex so handlers may run on parallel goroutines.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fransit/francheese-website1/internal/model"
)

type Store struct {
	mu       sync.Mutex
	users    []model.User
	products []model.Product
	orders   []model.Order

	now   func() time.Time
	newID func(prefix string) string
}

func New() *Store {
	return NewWith(time.Now, defaultID)
}

// NewWith lets tests pin the clock and the id generator.
func NewWith(now func() time.Time, newID func(prefix string) string) *Store {
	return &Store{now: now, newID: newID}
}

func defaultID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// ---------------------------------------------------
// Users
// ---------------------------------------------------

// CreateUser appends u, assigning an id and creation time unless the caller
// (e.g. the seed routine) set them already.
func (s *Store) CreateUser(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = s.newID("user")
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}
	if u.Purchases == nil {
		u.Purchases = []string{}
	}
	s.users = append(s.users, u)
	return u
}

func (s *Store) UserByID(id string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// UserByEmail matches case-insensitively; stored emails are already lowercased.
func (s *Store) UserByEmail(email string) (model.User, bool) {
	email = strings.ToLower(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}

func (s *Store) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// UpdateUser applies fn to the matching record under the store lock, so the
// read-modify-write is one atomic step. Returns the updated record.
func (s *Store) UpdateUser(id string, fn func(*model.User)) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			fn(&s.users[i])
			return s.users[i], true
		}
	}
	return model.User{}, false
}

func (s *Store) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// ---------------------------------------------------
// Products
// ---------------------------------------------------

func (s *Store) CreateProduct(p model.Product) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = s.newID("prod")
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	s.products = append(s.products, p)
	return p
}

func (s *Store) ProductByID(id string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func (s *Store) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) UpdateProduct(id string, fn func(*model.Product)) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			fn(&s.products[i])
			return s.products[i], true
		}
	}
	return model.Product{}, false
}

func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// ---------------------------------------------------
// Orders
// ---------------------------------------------------

func (s *Store) CreateOrder(o model.Order) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = s.newID("order")
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = s.now()
	}
	s.orders = append(s.orders, o)
	return o
}

func (s *Store) OrdersByUser(userID string) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}
