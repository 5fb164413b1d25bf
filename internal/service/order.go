package service

import (
	"github.com/sirupsen/logrus"

	"github.com/fransit/francheese-website1/internal/model"
	"github.com/fransit/francheese-website1/internal/store"
)

type OrderService interface {
	Place(userID string, items []model.OrderItem, total float64) (model.Order, error)
	// PurchasedProductIDs derives the deduplicated set of product ids across
	// all of the user's orders, in first-seen order.
	PurchasedProductIDs(userID string) []string
}

type orderService struct {
	store *store.Store
	log   *logrus.Logger
}

func NewOrderService(st *store.Store, log *logrus.Logger) OrderService {
	return &orderService{store: st, log: log}
}

func (s *orderService) Place(userID string, items []model.OrderItem, total float64) (model.Order, error) {
	if items == nil {
		items = []model.OrderItem{}
	}
	order := s.store.CreateOrder(model.Order{
		UserID: userID,
		Items:  items,
		Total:  total,
		Status: model.OrderStatusPending,
	})

	// Accrue loyalty: 1 point per $10 spent. The purchaser may have been
	// deleted by an admin mid-flight; the order still stands.
	s.store.UpdateUser(userID, func(u *model.User) {
		u.Purchases = append(u.Purchases, order.ID)
		u.TotalSpent += total
		u.Points += int(total / 10)
	})

	s.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user_id":  userID,
		"total":    total,
	}).Info("order placed")

	return order, nil
}

func (s *orderService) PurchasedProductIDs(userID string) []string {
	ids := []string{}
	seen := make(map[string]bool)
	for _, o := range s.store.OrdersByUser(userID) {
		for _, it := range o.Items {
			if !seen[it.Product] {
				seen[it.Product] = true
				ids = append(ids, it.Product)
			}
		}
	}
	return ids
}
