package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fransit/francheese-website1/internal/handlers"
	"github.com/fransit/francheese-website1/internal/middleware"
	"github.com/fransit/francheese-website1/internal/model"
	"github.com/fransit/francheese-website1/internal/service"
	"github.com/fransit/francheese-website1/internal/store"
)

// Bootstrap admin credentials: admin@francheese.com / admin123.
const (
	seedAdminID    = "admin-1"
	seedAdminEmail = "admin@francheese.com"
	seedAdminHash  = "$2a$10$IHVc02MsEnnbRQGyaZUtw.0hnAJr3mlGiCE2UlFYP3tJ3n2PVcoAS"
)

func NewServer(cfg Config, log *logrus.Logger) *gin.Engine {
	st := store.New()
	seed(st)
	return newRouter(cfg, st, log)
}

func seed(st *store.Store) {
	st.CreateUser(model.User{
		ID:       seedAdminID,
		Name:     "Admin",
		Email:    seedAdminEmail,
		Password: seedAdminHash,
		IsAdmin:  true,
		Verified: true,
	})
}

func newRouter(cfg Config, st *store.Store, log *logrus.Logger) *gin.Engine {
	auth := service.NewAuthService(st, cfg.JWTSecret, cfg.AdminGrantEmail, log)
	orders := service.NewOrderService(st, log)

	limiter := middleware.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax, log)
	limiter.StartSweep(cfg.RateLimitWindow)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		gin.Logger(),
		gin.CustomRecovery(func(c *gin.Context, _ any) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}),
		middleware.CORS(),
		limiter.Handler(),
	)

	authed := middleware.RequireAuth(auth)
	admin := middleware.RequireAdmin()

	authH := handlers.NewAuthHTTP(auth, orders, st)
	productH := handlers.NewProductHTTP(st)
	adminH := handlers.NewAdminHTTP(st)
	orderH := handlers.NewOrderHTTP(orders)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	r.POST("/api/auth/register", authH.Register)
	r.POST("/api/auth/login", authH.Login)
	r.GET("/api/auth/profile", authed, authH.Profile)

	r.GET("/api/products", productH.List)
	r.GET("/api/products/:id", productH.Get)
	r.POST("/api/products", authed, admin, productH.Create)
	r.PUT("/api/products/:id", authed, admin, productH.Update)
	r.DELETE("/api/products/:id", authed, admin, productH.Delete)

	r.GET("/api/admin/users", authed, admin, adminH.ListUsers)
	r.PUT("/api/admin/users/:id", authed, admin, adminH.UpdateUser)
	r.DELETE("/api/admin/users/:id", authed, admin, adminH.DeleteUser)

	r.POST("/api/orders", authed, orderH.Create)

	return r
}
