package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/fransit/francheese-website1/internal/model"
	"github.com/fransit/francheese-website1/internal/store"
)

const tokenTTL = 24 * time.Hour

// Claims is what login embeds in the session token.
type Claims struct {
	UserID  string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(name, email, password string) (model.User, error)
	Login(email, password string) (string, model.User, error)
	ParseToken(token string) (*Claims, error)
}

type authService struct {
	store *store.Store
	// HS256 signing secret. Falls back to a known constant in config when
	// JWT_SECRET is unset, so dev tokens verify across restarts.
	secret []byte
	// Registering with this address grants the admin flag (testing hook).
	adminGrantEmail string
	log             *logrus.Logger
}

func NewAuthService(st *store.Store, secret, adminGrantEmail string, log *logrus.Logger) AuthService {
	return &authService{
		store:           st,
		secret:          []byte(secret),
		adminGrantEmail: strings.ToLower(adminGrantEmail),
		log:             log,
	}
}

// ---------------------------------------------------
// Register
// ---------------------------------------------------

func (a *authService) Register(name, email, password string) (model.User, error) {
	email = strings.ToLower(email)
	if _, ok := a.store.UserByEmail(email); ok {
		return model.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	u := a.store.CreateUser(model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		IsAdmin:  email == a.adminGrantEmail,
		Verified: true, // no out-of-band verification step
	})

	a.log.WithFields(logrus.Fields{
		"user_id": u.ID,
		"email":   u.Email,
		"admin":   u.IsAdmin,
	}).Info("user registered")

	return u, nil
}

// ---------------------------------------------------
// Login
// ---------------------------------------------------

func (a *authService) Login(email, password string) (string, model.User, error) {
	u, ok := a.store.UserByEmail(email)
	if !ok {
		return "", model.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		a.log.WithField("email", u.Email).Warn("login failed: bad password")
		return "", model.User{}, ErrInvalidCredentials
	}

	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:  u.ID,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})
	signed, err := t.SignedString(a.secret)
	if err != nil {
		return "", model.User{}, err
	}
	return signed, u, nil
}

// ---------------------------------------------------
// ParseToken
// ---------------------------------------------------

func (a *authService) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
