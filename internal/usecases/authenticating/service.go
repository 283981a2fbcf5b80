package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/qu18354531302/product-analytics-api/infrastructure/repository"
	"github.com/qu18354531302/product-analytics-api/internal/config"
	"github.com/qu18354531302/product-analytics-api/internal/domain"
)

type Authenticator interface {
	Register(username, password, inviteCode string) (*domain.User, error)
	Login(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      config.Auth
}

func NewService(userRepo repository.UserRepository, cfg config.Auth) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Register creates a dashboard login. Registration is invite-code gated,
// there is no open signup.
func (s *Service) Register(username, password, inviteCode string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if inviteCode != s.cfg.InviteCode {
		return nil, ErrInvalidInviteCode
	}

	existing, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, domain.NewDataAccessError("looking up user", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.CreateUser(&domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, domain.NewDataAccessError("creating user", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// Login verifies the credentials and issues a signed token. Unknown user
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return "", domain.NewDataAccessError("looking up user", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(user)
}

func (s *Service) generateToken(user *domain.User) (string, error) {
	claims := domain.Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.cfg.TokenTTLHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
