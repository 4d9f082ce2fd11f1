package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/markoub/careers/internal/repositories/sqlrepo"
	"github.com/markoub/careers/internal/utils"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}

type AdminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type authService struct {
	admins sqlrepo.AdminUserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(admins sqlrepo.AdminUserRepository, secret []byte, ttl time.Duration) AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &authService{admins: admins, secret: secret, ttl: ttl}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	const op = "AuthService.Login"

	if email == "" || password == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}
	if len(s.secret) == 0 {
		return "", utils.E(utils.CodeInternal, op, "jwt secret is not configured", nil)
	}

	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			// same answer as a bad password; no account probing
			return "", utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to look up admin user", err)
	}

	if err := utils.CheckPassword(admin.PasswordHash, password); err != nil {
		return "", utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	now := time.Now().UTC()
	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role: admin.Role,
	}

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return tok, nil
}
