//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"coolslate/internal/handler/middleware"
	"coolslate/internal/pkg/config"
	"coolslate/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the upstream auth service would, signed with
// the shared test secret.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) UserToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, email, middleware.RoleUser, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) AdminToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, email, middleware.RoleAdmin, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ExpiredToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, email, middleware.RoleUser, -time.Minute)
	require.NoError(t, err)
	return token
}
