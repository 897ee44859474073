package services

import (
	"context"
	"time"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT for the user and returns its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAccessToken validates a token string and returns the subject user ID.
	ValidateAccessToken(ctx context.Context, tokenString string) (string, error)
}
