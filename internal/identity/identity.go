// Package identity resolves the user acting in a request.
package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/ordering/internal/domain"
	"github.com/nikolayk812/ordering/internal/port"
)

type userKey struct{}

// WithUser returns a copy of ctx carrying userID as the acting user.
func WithUser(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

type contextIdentity struct{}

func NewContextIdentity() port.Identity {
	return contextIdentity{}
}

func (contextIdentity) CurrentUserID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(userKey{}).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("no user in context: %w", domain.ErrUnauthenticated)
	}
	return userID, nil
}
