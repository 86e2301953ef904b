package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/ordering/internal/domain"
)

// Identity resolves the user acting in the current request.
type Identity interface {
	CurrentUserID(ctx context.Context) (uuid.UUID, error)
}

type SuggestionService interface {
	SuggestEquivalent(ctx context.Context, product domain.Product, client domain.Client) (domain.Product, error)
}

type DiscountFactory interface {
	Create(client domain.Client) domain.DiscountPolicy
}
