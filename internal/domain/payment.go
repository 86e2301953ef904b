package domain

import (
	"time"

	"github.com/google/uuid"
)

// Payment records funds debited from a client. It is immutable once created.
type Payment struct {
	ID       uuid.UUID
	ClientID uuid.UUID
	Amount   Money

	CreatedAt time.Time
}
