package domain

import "github.com/google/uuid"

type Product struct {
	ID        uuid.UUID
	Name      string
	Category  string
	Price     Money
	Available bool
}

func (p Product) IsAvailable() bool {
	return p.Available
}

// Ref is the snapshot of the product kept on reservation and offer lines.
func (p Product) Ref() ProductRef {
	return ProductRef{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
	}
}

type ProductRef struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Price    Money     `json:"price"`
}
