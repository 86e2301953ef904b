package domain

// DiscountPolicy returns the discount granted on a line of the given regular cost.
// Implementations must be side-effect free: a reservation may be priced any number of times.
type DiscountPolicy func(product ProductRef, quantity int, regularCost Money) Money
