package engine

import "errors"

var (
	// ErrEmptyPile is returned when the top of an empty pile is requested
	ErrEmptyPile = errors.New("pile is empty")

	// ErrCardNotInPile is returned when removing a card the pile does not hold
	ErrCardNotInPile = errors.New("card not in pile")

	// ErrNotEnoughCards is returned when the stock cannot cover the deal
	ErrNotEnoughCards = errors.New("not enough cards in stock to deal")

	// ErrStockNotEmpty is returned when recycling while the stock still holds cards
	ErrStockNotEmpty = errors.New("stock is not empty")

	// ErrInvariantViolation marks a broken conservation or ownership invariant
	// Never expected at runtime; strict tables panic with it
	ErrInvariantViolation = errors.New("invariant violation")
)
