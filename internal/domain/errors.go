package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidCatalog      = errors.New("invalid catalog")
	ErrInvalidDistribution = errors.New("invalid distribution")
	ErrPersistence         = errors.New("persistence failure")
)
