package catalog

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName     = errors.New("package name is required")
	ErrNegativePrice = errors.New("package price cannot be negative")
)

// Package is a bookable service bundle shown on the public site.
type Package struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	IsFeatured  bool     `json:"isFeatured"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

func (p Package) EntityID() string { return p.ID }

func (p Package) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}
