package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxAge is the largest accepted age.
const MaxAge = 150

var (
	ErrNameRequired = errors.New("name is required")
	ErrInvalidAge   = errors.New("age must be a whole number between 0 and 150")
)

// ParseAge parses an optional age. Blank input means unknown and returns nil.
func ParseAge(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAge, s)
	}
	if n < 0 || n > MaxAge {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAge, n)
	}
	return &n, nil
}

// Validate trims the fields and checks them.
func (p *NewPerson) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.Age != nil && (*p.Age < 0 || *p.Age > MaxAge) {
		return fmt.Errorf("%w: %d", ErrInvalidAge, *p.Age)
	}
	return nil
}
