package entity

import (
	"time"

	"github.com/google/uuid"
)

// Keyword is a globally unique tag attachable to marketplace cards.
type Keyword struct {
	ID      uuid.UUID
	Name    string // 1-25 letters, unique
	Created time.Time
}

// NewKeyword validates the name and returns a Keyword. Uniqueness is
// enforced by the keyword store.
func NewKeyword(name string) (*Keyword, error) {
	if !keywordPattern.MatchString(name) {
		return nil, validationError("keyword must be 1-25 letters")
	}

	return &Keyword{
		Name:    name,
		Created: time.Now(),
	}, nil
}
