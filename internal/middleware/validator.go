package middleware

import (
	"github.com/Eursukkul/hustle-events/internal/draft"
)

// Validator plugs the draft rules into echo's Context.Validate.
type Validator struct{}

func (Validator) Validate(i any) error {
	return draft.Struct(i)
}
