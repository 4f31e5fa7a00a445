// Package impl contains the implementation of the application's business logic.
package impl

import (
	"market/internal/errors"
)

// errorMapping pairs a repository sentinel with the business error shown to callers.
type errorMapping struct {
	from error
	to   error
}

// translate returns the business error of the first matching mapping,
// otherwise err wrapped with msg.
func translate(err error, msg string, mappings ...errorMapping) error {
	for _, m := range mappings {
		if errors.Is(err, m.from) {
			return m.to
		}
	}

	return errors.Wrap(err, msg)
}
