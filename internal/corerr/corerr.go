// Package corerr classifies the error taxonomy from spec.md §7 so that
// the driver can decide, per error, whether to roll back a phase, retry,
// or abort the process at startup.
package corerr

import "github.com/pkg/errors"

// Class is the taxonomy bucket an error falls into.
type Class int

const (
	// ClassConfiguration is a fatal startup error: bad flags, an
	// unparseable duration, a schema below the required migration
	// version.
	ClassConfiguration Class = iota
	// ClassTransientInfra covers pool checkout failures and the
	// startup RPC query; retried with backoff, or the pass is skipped.
	ClassTransientInfra
	// ClassDataIntegrity is a uniqueness violation on task insertion;
	// it means the task was already recorded and is swallowed.
	ClassDataIntegrity
	// ClassDeserialization covers a memo that isn't UTF-8, an invalid
	// public key, or a malformed payload; the item is skipped.
	ClassDeserialization
	// ClassLogic covers a missing block or proposal referenced by a
	// transaction the indexer already recorded; the item is skipped.
	ClassLogic
)

type classified struct {
	class Class
	cause error
}

func (c *classified) Error() string { return c.cause.Error() }
func (c *classified) Unwrap() error { return c.cause }

// Wrap tags err with a taxonomy class, preserving it under errors.Unwrap
// so callers can still test the underlying cause.
func Wrap(class Class, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &classified{class: class, cause: errors.Wrap(err, msg)}
}

// ClassOf returns the class a wrapped error was tagged with, and false if
// err was never classified.
func ClassOf(err error) (Class, bool) {
	var c *classified
	if errors.As(err, &c) {
		return c.class, true
	}
	return 0, false
}

// IsDataIntegrity reports whether err (or a cause in its chain) is a
// swallowable uniqueness violation.
func IsDataIntegrity(err error) bool {
	class, ok := ClassOf(err)
	return ok && class == ClassDataIntegrity
}

// Skip reports whether err should merely cause the current item
// (transaction, vote, pilot) to be skipped rather than the whole phase
// rolled back.
func Skip(err error) bool {
	class, ok := ClassOf(err)
	if !ok {
		return false
	}
	return class == ClassDeserialization || class == ClassLogic || class == ClassDataIntegrity
}
