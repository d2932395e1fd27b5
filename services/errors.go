package services

import (
	"github.com/juju/errors"
	"gorm.io/gorm"
)

// StoreUnavailable marks failures of the underlying persistence layer.
// Check with errors.Is(err, StoreUnavailable).
const StoreUnavailable = errors.ConstError("store unavailable")

type storeError struct {
	cause error
}

func (e *storeError) Error() string { return string(StoreUnavailable) + ": " + e.cause.Error() }

func (e *storeError) Unwrap() error { return e.cause }

func (e *storeError) Is(target error) bool { return target == StoreUnavailable }

// storeErr translates a repository error. Missing records become NotFound for the
// named entity, anything else is reported as StoreUnavailable.
func storeErr(err error, entity string, id uint) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NotFoundf("%s %d", entity, id)
	}
	return unavailable(err)
}

func unavailable(err error) error {
	if err == nil || errors.Is(err, StoreUnavailable) {
		return err
	}
	return &storeError{cause: err}
}

// txErr classifies the error of a transaction. Errors raised by the callback are
// already classified; anything else, such as a failed BEGIN or COMMIT, came
// from the store.
func txErr(err error) error {
	if errors.Is(err, errors.NotValid) || errors.Is(err, errors.NotFound) {
		return err
	}
	return unavailable(err)
}
