package services

import (
	"sort"
	"strings"

	"github.com/juju/errors"
	"github.com/monitoring-dashboard/utils"
)

// fieldSetter coerces one decoded JSON value and stores it on the entity
type fieldSetter[T any] func(entity *T, value interface{}) error

// fieldRules is the allow-list of writable fields for an entity
type fieldRules[T any] map[string]fieldSetter[T]

// readOnlyFields may appear in request bodies (clients echo whole records back)
// but are never written.
var readOnlyFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// apply writes every recognised key of input onto entity. Unknown keys are
// rejected up front so a typo never half-applies a request.
func (rules fieldRules[T]) apply(entity *T, input map[string]interface{}) error {
	var unknown []string
	keys := make([]string, 0, len(input))
	for key := range input {
		switch {
		case rules[key] != nil:
			keys = append(keys, key)
		case !readOnlyFields[key]:
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return errors.NotValidf("unknown fields %s", strings.Join(unknown, ", "))
	}

	sort.Strings(keys)
	for _, key := range keys {
		if err := rules[key](entity, input[key]); err != nil {
			return errors.NotValidf("field %q (%v)", key, err)
		}
	}
	return nil
}

// requirePresent fails for the first required key that is missing or blank
func requirePresent(input map[string]interface{}, keys ...string) error {
	for _, key := range keys {
		v, ok := input[key]
		if !ok || v == nil {
			return errors.NotValidf("required field %q", key)
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			return errors.NotValidf("required field %q", key)
		}
	}
	return nil
}

// textField stores any text, including empty
func textField[T any](set func(*T, string)) fieldSetter[T] {
	return func(e *T, v interface{}) error {
		s, err := utils.ToString(v)
		if err != nil {
			return err
		}
		set(e, s)
		return nil
	}
}

// requiredTextField refuses to blank out a NOT NULL column
func requiredTextField[T any](set func(*T, string)) fieldSetter[T] {
	return func(e *T, v interface{}) error {
		s, err := utils.ToString(v)
		if err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			return errors.New("must not be empty")
		}
		set(e, s)
		return nil
	}
}

// optionalTextField clears the column on blank input
func optionalTextField[T any](set func(*T, *string)) fieldSetter[T] {
	return func(e *T, v interface{}) error {
		if utils.IsBlank(v) {
			set(e, nil)
			return nil
		}
		s, err := utils.ToString(v)
		if err != nil {
			return err
		}
		set(e, &s)
		return nil
	}
}

// numberField stores zero on blank input
func numberField[T any](set func(*T, float64)) fieldSetter[T] {
	return func(e *T, v interface{}) error {
		if utils.IsBlank(v) {
			set(e, 0)
			return nil
		}
		f, err := utils.ToFloat64(v)
		if err != nil {
			return err
		}
		set(e, f)
		return nil
	}
}

// optionalNumberField clears a nullable column on blank or zero input
func optionalNumberField[T any](set func(*T, *float64)) fieldSetter[T] {
	return func(e *T, v interface{}) error {
		if utils.IsBlank(v) {
			set(e, nil)
			return nil
		}
		f, err := utils.ToFloat64(v)
		if err != nil {
			return err
		}
		set(e, &f)
		return nil
	}
}

// integerField stores zero on blank input
func integerField[T any](set func(*T, int)) fieldSetter[T] {
	return func(e *T, v interface{}) error {
		if utils.IsBlank(v) {
			set(e, 0)
			return nil
		}
		i, err := utils.ToInt(v)
		if err != nil {
			return err
		}
		set(e, i)
		return nil
	}
}

// referenceField stores a foreign key; blank input clears it
func referenceField[T any](set func(*T, *uint)) fieldSetter[T] {
	return func(e *T, v interface{}) error {
		if utils.IsBlank(v) {
			set(e, nil)
			return nil
		}
		id, err := utils.ToID(v)
		if err != nil {
			return err
		}
		set(e, &id)
		return nil
	}
}

// idField stores a required foreign key
func idField[T any](set func(*T, uint)) fieldSetter[T] {
	return func(e *T, v interface{}) error {
		if utils.IsBlank(v) {
			return errors.New("must not be empty")
		}
		id, err := utils.ToID(v)
		if err != nil {
			return err
		}
		set(e, id)
		return nil
	}
}
