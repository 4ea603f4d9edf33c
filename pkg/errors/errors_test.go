package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/crosswalklabs/crosswalk/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestSchemaError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.SchemaError{Reason: "no columns"}
		assert.Equal(t, "invalid schema: no columns", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidSchema))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewSchemaError("no usable identifier columns")
		assert.True(t, pkgerrors.IsInvalidSchema(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewSchemaError("no columns")
		wrapped := fmt.Errorf("loading input: %w", base)
		assert.True(t, pkgerrors.IsInvalidSchema(wrapped))
	})
}

func TestFieldTagError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.FieldTagError{
			Value:      "MSFT",
			FirstField: "figi",
			OtherField: "ticker",
			Row:        3,
		}
		assert.Equal(t, `value "MSFT" tagged "ticker" at row 3 but first seen under "figi"`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrAmbiguousFieldTag))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewFieldTagError("MSFT", "figi", "ticker", 3)
		assert.True(t, pkgerrors.IsAmbiguousFieldTag(err))
		assert.Equal(t, "figi", err.FirstField)
	})

	t.Run("not a schema error", func(t *testing.T) {
		err := pkgerrors.NewFieldTagError("MSFT", "figi", "ticker", 3)
		assert.False(t, pkgerrors.IsInvalidSchema(err))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "issuer_name",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field issuer_name: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid table"}
		assert.Equal(t, "validation failed: invalid table", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file and line", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "csv",
			File:    "input.csv",
			Line:    12,
			Message: "wrong number of fields",
		}
		assert.Contains(t, err.Error(), "input.csv:12")
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("unexpected EOF")
		err := pkgerrors.WrapParse("yaml", "table.yaml", base)
		assert.True(t, errors.Is(err, base))
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapParse("yaml", "table.yaml", nil))
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.WrapIO("write", "/tmp/out.csv", base)
	assert.Contains(t, err.Error(), "IO error during write of /tmp/out.csv")
	assert.True(t, errors.Is(err, base))
	assert.Nil(t, pkgerrors.WrapIO("write", "/tmp/out.csv", nil))
}

func TestEmptyInputSentinel(t *testing.T) {
	wrapped := fmt.Errorf("consolidating: %w", pkgerrors.ErrEmptyInput)
	assert.True(t, pkgerrors.IsEmptyInput(wrapped))
	assert.False(t, pkgerrors.IsEmptyInput(pkgerrors.ErrInvalidSchema))
}
