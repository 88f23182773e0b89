package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jacksmith/bizdir/internal/directory"
	"github.com/jacksmith/bizdir/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Type: "business", ID: "#42"}
	assert.Equal(t, "business #42 not found", err.Error())
}

func TestValidationError(t *testing.T) {
	// With field
	err := &ValidationError{Field: "category", Message: "must be one of Restaurant, Retail, Service"}
	assert.Equal(t, "invalid category: must be one of Restaurant, Retail, Service", err.Error())

	// Without field
	err = &ValidationError{Message: "business name is required"}
	assert.Equal(t, "business name is required", err.Error())
}

func TestFormMessage(t *testing.T) {
	s, err := directory.New(nil)
	require.NoError(t, err)

	t.Run("missing required field", func(t *testing.T) {
		_, err := s.AddBusiness(model.BusinessInput{Category: model.CategoryRetail, Location: "x", Description: "y"})
		require.Error(t, err)
		assert.Equal(t, RequiredFieldsMessage, FormMessage(err))
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := s.AddBusiness(model.BusinessInput{Name: "n", Category: "Bakery", Location: "x", Description: "y"})
		require.Error(t, err)
		assert.Contains(t, FormMessage(err), `category "Bakery"`)
	})

	t.Run("missing field wins over a bad category", func(t *testing.T) {
		_, err := s.AddBusiness(model.BusinessInput{Name: "n", Category: "Bakery", Location: "x"})
		require.Error(t, err)
		assert.Equal(t, RequiredFieldsMessage, FormMessage(err))
	})

	t.Run("other errors pass through", func(t *testing.T) {
		assert.Equal(t, "boom", FormMessage(errors.New("boom")))
	})
}

func TestFormatError(t *testing.T) {
	// Nil error
	assert.Equal(t, "", FormatError(nil))

	// Simple error
	err := errors.New("something went wrong")
	assert.Equal(t, "error: something went wrong", FormatError(err))

	// Custom error types
	notFound := &NotFoundError{Type: "business", ID: "#7"}
	assert.Equal(t, "error: business #7 not found", FormatError(notFound))

	validation := &ValidationError{Field: "id", Message: "must be a positive number"}
	assert.Equal(t, "error: invalid id: must be a positive number", FormatError(validation))

	// Wrapped errors keep their message
	wrapped := fmt.Errorf("filter: %w", directory.ErrInvalidArgument)
	assert.Equal(t, "error: filter: invalid argument", FormatError(wrapped))
}

func TestErrorsAs(t *testing.T) {
	var err error = &NotFoundError{Type: "business", ID: "#9"}
	wrapped := fmt.Errorf("show: %w", err)

	var nf *NotFoundError
	require.True(t, errors.As(wrapped, &nf))
	assert.Equal(t, "#9", nf.ID)
}
