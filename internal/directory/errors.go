package directory

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/jacksmith/bizdir/internal/model"
)

var (
	// ErrInvalidInput is returned when a business payload is missing a
	// required field or names an unknown category.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidArgument is returned when a filter value is neither "all"
	// nor a category. It indicates a programming error in the caller.
	ErrInvalidArgument = errors.New("invalid argument")
)

// FieldProblem describes one invalid field of a business payload.
type FieldProblem struct {
	Field   string // yaml name of the field, e.g. "name"
	Message string // what went wrong
}

// InputError lists every invalid field of a rejected payload.
// errors.Is(err, ErrInvalidInput) holds for any *InputError.
type InputError struct {
	Problems []FieldProblem
}

func (e *InputError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// Fields returns the names of the invalid fields in declaration order.
func (e *InputError) Fields() []string {
	fields := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		fields = append(fields, p.Field)
	}
	return fields
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		c, ok := fl.Field().Interface().(model.Category)
		return ok && c.Valid()
	})
	return v
}

// validateInput checks the required-field and category rules for a payload.
func validateInput(in *model.BusinessInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	inputErr := &InputError{}
	for _, fe := range fieldErrs {
		inputErr.Problems = append(inputErr.Problems, FieldProblem{
			Field:   fe.Field(),
			Message: formatFieldError(fe),
		})
	}
	return inputErr
}

// formatFieldError formats a single field validation error.
func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "category":
		return fmt.Sprintf("%s %q is not one of %s", fe.Field(), fmt.Sprint(fe.Value()), categoryNames())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func categoryNames() string {
	var names []string
	for _, c := range model.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
