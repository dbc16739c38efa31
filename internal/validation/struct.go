package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/gophchat/internal/apperr"
)

// validate потокобезопасен и кеширует разобранные теги структур
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates s by its `validate` tags. Failures wrap apperr.ErrValidation
// and carry one readable message per field.
func Struct(s any) error {
	if err := validate.Struct(s); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%w: %s", apperr.ErrValidation, strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// IsDataURI reports whether s is a base64 data URI.
func IsDataURI(s string) bool {
	return validate.Var(s, "datauri") == nil
}

// DataURIMediaType returns the media type of a data URI, e.g. "image/png".
func DataURIMediaType(s string) string {
	header, _, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return ""
	}
	mediaType, _, _ := strings.Cut(header, ";")
	return mediaType
}

func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "datauri":
		return field + " must be a data URI"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
