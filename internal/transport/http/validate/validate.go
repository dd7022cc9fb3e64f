package validate

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/elevatescholar/scholarship-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var v *validator.Validate

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())

	// report json names, not Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return domain.IsValidID(fl.Field().String())
	})
}

// DecodeJSON decodes one JSON value from the body into dst. Unknown fields are
// ignored so clients sending extra keys (role, email on profile updates) are
// not rejected; the DTOs simply have nowhere to put them.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return domain.ErrInvalidJSON(errors.New("empty body"))
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))

	if err := dec.Decode(dst); err != nil {
		return domain.ErrInvalidJSON(err)
	}

	// Disallow trailing data: {}{}
	if err := dec.Decode(&struct{}{}); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return domain.ErrInvalidJSON(err)
	}
	return domain.ErrInvalidJSON(errors.New("multiple JSON values"))
}

// Struct runs the `validate` tags of dst and converts the first failure into a domain error.
func Struct(dst any) error {
	err := v.Struct(dst)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return domain.ErrInvalidField("body", err.Error())
	}
	return fieldError(ves[0])
}

func fieldError(fe validator.FieldError) error {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return domain.ErrMissingField(field)
	case "objectid":
		return domain.ErrInvalidID(field)
	case "email":
		return domain.ErrInvalidField(field, "must be a valid email address")
	case "min", "gte":
		return domain.ErrInvalidField(field, "must be at least "+fe.Param())
	case "max", "lte":
		return domain.ErrInvalidField(field, "must be at most "+fe.Param())
	case "oneof":
		return domain.ErrInvalidField(field, "must be one of: "+fe.Param())
	default:
		return domain.ErrInvalidField(field, "is invalid")
	}
}

func IsObjectID(s string) bool {
	return domain.IsValidID(s)
}
