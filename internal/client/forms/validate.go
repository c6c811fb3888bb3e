package forms

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/weatherdesk/internal/client/models"
	"github.com/dmitrijs2005/weatherdesk/internal/common"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError reports the first field that failed its rule. It matches
// common.ErrValidation under errors.Is.
type FieldError struct {
	Field Field
	// Tag is the validator tag that failed, e.g. "required" or "email".
	Tag string
}

func (e *FieldError) Error() string {
	var reason string
	switch e.Tag {
	case "required":
		reason = "is required"
	case "number":
		reason = "must be a whole number"
	case "email":
		reason = "must be a valid email address"
	default:
		reason = "is invalid"
	}
	return fmt.Sprintf("%s %s", e.Field.ID, reason)
}

func (e *FieldError) Unwrap() error {
	return common.ErrValidation
}

// IsMissingRequired reports whether err is a FieldError for an empty
// required field.
func IsMissingRequired(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe) && fe.Tag == "required"
}

// Validate checks values against fields in order and returns the first
// failure as a *FieldError. Missing keys are treated as empty strings.
func Validate(fields []Field, values map[string]string) error {
	for _, f := range fields {
		if f.Rule == "" {
			continue
		}
		err := validate.Var(values[f.ID], f.Rule)
		if err == nil {
			continue
		}

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &FieldError{Field: f, Tag: verrs[0].Tag()}
		}
		return fmt.Errorf("%w: %s: %s", common.ErrValidation, f.ID, err.Error())
	}
	return nil
}

func fieldByID(id string) Field {
	for _, f := range SignupFields {
		if f.ID == id {
			return f
		}
	}
	return Field{ID: id}
}

// ParseSignup validates values against SignupFields and converts them into a
// profile. An empty age becomes 0; anything that is not a non-negative
// integer fails with a *FieldError instead of being coerced.
func ParseSignup(values map[string]string) (models.SignupProfile, error) {
	if err := Validate(SignupFields, values); err != nil {
		return models.SignupProfile{}, err
	}

	age := 0
	if raw := values[FieldAge]; raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return models.SignupProfile{}, &FieldError{Field: fieldByID(FieldAge), Tag: "number"}
		}
		age = n
	}

	return models.SignupProfile{
		FirstName: values[FieldFirstName],
		LastName:  values[FieldLastName],
		Username:  values[FieldUsername],
		Password:  values[FieldPassword],
		Age:       age,
		Gender:    values[FieldGender],
		Email:     values[FieldEmail],
		Phone:     values[FieldPhone],
	}, nil
}
