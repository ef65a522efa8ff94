package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hrkit/employee-service/internal/domain"
)

var validate = newValidator()

// newValidator builds a validator that reports field names by their JSON tag,
// so missing-field errors match the wire contract.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// missingFields collects the JSON names of every field that failed the
// "required" rule, preserving struct order.
func missingFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	var fields []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			fields = append(fields, fe.Field())
		}
	}
	return fields
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

func (r *RegisterRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if err := validate.Struct(r); err != nil {
		if f := missingFields(err); len(f) > 0 {
			return domain.ErrMissingFields(f...)
		}
		// The only non-required rule is email format.
		return domain.ErrMissingFields("email")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if err := validate.Struct(r); err != nil {
		return domain.ErrCredentialsRequired()
	}
	return nil
}

type AddProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Age   int    `json:"age" validate:"required,gt=0"`
}

func (r *AddProfileRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		if f := missingFields(err); len(f) > 0 {
			return domain.ErrMissingFields(f...)
		}
		return domain.ErrMissingFields("age")
	}
	return nil
}

// UpdateEmployeeRequest carries a partial update: only the keys present in
// the JSON body are applied. Pointer fields distinguish "absent" from "zero".
type UpdateEmployeeRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Age   *int    `json:"age"`

	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (r *UpdateEmployeeRequest) Empty() bool {
	return r.Name == nil && r.Phone == nil && r.Age == nil &&
		r.Email == nil && r.Password == nil
}
