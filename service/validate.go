package service

import (
	"Agora/pkg/response"
	"Agora/types"
	"errors"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

type registerInput struct {
	Username  string `validate:"required,max=64"`
	Email     string `validate:"required,email,max=255"`
	Password1 string `validate:"required,min=4,max=20,password"`
	Password2 string `validate:"eqfield=Password1"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		var upper, digit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		return upper && digit
	})
	return v
}

func validateRegister(req *types.RegisterRequest) error {
	err := validate.Struct(registerInput{
		Username:  req.Username,
		Email:     req.Email,
		Password1: req.Password1,
		Password2: req.Password2,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return response.Validation(err.Error())
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Username":
		return response.Validation("username is required and must be at most 64 characters")
	case "Email":
		return response.Validation("invalid email address")
	case "Password2":
		return response.Validation("passwords do not match")
	}

	switch fe.Tag() {
	case "min", "max", "required":
		return response.Validation("password must be between 4 and 20 characters")
	default:
		return response.Validation("password must contain at least one uppercase letter and one number")
	}
}
