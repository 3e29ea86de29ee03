package service

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/fitrack/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
	})
}

// validateStruct joins every field error into one "validation error".
func validateStruct(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
