package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Indian mobile numbers: ten digits starting with 6-9.
var mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// RegisterValidations installs custom binding validations on gin's validator
// engine. It must run once before any routes bind requests.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("mobile_in", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
}
