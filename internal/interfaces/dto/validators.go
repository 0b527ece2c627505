package dto

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"subcommerce/internal/domain/shared/money"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by request DTOs to
// gin's validator. It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("unexpected binding validator engine")
			return
		}
		err = v.RegisterValidation("currency", validateCurrency)
	})
	return err
}

func validateCurrency(fl validator.FieldLevel) bool {
	return money.ValidateCurrency(fl.Field().String()) == nil
}
