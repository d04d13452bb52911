package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding validators on gin's
// validator engine. Call once at startup before serving requests.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("swapaction", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case SwapActionAccept, SwapActionReject, SwapActionCancel, SwapActionComplete:
			return true
		}
		return false
	})

	_ = v.RegisterValidation("skilltype", func(fl validator.FieldLevel) bool {
		return fl.Field().String() == "offered" || fl.Field().String() == "wanted"
	})
}
