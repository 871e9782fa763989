package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/trf-online/trf-backend/internal/core/domain"
)

// RegisterValidations installs custom binding validators. Called once at
// startup, before any request is bound.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("trfrole", func(fl validator.FieldLevel) bool {
		return domain.Role(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("trfstatus", func(fl validator.FieldLevel) bool {
		return domain.TRFStatus(fl.Field().String()).Valid()
	})
}
