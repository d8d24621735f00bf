package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/visadesk/visa_desk_app/internal/core/domain"
)

// Custom binding tags backed by the domain enum parsers.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("visaclass", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseVisaClass(fl.Field().String())
		return ok
	})
}
