package pagecontent

import (
	"github.com/go-playground/validator/v10"

	"github.com/solvex-capital/marketing-core/internal/models"
)

// RegisterValidators installs the `pagetype` binding rule on the shared
// validator engine. Call once at startup.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("pagetype", func(fl validator.FieldLevel) bool {
		return models.PageType(fl.Field().String()).Valid()
	})
}
