// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"florada/internal/models"
	"florada/internal/session"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("arrangement_type", validateArrangementType)
		_ = v.RegisterValidation("unit_code", validateUnitCode)
		_ = v.RegisterValidation("scenography_unit", validateScenographyUnit)
		_ = v.RegisterValidation("ownership", validateOwnership)
		_ = v.RegisterValidation("labor_section", validateLaborSection)
		_ = v.RegisterValidation("date_only", validateDateOnly)
	}
}

func validateArrangementType(fl validator.FieldLevel) bool {
	return models.ValidArrangementType(fl.Field().String())
}

func validateUnitCode(fl validator.FieldLevel) bool {
	return models.ValidUnit(fl.Field().String())
}

func validateScenographyUnit(fl validator.FieldLevel) bool {
	return models.ValidScenographyUnit(fl.Field().String())
}

func validateOwnership(fl validator.FieldLevel) bool {
	switch models.Ownership(fl.Field().String()) {
	case models.OwnershipOwned, models.OwnershipThirdParty:
		return true
	}
	return false
}

func validateLaborSection(fl validator.FieldLevel) bool {
	return session.ValidLaborSection(fl.Field().String())
}

func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}
