package utils

import (
	"recipe-dashboard/domain"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	_ = Validate.RegisterValidation("rank_criterion", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseRankCriterion(fl.Field().String())
		return err == nil
	})
}
