package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/polidanilo/LNI/internal/model"
)

// RegisterValidators 注册业务枚举校验标签
func RegisterValidators(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"boattype": func(fl validator.FieldLevel) bool {
			return model.BoatType(fl.Field().String()).Valid()
		},
		"workcategory": func(fl validator.FieldLevel) bool {
			return model.WorkCategory(fl.Field().String()).Valid()
		},
		"orderstatus": func(fl validator.FieldLevel) bool {
			return model.Status(fl.Field().String()).Valid()
		},
		"problemstatus": func(fl validator.FieldLevel) bool {
			return model.ProblemStatus(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
