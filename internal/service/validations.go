package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Calendar date without time, e.g. 2024-01-31
		validate.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(entity.DateLayout, fl.Field().String())
			return err == nil
		})
		// One of the fixed task kinds
		validate.RegisterValidation("task_kind", func(fl validator.FieldLevel) bool {
			_, ok := entity.LookupTask(entity.TaskKind(fl.Field().String()))
			return ok
		})
	})
}

// validateStruct runs the validator and joins field errors under ErrValidation.
func validateStruct(s any) error {
	err := validate.Struct(s)
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
	return fmt.Errorf("validation unexpected error: %w", err)
}
