package dto

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// RegisterValidators installs the custom binding tags on gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}
	return v.RegisterValidation("grantkind", validateGrantKind)
}

// validateGrantKind accepts PURCHASE, BONUS and REFUND in any case
func validateGrantKind(fl validator.FieldLevel) bool {
	kind, err := entity.ParseTransactionKind(fl.Field().String())
	return err == nil && kind.IsGrant()
}

// ValidationDetails turns binding errors into field -> rule pairs for the error body
func ValidationDetails(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()
		if field != "" {
			field = strings.ToLower(field[:1]) + field[1:]
		}
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		details[field] = rule
	}
	return details
}
