package validator

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"

	"github.com/cafe-finder/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры. Ошибки валидации возвращаются как
// errors.ErrInvalidRequest с перечнем полей в Details.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return errors.ErrInvalidRequest.Wrap(err)
	}

	fields := make(map[string]interface{}, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = fe.Tag()
	}

	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
		"fields": fields,
	}).Wrap(err)
}

