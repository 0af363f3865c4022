package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// В сообщениях используем имена полей из JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidationErrors ошибки валидации запроса
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// ValidateStruct проверяет теги validate у структуры запроса
func ValidateStruct(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	return translateValidationErrors(validationErrs)
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	messages := make(ValidationErrors, 0, len(errs))

	for _, err := range errs {
		field := err.Field()

		switch err.Tag() {
		case "required", "required_without":
			messages = append(messages, fmt.Sprintf("поле %s обязательно", field))
		case "gt", "gte":
			messages = append(messages, fmt.Sprintf("поле %s должно быть больше %s", field, err.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("поле %s превышает допустимую длину %s", field, err.Param()))
		case "datetime":
			messages = append(messages, fmt.Sprintf("поле %s должно быть в формате %s", field, err.Param()))
		default:
			messages = append(messages, fmt.Sprintf("поле %s некорректно", field))
		}
	}

	return messages
}
