package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator возвращает валидатор, который в ошибках использует имена полей из json-тегов
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError — ошибка проверки тела запроса до обращения к хранилищу
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// validateRequest проверяет структуру и приводит ошибки валидатора к ValidationError
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	vErr := &ValidationError{}
	for _, fe := range verrs {
		vErr.Fields = append(vErr.Fields, fe.Field())
	}
	return vErr
}
