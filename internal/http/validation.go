package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"maintenance-service/internal/model"
	"maintenance-service/internal/service"
)

// newValidator создаёт валидатор DTO: имена полей берутся из json-тегов,
// Optional-поля проверяются по вложенному значению.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerOptionalTypes(v)

	// Ошибка регистрации означает опечатку в коде, сервер не должен стартовать.
	if err := registerRules(v); err != nil {
		panic("register validation rules: " + err.Error())
	}
	return v
}

// registerOptionalTypes учит валидатор смотреть внутрь model.Optional.
// Не заданное поле и null дают nil, чтобы сработал omitempty.
func registerOptionalTypes(v *validator.Validate) {
	unwrap := func(field reflect.Value) any {
		if !field.FieldByName("Set").Bool() {
			return nil
		}
		val := field.FieldByName("Value")
		if val.Kind() == reflect.Ptr {
			if val.IsNil() {
				return nil
			}
			val = val.Elem()
		}
		return val.Interface()
	}
	v.RegisterCustomTypeFunc(unwrap,
		model.Optional[string]{},
		model.Optional[int64]{},
		model.Optional[*int64]{},
		model.Optional[bool]{},
		model.Optional[time.Time]{},
		model.Optional[model.Duration]{},
	)
}

func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("request_status", isRequestStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_type", isRequestType); err != nil {
		return err
	}
	return nil
}

func isRequestStatus(fl validator.FieldLevel) bool {
	_, err := model.ParseStatus(fl.Field().String())
	return err == nil
}

func isRequestType(fl validator.FieldLevel) bool {
	_, err := model.ParseRequestType(fl.Field().String())
	return err == nil
}

// validateStruct прогоняет DTO через валидатор и переводит ошибки в карту по полям.
func (h *Handler) validateStruct(dto any) error {
	err := h.validate.Struct(dto)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return service.ErrBadRequest(err.Error())
	}
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}
	return service.ErrValidation(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "request_status":
		return fmt.Sprintf("%q is not a valid choice. Choices: %s.", fmt.Sprint(fe.Value()), joinStatuses(model.AllStatuses))
	case "request_type":
		return fmt.Sprintf("%q is not a valid choice. Choices: PREVENTIVE, CORRECTIVE.", fmt.Sprint(fe.Value()))
	}
	return fmt.Sprintf("failed on %q", fe.Tag())
}

func joinStatuses(ss []model.RequestStatus) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
