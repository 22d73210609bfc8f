// Package validation envuelve go-playground/validator con nombres de campo
// tomados del tag json y mensajes en español listos para mostrar al usuario.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator valida structs de entrada (formularios de login, registro, checkout).
type Validator struct {
	v *validator.Validate
}

// New configura el validador:
//   - usa el nombre del tag json en los errores;
//   - registra "notblank" (rechaza cadenas vacías o solo espacios).
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{v: v}
}

// Struct valida s y devuelve un mapa campo -> mensaje, o nil si es válido.
func (x *Validator) Struct(s interface{}) map[string]string {
	return ToDetails(x.v.Struct(s))
}

// ToDetails convierte errores del validador en un mapa campo -> mensaje.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}
	return map[string]string{"formulario": "no se pudo validar"}
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required", "notblank":
		return "es obligatorio"
	case "required_without":
		return "es obligatorio si no se indica " + strings.ToLower(param)
	case "required_if":
		return "es obligatorio en este caso"
	case "email":
		return "debe ser un email válido"
	case "eqfield":
		return "debe coincidir con " + strings.ToLower(param)
	case "oneof":
		return "debe ser uno de: " + strings.Join(strings.Fields(param), ", ")
	case "min":
		if isNumberKind(fe.Kind()) {
			return "debe ser al menos " + param
		}
		return "debe tener al menos " + param + " caracteres"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "debe ser como máximo " + param
		}
		return "debe tener como máximo " + param + " caracteres"
	default:
		if param != "" {
			return fmt.Sprintf("no cumple la regla '%s=%s'", fe.Tag(), param)
		}
		return fmt.Sprintf("no cumple la regla '%s'", fe.Tag())
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
