package controller

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/patch"
	"reciclame-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const malformedInput = "Dados de entrada mal formatados"

func respond(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, entity.ApiResponse{Success: true, Data: data, Message: message})
}

func respondFail(c echo.Context, status int, message string) error {
	return c.JSON(status, entity.ApiResponse{Success: false, Error: message})
}

// respondError writes err with the status of its kind. Unknown errors are a 500 carrying the raw message.
func respondError(c echo.Context, err error) error {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}

	return respondFail(c, status, err.Error())
}

func errorStatus(err error) int {
	var fieldErr *patch.FieldError
	switch {
	case errors.As(err, &fieldErr),
		errors.Is(err, patch.ErrNoFields),
		errors.Is(err, patch.ErrMalformed),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrAlreadyExists),
		errors.Is(err, service.ErrInvalidReference),
		errors.Is(err, service.ErrInvalidValue),
		errors.Is(err, service.ErrInvalidNivelAcesso):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrPessoaNotFound),
		errors.Is(err, service.ErrEmpresaNotFound),
		errors.Is(err, service.ErrCooperativaNotFound),
		errors.Is(err, service.ErrTipoResiduoNotFound),
		errors.Is(err, service.ErrPontoColetaNotFound),
		errors.Is(err, service.ErrResiduoNotFound),
		errors.Is(err, service.ErrColetaNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

// bindAndValidate decodes the JSON body into input and runs struct validation.
// On failure the 400 response is already written and ok is false.
func bindAndValidate(c echo.Context, v *validator.Validate, input any) (ok bool, err error) {
	if err := (&echo.DefaultBinder{}).BindBody(c, input); err != nil {
		return false, respondFail(c, http.StatusBadRequest, malformedInput)
	}

	if err := v.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return false, respondFail(c, http.StatusBadRequest, getAllErrorMessages(validationErrors))
		}

		return false, respondFail(c, http.StatusBadRequest, err.Error())
	}

	return true, nil
}

// readPatch decodes a partial update body.
func readPatch(c echo.Context) (map[string]any, error) {
	return patch.Decode(c.Request().Body)
}

func idParam(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func getAllErrorMessages(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fmt.Sprintf("'%s': %s", fe.Field(), getMessage(fe)))
	}

	return strings.Join(messages, "; ")
}

func getMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "cpf":
		return "CPF deve conter 11 dígitos"
	case "cnpj":
		return "CNPJ deve conter 14 dígitos"
	case "email":
		return "e-mail inválido"
	case "oneof":
		return "deve ser um de: " + fe.Param()
	}

	switch fe.Kind() {
	case reflect.String:
		return getMessageForString(fe)
	case reflect.Int, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
		return getMessageForNumber(fe)
	}

	return "valor inválido"
}

func getMessageForNumber(fe validator.FieldError) string {
	switch fe.Tag() {
	case "lte", "max":
		return "deve ser menor ou igual a " + fe.Param()
	case "gte", "min":
		return "deve ser maior ou igual a " + fe.Param()
	case "gt":
		return "deve ser maior que " + fe.Param()
	}

	return "valor inválido"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "lte", "max":
		return "tamanho deve ser no máximo " + fe.Param()
	case "gte", "min":
		return "tamanho deve ser no mínimo " + fe.Param()
	case "len":
		return "tamanho deve ser exatamente " + fe.Param()
	}

	return "valor inválido"
}

const invalidId = "ID inválido"
