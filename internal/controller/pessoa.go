package controller

import (
	"net/http"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type pessoaRoutesHandler struct {
	pessoaService service.Pessoa
	validate      *validator.Validate
}

func newPessoaRoutesHandler(outer *echo.Group, services *service.Services, validate *validator.Validate) *pessoaRoutesHandler {
	h := &pessoaRoutesHandler{services.Pessoa, validate}
	g := outer.Group("/pessoas")
	g.GET("", h.GetPessoas)
	g.GET("/:cpf", h.GetPessoa)
	g.POST("/cadastra", h.CreatePessoa)
	g.PATCH("/:cpf", h.UpdatePessoa)
	g.DELETE("/:cpf", h.DeletePessoa)

	return h
}

func (h *pessoaRoutesHandler) GetPessoas(c echo.Context) error {
	pessoas, err := h.pessoaService.GetPessoas(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, pessoas, ""); e != nil {
		return e
	}

	return nil
}

func (h *pessoaRoutesHandler) GetPessoa(c echo.Context) error {
	pessoa, err := h.pessoaService.GetPessoaByCpf(c.Request().Context(), c.Param("cpf"))
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, pessoa, ""); e != nil {
		return e
	}

	return nil
}

func (h *pessoaRoutesHandler) CreatePessoa(c echo.Context) error {
	var input entity.CreatePessoaInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	if err := h.pessoaService.CreatePessoa(c.Request().Context(), &input); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusCreated, map[string]string{"cpf": input.Cpf}, "Pessoa criada com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *pessoaRoutesHandler) UpdatePessoa(c echo.Context) error {
	body, err := readPatch(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.pessoaService.UpdatePessoa(c.Request().Context(), c.Param("cpf"), body); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Pessoa atualizada com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *pessoaRoutesHandler) DeletePessoa(c echo.Context) error {
	if err := h.pessoaService.DeletePessoa(c.Request().Context(), c.Param("cpf")); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Pessoa deletada com sucesso"); e != nil {
		return e
	}

	return nil
}
