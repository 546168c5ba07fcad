package controller

import (
	"net/http"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type empresaRoutesHandler struct {
	empresaService service.Empresa
	validate       *validator.Validate
}

func newEmpresaRoutesHandler(outer *echo.Group, services *service.Services, validate *validator.Validate) *empresaRoutesHandler {
	h := &empresaRoutesHandler{services.Empresa, validate}
	g := outer.Group("/empresas")
	g.GET("", h.GetEmpresas)
	g.GET("/:cnpj", h.GetEmpresa)
	g.POST("/cadastra", h.CreateEmpresa)
	g.PATCH("/atualizar/:cnpj", h.UpdateEmpresa)
	g.PATCH("/:cnpj", h.UpdateEmpresa)
	g.DELETE("/remover/:cnpj", h.DeleteEmpresa)
	g.DELETE("/:cnpj", h.DeleteEmpresa)

	return h
}

func (h *empresaRoutesHandler) GetEmpresas(c echo.Context) error {
	empresas, err := h.empresaService.GetEmpresas(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, empresas, ""); e != nil {
		return e
	}

	return nil
}

func (h *empresaRoutesHandler) GetEmpresa(c echo.Context) error {
	empresa, err := h.empresaService.GetEmpresaByCnpj(c.Request().Context(), c.Param("cnpj"))
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, empresa, ""); e != nil {
		return e
	}

	return nil
}

func (h *empresaRoutesHandler) CreateEmpresa(c echo.Context) error {
	var input entity.CreateEmpresaInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	if err := h.empresaService.CreateEmpresa(c.Request().Context(), &input); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusCreated, map[string]string{"cnpj": input.Cnpj}, "Empresa criada com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *empresaRoutesHandler) UpdateEmpresa(c echo.Context) error {
	body, err := readPatch(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.empresaService.UpdateEmpresa(c.Request().Context(), c.Param("cnpj"), body); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Empresa atualizada com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *empresaRoutesHandler) DeleteEmpresa(c echo.Context) error {
	if err := h.empresaService.DeleteEmpresa(c.Request().Context(), c.Param("cnpj")); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Empresa deletada com sucesso"); e != nil {
		return e
	}

	return nil
}
