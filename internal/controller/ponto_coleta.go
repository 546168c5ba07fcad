package controller

import (
	"net/http"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type pontoColetaRoutesHandler struct {
	pontoColetaService service.PontoColeta
	validate           *validator.Validate
}

func newPontoColetaRoutesHandler(outer *echo.Group, services *service.Services, validate *validator.Validate) *pontoColetaRoutesHandler {
	h := &pontoColetaRoutesHandler{services.PontoColeta, validate}
	g := outer.Group("/pontos-coleta")
	g.GET("", h.GetPontosColeta)
	g.GET("/:id", h.GetPontoColeta)
	g.POST("/cadastra", h.CreatePontoColeta)
	g.PATCH("/atualizar/:id", h.UpdatePontoColeta)
	g.PATCH("/:id", h.UpdatePontoColeta)
	g.DELETE("/remover/:id", h.DeletePontoColeta)
	g.DELETE("/:id", h.DeletePontoColeta)

	return h
}

func (h *pontoColetaRoutesHandler) GetPontosColeta(c echo.Context) error {
	pontos, err := h.pontoColetaService.GetPontosColeta(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, pontos, ""); e != nil {
		return e
	}

	return nil
}

func (h *pontoColetaRoutesHandler) GetPontoColeta(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	ponto, err := h.pontoColetaService.GetPontoColetaById(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, ponto, ""); e != nil {
		return e
	}

	return nil
}

// CreatePontoColeta stores the point together with the waste type it accepts.
func (h *pontoColetaRoutesHandler) CreatePontoColeta(c echo.Context) error {
	var input entity.CreatePontoColetaInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	id, err := h.pontoColetaService.CreatePontoColeta(c.Request().Context(), &input)
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusCreated, map[string]int64{"id_ponto": id}, "Ponto de coleta criado com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *pontoColetaRoutesHandler) UpdatePontoColeta(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	body, err := readPatch(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.pontoColetaService.UpdatePontoColeta(c.Request().Context(), id, body); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Ponto de coleta atualizado com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *pontoColetaRoutesHandler) DeletePontoColeta(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	if err := h.pontoColetaService.DeletePontoColeta(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Ponto de coleta deletado com sucesso"); e != nil {
		return e
	}

	return nil
}
