package controller

import (
	"net/http"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type cooperativaRoutesHandler struct {
	cooperativaService service.Cooperativa
	validate           *validator.Validate
}

func newCooperativaRoutesHandler(outer *echo.Group, services *service.Services, validate *validator.Validate) *cooperativaRoutesHandler {
	h := &cooperativaRoutesHandler{services.Cooperativa, validate}
	g := outer.Group("/cooperativas")
	g.GET("", h.GetCooperativas)
	g.GET("/:id", h.GetCooperativa)
	g.POST("/cadastra", h.CreateCooperativa)
	g.PATCH("/:id", h.UpdateCooperativa)
	g.DELETE("/remover/:id", h.DeleteCooperativa)
	g.DELETE("/:id", h.DeleteCooperativa)

	return h
}

func (h *cooperativaRoutesHandler) GetCooperativas(c echo.Context) error {
	cooperativas, err := h.cooperativaService.GetCooperativas(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, cooperativas, ""); e != nil {
		return e
	}

	return nil
}

func (h *cooperativaRoutesHandler) GetCooperativa(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	cooperativa, err := h.cooperativaService.GetCooperativaById(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, cooperativa, ""); e != nil {
		return e
	}

	return nil
}

func (h *cooperativaRoutesHandler) CreateCooperativa(c echo.Context) error {
	var input entity.CreateCooperativaInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	id, err := h.cooperativaService.CreateCooperativa(c.Request().Context(), &input)
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusCreated, map[string]int64{"id_coop": id}, "Cooperativa criada com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *cooperativaRoutesHandler) UpdateCooperativa(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	body, err := readPatch(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.cooperativaService.UpdateCooperativa(c.Request().Context(), id, body); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Cooperativa atualizada com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *cooperativaRoutesHandler) DeleteCooperativa(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	if err := h.cooperativaService.DeleteCooperativa(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Cooperativa deletada com sucesso"); e != nil {
		return e
	}

	return nil
}
