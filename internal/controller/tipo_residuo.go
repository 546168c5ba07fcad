package controller

import (
	"net/http"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type tipoResiduoRoutesHandler struct {
	tipoResiduoService service.TipoResiduo
	validate           *validator.Validate
}

func newTipoResiduoRoutesHandler(outer *echo.Group, services *service.Services, validate *validator.Validate) *tipoResiduoRoutesHandler {
	h := &tipoResiduoRoutesHandler{services.TipoResiduo, validate}
	g := outer.Group("/tipos-residuos")
	g.GET("", h.GetTiposResiduos)
	g.GET("/:id", h.GetTipoResiduo)
	g.POST("/cadastra", h.CreateTipoResiduo)
	g.PATCH("/atualizar/:id", h.UpdateTipoResiduo)
	g.PATCH("/:id", h.UpdateTipoResiduo)
	g.DELETE("/remover/:id", h.DeleteTipoResiduo)
	g.DELETE("/:id", h.DeleteTipoResiduo)

	return h
}

func (h *tipoResiduoRoutesHandler) GetTiposResiduos(c echo.Context) error {
	tipos, err := h.tipoResiduoService.GetTiposResiduos(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, tipos, ""); e != nil {
		return e
	}

	return nil
}

func (h *tipoResiduoRoutesHandler) GetTipoResiduo(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	tipo, err := h.tipoResiduoService.GetTipoResiduoById(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, tipo, ""); e != nil {
		return e
	}

	return nil
}

func (h *tipoResiduoRoutesHandler) CreateTipoResiduo(c echo.Context) error {
	var input entity.CreateTipoResiduoInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	id, err := h.tipoResiduoService.CreateTipoResiduo(c.Request().Context(), &input)
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusCreated, map[string]int64{"id_tipo": id}, "Tipo de resíduo criado com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *tipoResiduoRoutesHandler) UpdateTipoResiduo(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	body, err := readPatch(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.tipoResiduoService.UpdateTipoResiduo(c.Request().Context(), id, body); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Tipo de resíduo atualizado com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *tipoResiduoRoutesHandler) DeleteTipoResiduo(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	if err := h.tipoResiduoService.DeleteTipoResiduo(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Tipo de resíduo deletado com sucesso"); e != nil {
		return e
	}

	return nil
}
