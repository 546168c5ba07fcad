package controller

import (
	"net/http"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type residuoRoutesHandler struct {
	residuoService service.Residuo
	validate       *validator.Validate
}

func newResiduoRoutesHandler(outer *echo.Group, services *service.Services, validate *validator.Validate) *residuoRoutesHandler {
	h := &residuoRoutesHandler{services.Residuo, validate}
	g := outer.Group("/residuos")
	g.GET("", h.GetResiduos)
	g.GET("/:id", h.GetResiduo)
	g.POST("/registrar", h.RegisterResiduo)
	g.PATCH("/atualizar/:id", h.UpdateResiduo)
	g.PATCH("/:id", h.UpdateResiduo)
	g.DELETE("/remover/:id", h.DeleteResiduo)
	g.DELETE("/:id", h.DeleteResiduo)

	return h
}

func (h *residuoRoutesHandler) GetResiduos(c echo.Context) error {
	residuos, err := h.residuoService.GetResiduos(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, residuos, ""); e != nil {
		return e
	}

	return nil
}

func (h *residuoRoutesHandler) GetResiduo(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	residuo, err := h.residuoService.GetResiduoById(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, residuo, ""); e != nil {
		return e
	}

	return nil
}

// RegisterResiduo records the residue against a collection and closes the collection.
func (h *residuoRoutesHandler) RegisterResiduo(c echo.Context) error {
	var input entity.RegisterResiduoInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	id, err := h.residuoService.RegisterResiduo(c.Request().Context(), &input)
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusCreated, map[string]int64{"id_residuo": id}, "Resíduo cadastrado e coleta concluída com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *residuoRoutesHandler) UpdateResiduo(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	body, err := readPatch(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.residuoService.UpdateResiduo(c.Request().Context(), id, body); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Resíduo atualizado com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *residuoRoutesHandler) DeleteResiduo(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	if err := h.residuoService.DeleteResiduo(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Resíduo deletado com sucesso"); e != nil {
		return e
	}

	return nil
}
