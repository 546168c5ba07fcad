package controller

import (
	"net/http"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type coletaRoutesHandler struct {
	coletaService service.Coleta
	validate      *validator.Validate
}

func newColetaRoutesHandler(outer *echo.Group, services *service.Services, validate *validator.Validate) *coletaRoutesHandler {
	h := &coletaRoutesHandler{services.Coleta, validate}
	g := outer.Group("/coletas")
	g.GET("", h.GetColetas)
	g.GET("/coletas-residuos/:cpf", h.GetColetasResiduos)
	g.GET("/:id", h.GetColeta)
	g.POST("/coleta-cadastro", h.CreateColeta)
	g.PATCH("/atualizar/:id", h.UpdateColeta)
	g.PATCH("/:id", h.UpdateColeta)
	g.DELETE("/remove/:id", h.DeleteColeta)
	g.DELETE("/:id", h.DeleteColeta)

	return h
}

func (h *coletaRoutesHandler) GetColetas(c echo.Context) error {
	coletas, err := h.coletaService.GetColetas(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, coletas, ""); e != nil {
		return e
	}

	return nil
}

func (h *coletaRoutesHandler) GetColeta(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	coleta, err := h.coletaService.GetColetaById(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, coleta, ""); e != nil {
		return e
	}

	return nil
}

// GetColetasResiduos lists the collections of one person with their residue totals.
func (h *coletaRoutesHandler) GetColetasResiduos(c echo.Context) error {
	rows, err := h.coletaService.GetColetasResiduosByCpf(c.Request().Context(), c.Param("cpf"))
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, rows, ""); e != nil {
		return e
	}

	return nil
}

func (h *coletaRoutesHandler) CreateColeta(c echo.Context) error {
	var input entity.CreateColetaInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	id, err := h.coletaService.CreateColeta(c.Request().Context(), &input)
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusCreated, map[string]int64{"id_coleta": id}, "Coleta criada com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *coletaRoutesHandler) UpdateColeta(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	body, err := readPatch(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.coletaService.UpdateColeta(c.Request().Context(), id, body); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Coleta atualizada com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *coletaRoutesHandler) DeleteColeta(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return respondFail(c, http.StatusBadRequest, invalidId)
	}

	if err := h.coletaService.DeleteColeta(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Coleta deletada com sucesso"); e != nil {
		return e
	}

	return nil
}
