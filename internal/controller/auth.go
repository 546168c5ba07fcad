package controller

import (
	"net/http"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type authRoutesHandler struct {
	authService service.Auth
	validate    *validator.Validate
}

type userResponse struct {
	User *entity.UserOutputModel `json:"user"`
}

func newAuthRoutesHandler(outer *echo.Group, services *service.Services, validate *validator.Validate) *authRoutesHandler {
	h := &authRoutesHandler{services.Auth, validate}
	g := outer.Group("/auth")
	g.POST("/registrar", h.Register)
	g.POST("/login", h.Login)
	g.PATCH("/nivel-acesso/:cpf", h.UpdateNivelAcesso)

	return h
}

func (h *authRoutesHandler) Register(c echo.Context) error {
	var input entity.RegisterUserInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), &input)
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusCreated, userResponse{user}, "Usuário cadastrado com sucesso"); e != nil {
		return e
	}

	return nil
}

func (h *authRoutesHandler) Login(c echo.Context) error {
	var input entity.LoginInput
	if err := (&echo.DefaultBinder{}).BindBody(c, &input); err != nil {
		return respondFail(c, http.StatusBadRequest, malformedInput)
	}
	if err := h.validate.Struct(&input); err != nil {
		return respondFail(c, http.StatusBadRequest, "CPF e senha são obrigatórios")
	}

	user, err := h.authService.Login(c.Request().Context(), &input)
	if err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, userResponse{user}, ""); e != nil {
		return e
	}

	return nil
}

// UpdateNivelAcesso changes the access level of the user registered under :cpf.
func (h *authRoutesHandler) UpdateNivelAcesso(c echo.Context) error {
	var input entity.UpdateNivelAcessoInput
	if err := (&echo.DefaultBinder{}).BindBody(c, &input); err != nil {
		return respondFail(c, http.StatusBadRequest, malformedInput)
	}
	if input.NovoNivel == "" {
		return respondFail(c, http.StatusBadRequest, "Novo nível de acesso é obrigatório")
	}

	if err := h.authService.UpdateNivelAcesso(c.Request().Context(), c.Param("cpf"), input.NovoNivel); err != nil {
		return respondError(c, err)
	}
	if e := respond(c, http.StatusOK, nil, "Nível de acesso atualizado para "+input.NovoNivel); e != nil {
		return e
	}

	return nil
}
