package service

import (
	"reciclame-api/internal/entity"
)

func mapUser(u *entity.User) *entity.UserOutputModel {
	return &entity.UserOutputModel{
		Id:          u.Id,
		Cpf:         u.Cpf,
		Nome:        u.Nome,
		IsAdm:       u.NivelAcesso == entity.NivelAdm,
		IsUser:      u.NivelAcesso == entity.NivelUsuario,
		IsExterno:   u.NivelAcesso == entity.NivelExterno,
		NivelAcesso: u.NivelAcesso,
	}
}
