package service

import "errors"

var (
	ErrPessoaNotFound      = errors.New("Pessoa não encontrada")
	ErrEmpresaNotFound     = errors.New("Empresa não encontrada")
	ErrCooperativaNotFound = errors.New("Cooperativa não encontrada")
	ErrTipoResiduoNotFound = errors.New("Tipo de resíduo não encontrado")
	ErrPontoColetaNotFound = errors.New("Ponto de coleta não encontrado")
	ErrResiduoNotFound     = errors.New("Resíduo não encontrado")
	ErrColetaNotFound      = errors.New("Coleta não encontrada")
	ErrUserNotFound        = errors.New("Usuário não encontrado")

	ErrAlreadyExists      = errors.New("Registro já cadastrado")
	ErrInvalidReference   = errors.New("Referência inválida para outro registro")
	ErrInvalidValue       = errors.New("Valor inválido para um dos campos")
	ErrInvalidDate        = errors.New("Data inválida, use o formato ISO-8601")
	ErrInvalidCredentials = errors.New("CPF ou senha incorretos")
	ErrInvalidNivelAcesso = errors.New("Nível de acesso inválido. Use: adm, usuario ou externo")
)
