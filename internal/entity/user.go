package entity

const (
	NivelAdm     = "adm"
	NivelUsuario = "usuario"
	NivelExterno = "externo"
)

// db model, row of grupos_usuarios joined with pessoa
type User struct {
	Id          int64  `db:"id"`
	Cpf         string `db:"cpf"`
	Nome        string `db:"nome"`
	NivelAcesso string `db:"nivel_acesso"`
	SenhaHash   string `db:"senha_hash"`
}

type LoginInput struct {
	Cpf      string `json:"cpf" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterUserInput struct {
	Cpf         string `json:"cpf" validate:"required"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	NivelAcesso string `json:"nivel_acesso" validate:"omitempty,oneof=adm usuario externo"`
}

type UpdateNivelAcessoInput struct {
	NovoNivel string `json:"novo_nivel" validate:"required,oneof=adm usuario externo"`
}

// controller model
type UserOutputModel struct {
	Id          int64  `json:"id"`
	Cpf         string `json:"cpf"`
	Nome        string `json:"nome"`
	IsAdm       bool   `json:"isAdm"`
	IsUser      bool   `json:"isUser"`
	IsExterno   bool   `json:"isExterno"`
	NivelAcesso string `json:"nivel_acesso"`
}
