package entity

import "reciclame-api/internal/patch"

type Empresa struct {
	Cnpj        string  `json:"cnpj" db:"cnpj"`
	RazaoSocial string  `json:"razao_social" db:"razao_social"`
	AreaAtuacao *string `json:"area_atuacao" db:"area_atuacao"`
}

type CreateEmpresaInput struct {
	Cnpj        string  `json:"cnpj" validate:"required,cnpj"`
	RazaoSocial string  `json:"razao_social" validate:"required,max=100"`
	AreaAtuacao *string `json:"area_atuacao" validate:"omitempty,max=100"`
}

var EmpresaSchema = patch.Schema{
	Table:     "empresa",
	KeyColumn: "cnpj",
	Fields: map[string]patch.Field{
		"razao_social": {Kind: patch.Text, NonEmpty: true, MaxLen: 100},
		"area_atuacao": {Kind: patch.Text, Nullable: true, MaxLen: 100},
	},
}
