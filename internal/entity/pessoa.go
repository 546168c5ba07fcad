package entity

import "reciclame-api/internal/patch"

// db model
type Pessoa struct {
	Cpf            string  `json:"cpf" db:"cpf"`
	Nome           string  `json:"nome" db:"nome"`
	EnderecoRua    *string `json:"endereco_rua" db:"endereco_rua"`
	EnderecoNumero *string `json:"endereco_numero" db:"endereco_numero"`
	EnderecoBairro *string `json:"endereco_bairro" db:"endereco_bairro"`
	EnderecoCidade *string `json:"endereco_cidade" db:"endereco_cidade"`
	EnderecoUf     *string `json:"endereco_uf" db:"endereco_uf"`
	DataNascimento *Date   `json:"data_nascimento" db:"data_nascimento"`
	Telefone       *string `json:"telefone" db:"telefone"`
	Email          *string `json:"email" db:"email"`
}

// controller + service input model
type CreatePessoaInput struct {
	Cpf            string  `json:"cpf" validate:"required,cpf"`
	Nome           string  `json:"nome" validate:"required,max=100"`
	EnderecoRua    *string `json:"endereco_rua" validate:"omitempty,max=100"`
	EnderecoNumero *string `json:"endereco_numero" validate:"omitempty,max=10"`
	EnderecoBairro *string `json:"endereco_bairro" validate:"omitempty,max=50"`
	EnderecoCidade *string `json:"endereco_cidade" validate:"omitempty,max=50"`
	EnderecoUf     *string `json:"endereco_uf" validate:"omitempty,len=2"`
	DataNascimento *Date   `json:"data_nascimento"`
	Telefone       *string `json:"telefone" validate:"omitempty,max=20"`
	Email          *string `json:"email" validate:"omitempty,email,max=100"`
}

var PessoaSchema = patch.Schema{
	Table:     "pessoa",
	KeyColumn: "cpf",
	Fields: map[string]patch.Field{
		"nome":            {Kind: patch.Text, NonEmpty: true, MaxLen: 100},
		"email":           {Kind: patch.Text, Nullable: true, MaxLen: 100},
		"telefone":        {Kind: patch.Text, Nullable: true, MaxLen: 20},
		"endereco_rua":    {Kind: patch.Text, Nullable: true, MaxLen: 100},
		"endereco_numero": {Kind: patch.Text, Nullable: true, MaxLen: 10},
		"endereco_bairro": {Kind: patch.Text, Nullable: true, MaxLen: 50},
		"endereco_cidade": {Kind: patch.Text, Nullable: true, MaxLen: 50},
		"endereco_uf":     {Kind: patch.Text, Nullable: true, Len: 2},
	},
}
