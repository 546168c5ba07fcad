package entity

import "reciclame-api/internal/patch"

type Cooperativa struct {
	IdCoop                  int64    `json:"id_coop" db:"id_coop"`
	Nome                    string   `json:"nome" db:"nome"`
	EnderecoRua             *string  `json:"endereco_rua" db:"endereco_rua"`
	EnderecoNumero          *string  `json:"endereco_numero" db:"endereco_numero"`
	EnderecoBairro          *string  `json:"endereco_bairro" db:"endereco_bairro"`
	EnderecoCidade          *string  `json:"endereco_cidade" db:"endereco_cidade"`
	EnderecoUf              *string  `json:"endereco_uf" db:"endereco_uf"`
	CapacidadeProcessamento *float64 `json:"capacidade_processamento" db:"capacidade_processamento"`
}

type CreateCooperativaInput struct {
	Nome                    string   `json:"nome" validate:"required,max=100"`
	EnderecoRua             *string  `json:"endereco_rua" validate:"omitempty,max=100"`
	EnderecoNumero          *string  `json:"endereco_numero" validate:"omitempty,max=10"`
	EnderecoBairro          *string  `json:"endereco_bairro" validate:"omitempty,max=50"`
	EnderecoCidade          *string  `json:"endereco_cidade" validate:"omitempty,max=50"`
	EnderecoUf              *string  `json:"endereco_uf" validate:"omitempty,len=2"`
	CapacidadeProcessamento *float64 `json:"capacidade_processamento" validate:"omitempty,gte=0"`
}

var CooperativaSchema = patch.Schema{
	Table:     "cooperativa",
	KeyColumn: "id_coop",
	Fields: map[string]patch.Field{
		"nome":                     {Kind: patch.Text, NonEmpty: true, MaxLen: 100},
		"endereco_rua":             {Kind: patch.Text, Nullable: true, MaxLen: 100},
		"endereco_numero":          {Kind: patch.Text, Nullable: true, MaxLen: 10},
		"endereco_bairro":          {Kind: patch.Text, Nullable: true, MaxLen: 50},
		"endereco_cidade":          {Kind: patch.Text, Nullable: true, MaxLen: 50},
		"endereco_uf":              {Kind: patch.Text, Nullable: true, Len: 2},
		"capacidade_processamento": {Kind: patch.Decimal, Nullable: true, NonNegative: true, Max: maxNumeric10_2},
	},
}
