package entity

import "reciclame-api/internal/patch"

type TipoResiduo struct {
	IdTipo    int64   `json:"id_tipo" db:"id_tipo"`
	Nome      string  `json:"nome" db:"nome"`
	Descricao *string `json:"descricao" db:"descricao"`
}

type CreateTipoResiduoInput struct {
	Nome      string  `json:"nome" validate:"required,max=50"`
	Descricao *string `json:"descricao" validate:"omitempty,max=255"`
}

var TipoResiduoSchema = patch.Schema{
	Table:     "tipo_residuo",
	KeyColumn: "id_tipo",
	Fields: map[string]patch.Field{
		"nome":      {Kind: patch.Text, NonEmpty: true, MaxLen: 50},
		"descricao": {Kind: patch.Text, Nullable: true, MaxLen: 255},
	},
}
