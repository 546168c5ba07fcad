package entity

import (
	"math"

	"reciclame-api/internal/patch"
)

type PontoColeta struct {
	IdPonto      int64  `json:"id_ponto" db:"id_ponto"`
	Localizacao  string `json:"localizacao" db:"localizacao"`
	Capacidade   *int64 `json:"capacidade" db:"capacidade"`
	TiposAceitos string `json:"tipos_aceitos" db:"tipos_aceitos"`
}

// Tipo is the id of the waste type accepted by the new point.
type CreatePontoColetaInput struct {
	Localizacao string   `json:"localizacao" validate:"required,max=255"`
	Capacidade  *FlexInt `json:"capacidade" validate:"omitempty,gte=0"`
	Tipo        FlexInt  `json:"tipo" validate:"required,gt=0"`
}

var PontoColetaSchema = patch.Schema{
	Table:     "ponto_coleta",
	KeyColumn: "id_ponto",
	Fields: map[string]patch.Field{
		"localizacao": {Kind: patch.Text, NonEmpty: true, MaxLen: 255},
		"capacidade":  {Kind: patch.Integer, Nullable: true, NonNegative: true, Max: math.MaxInt32},
	},
}
