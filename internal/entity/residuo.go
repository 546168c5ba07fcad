package entity

import (
	"time"

	"reciclame-api/internal/patch"
)

// Largest value a NUMERIC(10, 2) column holds.
const maxNumeric10_2 = 99999999.99

type Residuo struct {
	IdResiduo    int64     `json:"id_residuo" db:"id_residuo"`
	IdTipo       int64     `json:"id_tipo" db:"id_tipo"`
	Peso         float64   `json:"peso" db:"peso"`
	DataRegistro time.Time `json:"data_registro" db:"data_registro"`
	IdCoop       *int64    `json:"id_coop" db:"id_coop"`
	CnpjEmpresa  *string   `json:"cnpj_empresa" db:"cnpj_empresa"`
}

// Registering a residue attaches it to a collection and completes that collection.
// PesoColetado defaults to Peso.
type RegisterResiduoInput struct {
	IdTipo       FlexInt    `json:"id_tipo" validate:"required,gt=0"`
	Peso         FlexFloat  `json:"peso" validate:"required,gt=0"`
	IdCoop       *FlexInt   `json:"id_coop" validate:"omitempty,gt=0"`
	CnpjEmpresa  *string    `json:"cnpj_empresa" validate:"omitempty,cnpj"`
	IdColeta     FlexInt    `json:"id_coleta" validate:"required,gt=0"`
	PesoColetado *FlexFloat `json:"peso_coletado" validate:"omitempty,gt=0"`
}

var ResiduoSchema = patch.Schema{
	Table:     "residuo",
	KeyColumn: "id_residuo",
	Fields: map[string]patch.Field{
		"id_tipo":      {Kind: patch.Integer, Positive: true},
		"peso":         {Kind: patch.Decimal, Positive: true, Max: maxNumeric10_2},
		"id_coop":      {Kind: patch.Integer, Nullable: true, Positive: true},
		"cnpj_empresa": {Kind: patch.Text, Nullable: true, Len: 14, Digits: true},
	},
}
