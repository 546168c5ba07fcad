package entity

import (
	"time"

	"reciclame-api/internal/patch"
)

const (
	ColetaAgendada    = "agendada"
	ColetaEmAndamento = "em_andamento"
	ColetaConcluida   = "concluida"
	ColetaCancelada   = "cancelada"
)

var ColetaStatuses = []string{ColetaAgendada, ColetaEmAndamento, ColetaConcluida, ColetaCancelada}

type Coleta struct {
	IdColeta int64     `json:"id_coleta" db:"id_coleta"`
	Data     time.Time `json:"data" db:"data"`
	Status   string    `json:"status" db:"status"`
	Cpf      string    `json:"cpf" db:"cpf"`
	IdPonto  int64     `json:"id_ponto" db:"id_ponto"`
}

// Data is an ISO-8601 timestamp. Status is always set to agendada.
type CreateColetaInput struct {
	Data    string  `json:"data" validate:"required"`
	Cpf     string  `json:"cpf" validate:"required,cpf"`
	IdPonto FlexInt `json:"id_ponto" validate:"required,gt=0"`
}

// row of view_coletas_pessoa
type ColetaResiduos struct {
	IdColeta        int64     `json:"id_coleta" db:"id_coleta"`
	Data            time.Time `json:"data" db:"data"`
	Status          string    `json:"status" db:"status"`
	Cpf             string    `json:"cpf" db:"cpf"`
	NomePessoa      string    `json:"nome_pessoa" db:"nome_pessoa"`
	Localizacao     string    `json:"localizacao" db:"localizacao"`
	TiposResiduos   string    `json:"tipos_residuos" db:"tipos_residuos"`
	PesoTotal       float64   `json:"peso_total" db:"peso_total"`
	PontosColeta    int64     `json:"pontos_coleta" db:"pontos_coleta"`
	StatusFormatado string    `json:"status_formatado" db:"status_formatado"`
	DataFormatada   string    `json:"data_formatada" db:"data_formatada"`
}

var ColetaSchema = patch.Schema{
	Table:     "coleta",
	KeyColumn: "id_coleta",
	Fields: map[string]patch.Field{
		"data":   {Kind: patch.Timestamp},
		"status": {Kind: patch.Enum, Values: ColetaStatuses},
	},
}
