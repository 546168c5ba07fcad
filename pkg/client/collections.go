package client

import (
	"context"
	"strings"
	"time"
)

// ColetaResumo is one row of a person's collection history.
type ColetaResumo struct {
	IdColeta        int64     `json:"id_coleta"`
	Data            time.Time `json:"data"`
	Status          string    `json:"status"`
	Cpf             string    `json:"cpf"`
	NomePessoa      string    `json:"nome_pessoa"`
	Localizacao     string    `json:"localizacao"`
	TiposResiduos   string    `json:"tipos_residuos"`
	PesoTotal       float64   `json:"peso_total"`
	PontosColeta    int64     `json:"pontos_coleta"`
	StatusFormatado string    `json:"status_formatado"`
	DataFormatada   string    `json:"data_formatada"`
}

// Filter narrows a collection list. Empty fields match everything.
type Filter struct {
	Search string
	Status string
	Tipo   string
}

func (f Filter) matches(r ColetaResumo) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.Localizacao), term) &&
			!strings.Contains(strings.ToLower(r.TiposResiduos), term) {
			return false
		}
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Tipo != "" && !strings.Contains(r.TiposResiduos, f.Tipo) {
		return false
	}
	return true
}

// Stats counts collections per status.
type Stats struct {
	Total       int
	Agendadas   int
	EmAndamento int
	Concluidas  int
	Canceladas  int
}

func Summarize(rows []ColetaResumo) Stats {
	s := Stats{Total: len(rows)}
	for _, r := range rows {
		switch r.Status {
		case "agendada":
			s.Agendadas++
		case "em_andamento":
			s.EmAndamento++
		case "concluida":
			s.Concluidas++
		case "cancelada":
			s.Canceladas++
		}
	}
	return s
}

// MyCollections fetches the collections of the session user and applies f locally.
func (c *Client) MyCollections(ctx context.Context, session *Session, f Filter) ([]ColetaResumo, error) {
	user := session.User()
	if user == nil {
		return nil, ErrNotLoggedIn
	}

	rows, err := c.ColetasResiduos(ctx, user.Cpf)
	if err != nil {
		return nil, err
	}

	out := make([]ColetaResumo, 0, len(rows))
	for _, r := range rows {
		if f.matches(r) {
			out = append(out, r)
		}
	}

	return out, nil
}
