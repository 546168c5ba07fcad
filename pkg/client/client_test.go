package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func writeEnvelope(w http.ResponseWriter, status int, data any, errMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": status < 400,
		"data":    data,
		"error":   errMsg,
	})
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(filepath.Join(t.TempDir(), "session.json"))
}

func TestLogin_SavesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req loginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "segredo123" {
			writeEnvelope(w, http.StatusUnauthorized, nil, "CPF ou senha incorretos")
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]any{
			"user": User{Id: 1, Cpf: "12345678901", Nome: "Ana", IsUser: true, NivelAcesso: "usuario"},
		}, "")
	}))
	defer srv.Close()

	c := New(srv.URL)
	session := newTestSession(t)

	_, err := c.Login(context.Background(), session, "12345678901", "errada")
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401, got %v", err)
	}
	if session.LoggedIn() {
		t.Error("failed login populated the session")
	}

	user, err := c.Login(context.Background(), session, "12345678901", "segredo123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Nome != "Ana" || !session.LoggedIn() {
		t.Errorf("user = %+v, logged in = %v", user, session.LoggedIn())
	}

	restored := NewSession(session.path)
	if err := restored.Load(); err != nil {
		t.Fatal(err)
	}
	if u := restored.User(); u == nil || u.Cpf != "12345678901" {
		t.Errorf("restored session user = %+v", u)
	}

	if err := c.Logout(restored); err != nil {
		t.Fatal(err)
	}
	if err := session.Load(); err != nil {
		t.Fatal(err)
	}
	if session.LoggedIn() {
		t.Error("session survived logout")
	}
}

func TestDo_RetriesOnce(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []int
		wantCalls  int32
		wantStatus int
	}{
		{name: "recovers after 5xx", statuses: []int{500, 200}, wantCalls: 2},
		{name: "gives up after second 5xx", statuses: []int{503, 502, 200}, wantCalls: 2, wantStatus: 502},
		{name: "no retry on 4xx", statuses: []int{404, 200}, wantCalls: 1, wantStatus: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := calls.Add(1)
				writeEnvelope(w, tt.statuses[n-1], nil, "falha")
			}))
			defer srv.Close()

			err := New(srv.URL).Health(context.Background())
			if calls.Load() != tt.wantCalls {
				t.Errorf("server called %d times, expected %d", calls.Load(), tt.wantCalls)
			}
			if tt.wantStatus == 0 {
				if err != nil {
					t.Errorf("unexpected error %v", err)
				}
				return
			}
			if !IsStatus(err, tt.wantStatus) {
				t.Errorf("error = %v, expected status %d", err, tt.wantStatus)
			}
		})
	}
}

func TestDo_RetriesTransportError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Error("response writer cannot hijack")
				return
			}
			conn, _, _ := hj.Hijack()
			_ = conn.Close()
			return
		}
		writeEnvelope(w, http.StatusOK, nil, "")
	}))
	defer srv.Close()

	if err := New(srv.URL, WithTimeout(time.Second)).Health(context.Background()); err != nil {
		t.Fatalf("Health after dropped connection: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("server called %d times, expected 2", calls.Load())
	}
}

func TestMyCollections(t *testing.T) {
	rows := []ColetaResumo{
		{IdColeta: 1, Cpf: "12345678901", Status: "concluida", Localizacao: "Rua A", TiposResiduos: "Plástico, Vidro", PesoTotal: 12.5},
		{IdColeta: 2, Cpf: "12345678901", Status: "agendada", Localizacao: "Av. Boa Viagem", TiposResiduos: "Papel"},
		{IdColeta: 3, Cpf: "12345678901", Status: "cancelada", Localizacao: "Rua A", TiposResiduos: "Metal"},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/coletas/coletas-residuos/12345678901" {
			writeEnvelope(w, http.StatusNotFound, nil, "not found")
			return
		}
		writeEnvelope(w, http.StatusOK, rows, "")
	}))
	defer srv.Close()

	c := New(srv.URL)
	session := newTestSession(t)

	if _, err := c.MyCollections(context.Background(), session, Filter{}); err != ErrNotLoggedIn {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}

	if err := session.Save(&User{Cpf: "12345678901"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []int64
	}{
		{name: "no filter", wantIDs: []int64{1, 2, 3}},
		{name: "search location", filter: Filter{Search: "rua a"}, wantIDs: []int64{1, 3}},
		{name: "search type", filter: Filter{Search: "papel"}, wantIDs: []int64{2}},
		{name: "status", filter: Filter{Status: "concluida"}, wantIDs: []int64{1}},
		{name: "tipo", filter: Filter{Tipo: "Vidro"}, wantIDs: []int64{1}},
		{name: "combined", filter: Filter{Search: "rua", Status: "agendada"}, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.MyCollections(context.Background(), session, tt.filter)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d rows, expected %d", len(got), len(tt.wantIDs))
			}
			for i, r := range got {
				if r.IdColeta != tt.wantIDs[i] {
					t.Errorf("row %d = %d, expected %d", i, r.IdColeta, tt.wantIDs[i])
				}
			}
		})
	}

	stats := Summarize(rows)
	if stats != (Stats{Total: 3, Agendadas: 1, Concluidas: 1, Canceladas: 1}) {
		t.Errorf("Summarize = %+v", stats)
	}
}
