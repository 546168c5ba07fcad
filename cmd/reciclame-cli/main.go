package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"reciclame-api/pkg/client"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const usage = `Usage: reciclame-cli <command> [flags]

Commands:
  login     -cpf <cpf> [-password <senha>]
  logout
  whoami
  coletas   [-busca <texto>] [-status <status>] [-tipo <tipo>]

Environment:
  RECICLAME_API_URL   API base URL (default http://localhost:3000)
  RECICLAME_SESSION   session file (default <config dir>/reciclame/session.json)
`

func main() {
	_ = godotenv.Load()
	log.SetHeader("${level}")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	sessionPath := os.Getenv("RECICLAME_SESSION")
	if sessionPath == "" {
		var err error
		if sessionPath, err = client.DefaultSessionPath(); err != nil {
			log.Fatalf("cannot locate session file: %v", err)
		}
	}
	session := client.NewSession(sessionPath)
	if err := session.Load(); err != nil {
		log.Fatalf("cannot read session: %v", err)
	}

	baseURL := os.Getenv("RECICLAME_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	c := client.New(baseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "login":
		err = runLogin(ctx, c, session, args)
	case "logout":
		err = c.Logout(session)
		if err == nil {
			fmt.Println("Sessão encerrada")
		}
	case "whoami":
		err = runWhoami(session)
	case "coletas":
		err = runColetas(ctx, c, session, args)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func runLogin(ctx context.Context, c *client.Client, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	cpf := fs.String("cpf", "", "CPF do usuário")
	password := fs.String("password", "", "senha (lida da entrada padrão quando omitida)")
	_ = fs.Parse(args)

	if *cpf == "" {
		return errors.New("CPF e senha são obrigatórios")
	}
	if *password == "" {
		fmt.Print("Senha: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return err
		}
		*password = strings.TrimSpace(line)
	}

	user, err := c.Login(ctx, session, *cpf, *password)
	if err != nil {
		if client.IsStatus(err, http.StatusUnauthorized) {
			return errors.New("CPF ou senha incorretos")
		}
		return err
	}

	fmt.Printf("Bem-vindo, %s (%s)\n", user.Nome, user.NivelAcesso)
	return nil
}

func runWhoami(session *client.Session) error {
	user := session.User()
	if user == nil {
		return client.ErrNotLoggedIn
	}

	fmt.Printf("%s\t%s\t%s\n", user.Cpf, user.Nome, user.NivelAcesso)
	return nil
}

func runColetas(ctx context.Context, c *client.Client, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("coletas", flag.ExitOnError)
	var f client.Filter
	fs.StringVar(&f.Search, "busca", "", "filtra por localização ou tipo de resíduo")
	fs.StringVar(&f.Status, "status", "", "agendada, em_andamento, concluida ou cancelada")
	fs.StringVar(&f.Tipo, "tipo", "", "tipo de resíduo")
	_ = fs.Parse(args)

	rows, err := c.MyCollections(ctx, session, f)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATA\tSTATUS\tLOCAL\tTIPOS\tPESO (kg)")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.2f\n",
			r.IdColeta, r.DataFormatada, r.StatusFormatado, r.Localizacao, r.TiposResiduos, r.PesoTotal)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	s := client.Summarize(rows)
	fmt.Printf("\nTotal: %d  agendadas: %d  em andamento: %d  concluídas: %d  canceladas: %d\n",
		s.Total, s.Agendadas, s.EmAndamento, s.Concluidas, s.Canceladas)
	return nil
}
