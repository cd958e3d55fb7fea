package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/guiabeleza/salao/internal/db"
	"github.com/guiabeleza/salao/internal/salon"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	_ = godotenv.Load()

	ctx := context.Background()

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if dsn == "" {
		log.Fatal().Msg("defina DB_DSN ou DATABASE_URL")
	}

	pool, err := db.NewPool(ctx, dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("não foi possível conectar ao banco")
	}
	defer pool.Close()

	repo := salon.NewRepository(pool)
	service := salon.NewService(repo)

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "create":
		if err := runCreate(ctx, service, args); err != nil {
			log.Fatal().Err(err).Msg("falha ao criar salão")
		}
	case "list":
		if err := runList(ctx, service, args); err != nil {
			log.Fatal().Err(err).Msg("falha ao listar salões")
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "salao CLI")
	fmt.Fprintln(os.Stderr, "uso:")
	fmt.Fprintln(os.Stderr, "  salao create --name \"Espaço Bela Flor\" [--city \"São Paulo\"] [--state SP] [--plan verificado_azul]")
	fmt.Fprintln(os.Stderr, "  salao list [--all]")
}

func runCreate(ctx context.Context, service *salon.Service, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		name       = fs.String("name", "", "nome do salão")
		phone      = fs.String("phone", "", "telefone com DDD")
		address    = fs.String("address", "", "endereço")
		city       = fs.String("city", "", "cidade")
		state      = fs.String("state", "", "UF")
		postalCode = fs.String("cep", "", "CEP")
		instagram  = fs.String("instagram", "", "perfil do instagram")
		plan       = fs.String("plan", salon.PlanBasico, "plano (basico, verificado_azul, verificado_dourado)")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" {
		return errors.New("name é obrigatório")
	}
	normalized := salon.NormalizePlan(*plan)
	if !salon.IsValidPlan(normalized) {
		return fmt.Errorf("plano %q inválido", *plan)
	}

	input := salon.CreateSalonInput{
		Name:     *name,
		PlanType: normalized,
	}
	if *phone != "" {
		input.Phone = phone
	}
	if *address != "" {
		input.Address = address
	}
	if *city != "" {
		input.City = city
	}
	if *state != "" {
		input.State = state
	}
	if *postalCode != "" {
		input.PostalCode = postalCode
	}
	if *instagram != "" {
		input.Instagram = instagram
	}

	created, err := service.Create(ctx, input)
	if err != nil {
		return err
	}

	output, _ := json.MarshalIndent(created, "", "  ")
	fmt.Println(string(output))
	return nil
}

func runList(ctx context.Context, service *salon.Service, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	all := fs.Bool("all", false, "inclui salões inativos")
	if err := fs.Parse(args); err != nil {
		return err
	}

	salons, err := service.List(ctx, *all)
	if err != nil {
		return err
	}

	if len(salons) == 0 {
		fmt.Println("nenhum salão cadastrado")
		return nil
	}

	encoded, _ := json.MarshalIndent(salons, "", "  ")
	fmt.Println(string(encoded))
	return nil
}
