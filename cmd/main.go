package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/quizduel/quizduel-backend/config"
	"github.com/quizduel/quizduel-backend/game"
	"github.com/quizduel/quizduel-backend/handlers"
	"github.com/quizduel/quizduel-backend/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.LoadConfig()

	// Match history is optional: without Postgres the server still runs,
	// lobbies are in-memory only anyway.
	var recorder game.MatchRecorder
	var matches *repository.MatchRepository
	db, err := repository.ConnectToPostgreSQL(cfg)
	if err != nil {
		logger.Warn("match history disabled, could not connect to PostgreSQL", "error", err)
	} else {
		logger.Info("connected to PostgreSQL")
		matches = repository.NewMatchRepository(db)
		recorder = matches
	}

	coordinator := game.NewCoordinator(game.Config{
		LobbyCapacity: cfg.LobbyCapacity,
		QuestionCount: cfg.QuestionCount,
		ScoreAward:    cfg.ScoreAward,
	}, logger, recorder)

	srv := handlers.NewServer(coordinator, matches, logger)

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{"*"}),
		gorillahandlers.AllowedMethods([]string{"GET", "POST"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	addr := ":" + cfg.Port
	logger.Info("server running", "addr", addr)
	if err := http.ListenAndServe(addr, cors(srv.Router())); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
