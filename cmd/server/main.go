package main

import (
	"log/slog"
	"net/http"
	"os"

	flag "github.com/spf13/pflag"

	"forum/internal/config"
	"forum/internal/models"
	"forum/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}
	port := flag.IntP("port", "p", cfg.HTTP.Port, "port to run the server on")
	flag.Parse()
	cfg.HTTP.Port = *port

	users := models.NewUserStore()
	posts := models.NewPostStore()
	sessions := models.NewSessionStore()
	if cfg.App.SeedData {
		models.SeedDummyData(users, posts)
	}

	srv, err := server.New(users, posts, sessions, cfg.App.TemplateDir, logger)
	if err != nil {
		logger.Error("server init", "err", err)
		os.Exit(1)
	}

	logger.Info("system initialized", "addr", cfg.HTTP.Addr())
	if err := http.ListenAndServe(cfg.HTTP.Addr(), srv); err != nil {
		logger.Error("listen", "err", err)
		os.Exit(1)
	}
}
