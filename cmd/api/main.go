package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/banklink/internal/account"
	accountStore "github.com/MrJamesThe3rd/banklink/internal/account/store"
	"github.com/MrJamesThe3rd/banklink/internal/birbank"
	"github.com/MrJamesThe3rd/banklink/internal/config"
	"github.com/MrJamesThe3rd/banklink/internal/connection"
	connectionStore "github.com/MrJamesThe3rd/banklink/internal/connection/store"
	"github.com/MrJamesThe3rd/banklink/internal/database"
	banklinkHttp "github.com/MrJamesThe3rd/banklink/internal/http"
	accountHandler "github.com/MrJamesThe3rd/banklink/internal/http/account"
	connectionHandler "github.com/MrJamesThe3rd/banklink/internal/http/connection"
	journalStore "github.com/MrJamesThe3rd/banklink/internal/journal/store"
	statementStore "github.com/MrJamesThe3rd/banklink/internal/statement/store"
	"github.com/MrJamesThe3rd/banklink/internal/sync"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		connStore = connectionStore.New(db)
		accStore  = accountStore.New(db)
		jrnStore  = journalStore.New(db)
		lineStore = statementStore.New(db)
	)

	client := birbank.New(cfg.Birbank.LiveBaseURL, cfg.Birbank.TestBaseURL)

	var (
		connectionService = connection.NewService(connStore, client)
		reconciler        = account.NewReconciler(client, connectionService, accStore, jrnStore)
		syncService       = sync.NewService(client, connectionService, accStore, jrnStore, lineStore)
	)

	var (
		connectionH = connectionHandler.NewHandler(connectionService, reconciler, syncService, jrnStore, lineStore)
		accountH    = accountHandler.NewHandler(reconciler)
	)

	router := banklinkHttp.New(connectionH, accountH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
