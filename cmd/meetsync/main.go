package main

import (
	"context"
	"fmt"

	"github.com/ekondratev/meetsync/internal/adapter"
	"github.com/ekondratev/meetsync/internal/config"
	httphandler "github.com/ekondratev/meetsync/internal/handler/http"
	"github.com/ekondratev/meetsync/internal/logger"
	"github.com/ekondratev/meetsync/internal/server"
	"github.com/ekondratev/meetsync/internal/service"
	"github.com/ekondratev/meetsync/internal/store"
	"github.com/ekondratev/meetsync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("meetsync")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	states, err := store.NewSyncStateStore(ctx, cfg.Storage, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating sync state store")
	}

	tokens := newTokenProvider(ctx, cfg.Adapter)
	fetcher := adapter.NewGraphPageFetcher(adapter.GraphFetcherConfig{
		Timeout:  cfg.Adapter.RequestTimeout,
		MaxPages: cfg.Sync.MaxPages,
	}, tokens, log)

	engine := service.NewDeltaSyncEngine(service.EngineConfig{
		DeltaEndpoint:      cfg.Adapter.DeltaEndpoint,
		WindowPastMonths:   cfg.Sync.WindowPastMonths,
		WindowFutureMonths: cfg.Sync.WindowFutureMonths,
		SelectFields:       cfg.Sync.SelectFields,
	}, fetcher, states, log)

	background := workers.NewWorkers(ctx, cfg.Workers, engine, log)
	background.Run()
	defer background.Stop()

	handler := httphandler.NewHandler(engine, cfg.App.Version, log)
	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newTokenProvider(ctx context.Context, cfg config.Adapter) adapter.TokenProvider {
	if cfg.BearerToken != "" {
		return adapter.NewStaticTokenProvider(cfg.BearerToken)
	}
	return adapter.NewOAuthTokenProvider(ctx, adapter.OAuthConfig{
		TokenURL:     cfg.OAuthTokenURL,
		ClientID:     cfg.OAuthClientID,
		ClientSecret: cfg.OAuthClientSecret,
		Scopes:       cfg.OAuthScopes,
	})
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
