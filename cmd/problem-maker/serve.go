package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/rating"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/search"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/server"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the question-generation REST API",
	Long: `Serve starts the HTTP API: paper search, question generation, the image
proxy, and the PK rating endpoints. AI provider keys come from request headers
(x-model-type, x-api-key) with .secrets/ as fallback.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8787", "listen address")
	serveCmd.Flags().String("db", "data/pk.db", "SQLite database file for PK ratings")
	serveCmd.Flags().String("log-mode", "prod", "zap logger mode: dev or prod")
	serveCmd.Flags().String("serpapi-key", "", "SerpApi key (default: .secrets/serpapi-api-key)")
	serveCmd.Flags().Int("max-results", 0, "maximum search results per query (default 5)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	dbPath, _ := cmd.Flags().GetString("db")
	if v := viper.GetString("db_path"); v != "" && !cmd.Flags().Changed("db") {
		dbPath = v
	}
	logMode, _ := cmd.Flags().GetString("log-mode")

	var log *zap.Logger
	var err error
	if logMode == "dev" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	cfg := types.AppConfig{
		HTTP: types.HTTPConfig{
			Timeout:   defaultTimeout,
			UserAgent: defaultUserAgent,
		},
		Search: searchConfig(cmd),
		AI: types.AIConfig{
			ModelType: viper.GetString("model_type"),
			APIKey:    viper.GetString("api_key"),
		},
		Rating: types.RatingConfig{DBPath: dbPath},
		Server: types.ServerConfig{Addr: addr, LogMode: logMode},
	}

	store, err := rating.NewStore(cfg.Rating.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout}
	svc := search.New(cfg.Search, httpClient, os.Stderr)

	return server.New(cfg, svc, store, loadedSecrets, log).Run()
}
