package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/search"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

const (
	defaultTimeout   = 20 * time.Second
	defaultUserAgent = "problem-maker/0.1"
)

var searchCmd = &cobra.Command{
	Use:   "search <subject>",
	Short: "Search Google Scholar for candidate papers",
	Long: `Search queries the SerpApi Google Scholar engine for recent papers on a
biology subject. Without a SerpApi key, or when the API fails, a deterministic
sample set is returned instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("keywords", "", "additional keywords (comma-separated)")
	searchCmd.Flags().Int("max-results", 0, "maximum number of results (default 5)")
	searchCmd.Flags().String("serpapi-key", "", "SerpApi key (default: .secrets/serpapi-api-key)")
	searchCmd.Flags().Bool("json", false, "output results as JSON instead of YAML")

	rootCmd.AddCommand(searchCmd)
}

func searchConfig(cmd *cobra.Command) types.SearchConfig {
	key, _ := cmd.Flags().GetString("serpapi-key")
	if key == "" {
		key = viper.GetString("serpapi_key")
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   defaultTimeout,
			UserAgent: defaultUserAgent,
		},
		SerpAPIKey: secretDefault("serpapi-api-key", key),
		MaxResults: maxResults,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := searchConfig(cmd)

	var keywords []string
	if kw, _ := cmd.Flags().GetString("keywords"); kw != "" {
		for _, k := range strings.Split(kw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keywords = append(keywords, k)
			}
		}
	}

	client := &http.Client{Timeout: cfg.Timeout}
	svc := search.New(cfg, client, os.Stderr)

	papers, err := svc.SearchPapers(cmd.Context(), args[0], keywords)
	if err != nil {
		return fmt.Errorf("searching papers: %w", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(papers)
	}
	return yaml.NewEncoder(os.Stdout).Encode(papers)
}
