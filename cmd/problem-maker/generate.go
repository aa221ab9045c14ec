package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/ai"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/figure"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/question"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/search"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a question batch from one paper",
	Long: `Generate turns one research paper into three IBO-style multiple-choice
questions of increasing difficulty. In image mode the paper's landing page is
scraped for a figure first; when no figure can be extracted the batch degrades
to text mode and alternate papers are tried.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("link", "", "paper URL to scrape for a figure")
	generateCmd.Flags().String("title", "", "paper title (required)")
	generateCmd.Flags().String("snippet", "", "paper abstract or snippet")
	generateCmd.Flags().String("subject", "", "biology subject area (required)")
	generateCmd.Flags().String("mode", "text", "question mode: text, image, or analysis")
	generateCmd.Flags().String("language", "en", "output language: zh or en")
	generateCmd.Flags().String("model", "", "AI provider: gemini, openai, deepseek, doubao, tongyi (default gemini)")
	generateCmd.Flags().String("api-key", "", "AI provider key (default: .secrets/<model>-api-key)")
	generateCmd.Flags().String("serpapi-key", "", "SerpApi key for fallback paper search")
	generateCmd.Flags().Bool("json", false, "output the batch as JSON instead of YAML")
	generateCmd.MarkFlagRequired("title")
	generateCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = viper.GetString("model_type")
	}
	if model == "" {
		model = string(ai.ModelGemini)
	}

	apiKey, _ := cmd.Flags().GetString("api-key")
	apiKey = secretDefault(model+"-api-key", apiKey)
	if apiKey == "" {
		return fmt.Errorf("no API key for model %s: pass --api-key or create .secrets/%s-api-key", model, model)
	}

	client, err := ai.New(ai.ModelType(model), apiKey)
	if err != nil {
		return fmt.Errorf("building AI client: %w", err)
	}

	title, _ := cmd.Flags().GetString("title")
	link, _ := cmd.Flags().GetString("link")
	snippet, _ := cmd.Flags().GetString("snippet")
	subject, _ := cmd.Flags().GetString("subject")
	mode, _ := cmd.Flags().GetString("mode")
	language, _ := cmd.Flags().GetString("language")

	req := types.GenerationRequest{
		Paper:    types.Paper{Title: title, Link: link, Snippet: snippet},
		Subject:  subject,
		Mode:     types.Mode(mode),
		Language: types.Language(language),
	}

	httpClient := &http.Client{Timeout: defaultTimeout}
	httpCfg := types.HTTPConfig{Timeout: defaultTimeout, UserAgent: defaultUserAgent}
	gen := &question.Generator{
		Client:   client,
		Resolver: &figure.Resolver{Client: httpClient, HTTP: httpCfg},
	}

	result, err := gen.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	if req.Mode == types.ModeImage && result.Meta.ModeUsed == types.ModeText {
		svc := search.New(searchConfig(cmd), httpClient, os.Stderr)
		gen.RetryWithAlternates(cmd.Context(), svc, subject, req.Paper, result)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return yaml.NewEncoder(os.Stdout).Encode(result)
}
