package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	// Load .env file if present (silently ignore if missing)
	godotenv.Load()
}

var (
	// Config flags
	llmModel   string
	llmAPIKey  string
	llmBaseURL string
	dual       bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ytsummarizer [url] [language]",
		Short: "Summarize YouTube videos at three levels of depth",
		Long: `A CLI tool that fetches a YouTube video's transcript and generates three
summaries of increasing depth (simple, moderate, complex) using an LLM.

Summaries are produced in English (language "eng", the default) or Polish
(language "pl"); --dual produces both for every level.

Requires an OpenAI API key in OPENAI_API_KEY or via --api-key.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runSummarize,
	}

	rootCmd.Flags().BoolVar(&dual, "dual", false, "Produce both English and Polish summaries for every level")

	// Models command (list what the API key can use)
	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "List the models available to the configured API key",
		Args:  cobra.NoArgs,
		RunE:  runListModels,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&llmModel, "model", "", "LLM model to use (default: o3-mini, or YTSUMMARIZER_MODEL env)")
	rootCmd.PersistentFlags().StringVar(&llmAPIKey, "api-key", "", "LLM API key (default: from OPENAI_API_KEY env)")
	rootCmd.PersistentFlags().StringVar(&llmBaseURL, "api-url", "", "LLM API base URL (default: from YTSUMMARIZER_API_URL env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(modelsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func logLevel() slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func runSummarize(cmd *cobra.Command, args []string) error {
	initLogger(logLevel())

	cfg, err := newConfig(args, dual)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		logWarn("no URL provided, using default", slog.String("url", cfg.URL))
	}

	names := make([]string, len(cfg.Languages))
	for i, lang := range cfg.Languages {
		names[i] = lang.DisplayName()
	}
	logInfo("summarizing video",
		slog.String("url", cfg.URL),
		slog.String("model", cfg.Model),
		slog.String("languages", strings.Join(names, ", ")))

	pipeline := &Pipeline{
		fetcher:   newInnertubeClient(),
		generator: newOpenAIGenerator(cfg),
		out:       os.Stdout,
	}

	return pipeline.Run(cmd.Context(), cfg)
}

func runListModels(cmd *cobra.Command, args []string) error {
	initLogger(logLevel())

	cfg, err := newConfig(nil, false)
	if err != nil {
		return err
	}

	return listModels(cmd.Context(), cfg, os.Stdout)
}
