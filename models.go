package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	openai "github.com/sashabaranov/go-openai"
)

// listModels prints the model IDs available to the configured API key,
// one per line, sorted.
func listModels(ctx context.Context, cfg *Config, out io.Writer) error {
	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}
	client := openai.NewClientWithConfig(cc)

	list, err := client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		ids = append(ids, m.ID)
	}
	sort.Strings(ids)

	for _, id := range ids {
		fmt.Fprintln(out, id)
	}

	return nil
}
