package main

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// openAIGenerator produces summaries through an OpenAI-compatible
// chat-completions API. It implements SummaryGenerator.
type openAIGenerator struct {
	client *openai.Client
	model  string
}

func newOpenAIGenerator(cfg *Config) *openAIGenerator {
	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}
	return &openAIGenerator{
		client: openai.NewClientWithConfig(cc),
		model:  cfg.Model,
	}
}

// systemPrompt pins the assistant role and the response language.
func systemPrompt(lang Language) string {
	if lang == LanguagePolish {
		return "You are a helpful assistant that summarizes content. Respond in Polish."
	}
	return "You are a helpful assistant that summarizes content. Respond in English."
}

// buildPrompt embeds the transcript under the level's instruction.
func buildPrompt(level SummaryLevel, lang Language, transcript string) string {
	return level.Instruction[lang] + "\n\n" + transcript
}

// Generate requests one summary for a (level, language) pair.
func (g *openAIGenerator) Generate(ctx context.Context, level SummaryLevel, lang Language, transcript string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(lang)},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(level, lang, transcript)},
		},
	}

	// Reasoning models reject the sampling parameters and use a different
	// token-limit field.
	if g.model == defaultModel {
		req.MaxCompletionTokens = level.MaxTokens
	} else {
		req.Temperature = 0.7
		req.MaxTokens = level.MaxTokens
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
