package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	appcfg "github.com/mx-space/blog-summarizer/internal/config"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	jetai "go.jetify.com/ai"
	jetapi "go.jetify.com/ai/api"
	jetanthropic "go.jetify.com/ai/provider/anthropic"
	jetopenai "go.jetify.com/ai/provider/openai"
)

const (
	summaryMaxOutputTokens = 400
	defaultOpenAIModel     = "gpt-4o-mini"
	defaultAnthropicModel  = "claude-haiku-4-5-20251001"
	summarySystemPrompt    = "You summarize blog articles. Reply with the summary text only, in plain English, without a preamble."
)

func buildSummaryPrompt(text string, params Params) string {
	return fmt.Sprintf("Summarize the following article in %d to %d words.\n\n%s", params.MinLength, params.MaxLength, text)
}

// languageModel summarizes through go.jetify.com/ai backed by the OpenAI or Anthropic SDK.
type languageModel struct {
	name    string
	model   jetapi.LanguageModel
	params  Params
	timeout time.Duration
}

func newLanguageModel(providerType, apiKey, endpoint, modelID string, params Params, timeout time.Duration) (Summarizer, error) {
	model, err := buildLanguageModel(providerType, apiKey, endpoint, modelID)
	if err != nil {
		return nil, err
	}
	return &languageModel{name: ProviderName(providerType), model: model, params: params, timeout: timeout}, nil
}

func (m *languageModel) Name() string { return m.name }

func (m *languageModel) Summarize(ctx context.Context, text string) (string, error) {
	ctx, cancel := withTimeout(ctx, m.timeout)
	defer cancel()

	resp, err := jetai.GenerateText(
		ctx,
		buildPromptMessages(summarySystemPrompt, buildSummaryPrompt(text, m.params)),
		jetai.WithModel(m.model),
		jetai.WithMaxOutputTokens(summaryMaxOutputTokens),
	)
	if err != nil {
		return "", err
	}
	return orFailed(extractTextFromResponse(resp)), nil
}

func buildPromptMessages(systemPrompt, prompt string) []jetapi.Message {
	messages := make([]jetapi.Message, 0, 2)
	if strings.TrimSpace(systemPrompt) != "" {
		messages = append(messages, &jetapi.SystemMessage{Content: systemPrompt})
	}
	messages = append(messages, &jetapi.UserMessage{Content: jetapi.ContentFromText(prompt)})
	return messages
}

func extractTextFromResponse(resp *jetapi.Response) string {
	if resp == nil {
		return ""
	}
	var full strings.Builder
	for _, block := range resp.Content {
		textBlock, ok := block.(*jetapi.TextBlock)
		if !ok || textBlock.Text == "" {
			continue
		}
		full.WriteString(textBlock.Text)
	}
	return full.String()
}

func orFailed(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return FailedSummary
	}
	return text
}

func buildLanguageModel(providerType, apiKey, endpoint, modelID string) (jetapi.LanguageModel, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	modelID = strings.TrimSpace(modelID)
	endpoint = strings.TrimSpace(endpoint)

	if providerType == appcfg.ProviderAnthropic {
		if modelID == "" {
			modelID = defaultAnthropicModel
		}
		opts := []anthropicoption.RequestOption{
			anthropicoption.WithAPIKey(apiKey),
			anthropicoption.WithMaxRetries(0),
		}
		if endpoint != "" {
			opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(endpoint, "/")))
		}
		client := anthropicclient.NewClient(opts...)
		return jetanthropic.NewLanguageModel(modelID, jetanthropic.WithClient(client)), nil
	}

	if modelID == "" {
		modelID = defaultOpenAIModel
	}
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(apiKey),
		openaioption.WithMaxRetries(0),
	}
	if normalized := normalizeOpenAIBaseURL(endpoint); normalized != "" {
		opts = append(opts, openaioption.WithBaseURL(normalized))
	}
	client := openaiclient.NewClient(opts...)
	return jetopenai.NewLanguageModel(modelID, jetopenai.WithClient(client)), nil
}

// compatible calls an OpenAI-compatible /v1/chat/completions endpoint directly.
type compatible struct {
	endpoint   string
	apiKey     string
	model      string
	params     Params
	httpClient *http.Client
}

func newCompatible(apiKey, endpoint, model string, params Params, timeout time.Duration) *compatible {
	if strings.TrimSpace(model) == "" {
		model = defaultOpenAIModel
	}
	return &compatible{
		endpoint:   normalizeOpenAICompatibleEndpoint(endpoint),
		apiKey:     strings.TrimSpace(apiKey),
		model:      strings.TrimSpace(model),
		params:     params,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *compatible) Name() string { return ProviderName(appcfg.ProviderOpenAICompatible) }

func (c *compatible) Summarize(ctx context.Context, text string) (string, error) {
	body, _ := json.Marshal(map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": summarySystemPrompt},
			{"role": "user", "content": buildSummaryPrompt(text, c.params)},
		},
		"max_tokens": summaryMaxOutputTokens,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", &StatusError{Provider: c.Name(), Status: resp.StatusCode, Body: string(respBody)}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if result.Error != nil && strings.TrimSpace(result.Error.Message) != "" {
		return "", errors.New(result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return FailedSummary, nil
	}
	return orFailed(result.Choices[0].Message.Content), nil
}

func normalizeOpenAIBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return ""
	}
	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimRight(base, "/")
	}

	path := strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(path, "/v1") {
		path += "/v1"
	}
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}

func normalizeOpenAICompatibleEndpoint(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return "https://api.openai.com"
	}

	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimSuffix(strings.TrimRight(base, "/"), "/v1")
	}

	parsed.Path = strings.TrimSuffix(strings.TrimRight(parsed.Path, "/"), "/v1")
	return strings.TrimRight(parsed.String(), "/")
}
