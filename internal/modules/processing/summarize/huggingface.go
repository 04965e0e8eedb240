package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	appcfg "github.com/mx-space/blog-summarizer/internal/config"
)

const huggingFaceBaseURL = "https://api-inference.huggingface.co/models/"

// HuggingFace calls a summarization model on the Hugging Face Inference API.
type HuggingFace struct {
	endpoint   string
	apiKey     string
	params     Params
	httpClient *http.Client
}

// NewHuggingFace builds a client. endpoint overrides the URL derived from model.
func NewHuggingFace(apiKey, endpoint, model string, params Params, timeout time.Duration) *HuggingFace {
	url := strings.TrimSpace(endpoint)
	if url == "" {
		url = huggingFaceBaseURL + strings.TrimSpace(model)
	}
	return &HuggingFace{
		endpoint:   url,
		apiKey:     strings.TrimSpace(apiKey),
		params:     params,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (h *HuggingFace) Name() string { return ProviderName(appcfg.ProviderHuggingFace) }

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MinLength int `json:"min_length"`
	MaxLength int `json:"max_length"`
}

type hfSummary struct {
	SummaryText string `json:"summary_text"`
}

// Summarize posts text and returns the first summary_text, or FailedSummary
// when a successful response carries none.
func (h *HuggingFace) Summarize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(hfRequest{
		Inputs:     text,
		Parameters: hfParameters{MinLength: h.params.MinLength, MaxLength: h.params.MaxLength},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+h.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", &StatusError{Provider: h.Name(), Status: resp.StatusCode, Body: string(respBody)}
	}

	// Anything other than a non-empty list of summaries counts as "no summary".
	var out []hfSummary
	if err := json.Unmarshal(respBody, &out); err != nil || len(out) == 0 || strings.TrimSpace(out[0].SummaryText) == "" {
		return FailedSummary, nil
	}
	return out[0].SummaryText, nil
}
