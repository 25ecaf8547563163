package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Azartis/Konsultabot2-sub000/internal/metrics"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// sendGemini walks the model list and then the endpoint list. A 403 or 404
// stops the walk.
func (c *Client) sendGemini(ctx context.Context, req Request) (*Reply, error) {
	body := geminiRequest{Contents: []geminiContent{{
		Role:  "user",
		Parts: []geminiPart{{Text: c.summaryPrompt(req)}},
	}}}

	type attempt struct {
		model string
		url   string
	}
	attempts := make([]attempt, 0, len(c.opts.GeminiModels)+len(c.opts.GeminiEndpoints))
	base := strings.TrimRight(c.opts.GeminiBaseURL, "/")
	for _, m := range preferFirst(c.opts.GeminiModels, req.Model) {
		attempts = append(attempts, attempt{model: m, url: base + "/v1beta/models/" + m + ":generateContent"})
	}
	for _, e := range c.opts.GeminiEndpoints {
		attempts = append(attempts, attempt{model: modelFromEndpoint(e), url: e})
	}

	var errs []error
	for _, a := range attempts {
		text, err := c.generate(ctx, a.url, body)
		if err == nil {
			return &Reply{Text: text, Source: SourceGemini, Confidence: 0.85, SessionID: req.SessionID, Model: a.model}, nil
		}
		slog.Warn("Gemini attempt failed", "model", a.model, "error", err)
		errs = append(errs, err)
		if errors.Is(err, ErrNonRetryable) || ctx.Err() != nil {
			break
		}
	}
	return nil, errors.Join(errs...)
}

func (c *Client) generate(ctx context.Context, url string, body geminiRequest) (text string, err error) {
	start := time.Now()
	defer func() { metrics.ObserveRemote("gemini", err, time.Since(start)) }()

	ctx, cancel := context.WithTimeout(ctx, c.opts.GeminiTimeout)
	defer cancel()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.opts.GeminiAPIKey).
		SetBody(body).
		Post(url)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	switch code := resp.StatusCode(); {
	case code == http.StatusForbidden || code == http.StatusNotFound:
		return "", fmt.Errorf("%w: status %d", ErrNonRetryable, code)
	case resp.IsError():
		return "", &StatusError{URL: url, Status: code, Body: resp.String()}
	}

	var out geminiResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("could not decode gemini response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	text = strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// preferFirst moves model to the front of models, adding it when missing.
func preferFirst(models []string, model string) []string {
	if model == "" {
		return models
	}
	out := make([]string, 0, len(models)+1)
	out = append(out, model)
	for _, m := range models {
		if m != model {
			out = append(out, m)
		}
	}
	return out
}

// modelFromEndpoint extracts "gemini-pro" from ".../models/gemini-pro:generateContent".
func modelFromEndpoint(endpoint string) string {
	i := strings.LastIndex(endpoint, "/models/")
	if i < 0 {
		return endpoint
	}
	model := endpoint[i+len("/models/"):]
	if j := strings.IndexByte(model, ':'); j >= 0 {
		model = model[:j]
	}
	return model
}
