package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Azartis/Konsultabot2-sub000/internal/metrics"
)

const (
	backendChatPath       = "/api/v1/chat/"
	backendLegacyChatPath = "/api/chat/send/"
)

type backendChatRequest struct {
	Query     string `json:"query,omitempty"`
	Message   string `json:"message,omitempty"`
	Language  string `json:"language,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

type backendChatResponse struct {
	Response   string   `json:"response"`
	Message    string   `json:"message"`
	Confidence *float64 `json:"confidence"`
	Source     string   `json:"source"`
	SessionID  string   `json:"session_id"`
}

func (c *Client) sendBackend(ctx context.Context, base string, req Request) (reply *Reply, err error) {
	start := time.Now()
	defer func() { metrics.ObserveRemote("backend", err, time.Since(start)) }()

	reply, err = c.postBackend(ctx, base+backendChatPath, backendChatRequest{
		Query:     req.Text,
		Language:  req.Language,
		SessionID: req.SessionID,
	})
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound {
		// Older deployments only expose the legacy send endpoint.
		reply, err = c.postBackend(ctx, base+backendLegacyChatPath, backendChatRequest{
			Message:   req.Text,
			Language:  req.Language,
			SessionID: req.SessionID,
		})
	}
	return reply, err
}

func (c *Client) postBackend(ctx context.Context, url string, body backendChatRequest) (*Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.BackendTimeout)
	defer cancel()

	r := c.http.R().SetContext(ctx).SetBody(body)
	if token := c.opts.Tokens.Token(); token != "" {
		r.SetAuthToken(token)
	}

	resp, err := r.Post(url)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		c.opts.Tokens.Clear()
		return nil, ErrUnauthorized
	}
	if resp.IsError() {
		return nil, &StatusError{URL: url, Status: resp.StatusCode(), Body: resp.String()}
	}

	var out backendChatResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("could not decode backend response: %w", err)
	}

	text := out.Response
	if text == "" {
		text = out.Message
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}

	reply := &Reply{
		Text:       text,
		Source:     SourceBackend,
		Confidence: 0.9,
		SessionID:  out.SessionID,
	}
	if out.Confidence != nil {
		reply.Confidence = *out.Confidence
	}
	return reply, nil
}
