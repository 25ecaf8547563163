// Package remote talks to the services that can answer a message online:
// the KonsultaBot backend and Google's Gemini API.
package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// Sources reported in Reply.Source.
const (
	SourceBackend = "online_api"
	SourceGemini  = "gemini"
)

const (
	DefaultBackendTimeout = 15 * time.Second
	DefaultGeminiTimeout  = 30 * time.Second
	DefaultHealthTimeout  = 3 * time.Second
	DefaultGeminiBaseURL  = "https://generativelanguage.googleapis.com"
)

// DefaultGeminiModels are tried in order through the v1beta generateContent API.
var DefaultGeminiModels = []string{"gemini-1.5-flash", "gemini-1.5-pro", "gemini-pro"}

// DefaultGeminiEndpoints are full generateContent URLs tried after the model list.
var DefaultGeminiEndpoints = []string{
	DefaultGeminiBaseURL + "/v1/models/gemini-1.5-flash:generateContent",
	DefaultGeminiBaseURL + "/v1/models/gemini-pro:generateContent",
}

// Request is a message to answer online.
type Request struct {
	Text      string
	Language  string
	SessionID string
	// Summary is a short description of what is known about the conversation.
	Summary string
	// Model is tried before the configured Gemini models when set.
	Model string
}

// Reply is an online answer.
type Reply struct {
	Text       string
	Source     string
	Confidence float64
	SessionID  string
	Model      string
}

// Options configures a Client.
type Options struct {
	BackendURL      string
	BackendTimeout  time.Duration
	GeminiAPIKey    string
	GeminiBaseURL   string
	GeminiModels    []string
	GeminiEndpoints []string
	GeminiTimeout   time.Duration
	HealthTimeout   time.Duration
	Tokens          TokenStore
	HTTPClient      *http.Client
}

// Client sends messages through the fallback chain backend → Gemini models → Gemini endpoints.
type Client struct {
	http *resty.Client
	opts Options

	mu         sync.RWMutex
	backendURL string
}

// NewClient creates a Client. Zero option values take their defaults.
func NewClient(opts Options) *Client {
	if opts.BackendTimeout <= 0 {
		opts.BackendTimeout = DefaultBackendTimeout
	}
	if opts.GeminiTimeout <= 0 {
		opts.GeminiTimeout = DefaultGeminiTimeout
	}
	if opts.HealthTimeout <= 0 {
		opts.HealthTimeout = DefaultHealthTimeout
	}
	if opts.GeminiBaseURL == "" {
		opts.GeminiBaseURL = DefaultGeminiBaseURL
	}
	if opts.GeminiModels == nil {
		opts.GeminiModels = DefaultGeminiModels
	}
	if opts.GeminiEndpoints == nil {
		opts.GeminiEndpoints = DefaultGeminiEndpoints
	}
	if opts.Tokens == nil {
		opts.Tokens = NewMemoryTokenStore("")
	}

	var rc *resty.Client
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetHeader("Content-Type", "application/json")

	return &Client{
		http:       rc,
		opts:       opts,
		backendURL: strings.TrimRight(opts.BackendURL, "/"),
	}
}

// BackendURL returns the backend currently in use.
func (c *Client) BackendURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.backendURL
}

// SetBackendURL switches the backend used by later calls.
func (c *Client) SetBackendURL(url string) {
	c.mu.Lock()
	c.backendURL = strings.TrimRight(url, "/")
	c.mu.Unlock()
}

// Available reports whether any remote path is configured.
func (c *Client) Available() bool {
	return c.BackendURL() != "" || c.opts.GeminiAPIKey != ""
}

// Status describes the remote configuration.
type Status struct {
	Available        bool     `json:"available"`
	BackendURL       string   `json:"backend_url,omitempty"`
	HasToken         bool     `json:"has_token"`
	GeminiConfigured bool     `json:"gemini_configured"`
	GeminiModels     []string `json:"gemini_models"`
}

// Status reports the backend in use and the Gemini models that will be tried.
func (c *Client) Status() Status {
	return Status{
		Available:        c.Available(),
		BackendURL:       c.BackendURL(),
		HasToken:         c.opts.Tokens.Token() != "",
		GeminiConfigured: c.opts.GeminiAPIKey != "",
		GeminiModels:     slices.Clone(c.opts.GeminiModels),
	}
}

// Send tries the backend, then each Gemini model, then each Gemini
// endpoint, and returns the first non-empty answer. Each attempt has its
// own timeout. A Gemini 403 or 404 ends the Gemini part of the chain.
func (c *Client) Send(ctx context.Context, req Request) (*Reply, error) {
	if !c.Available() {
		return nil, ErrNotConfigured
	}

	var errs []error

	if base := c.BackendURL(); base != "" {
		reply, err := c.sendBackend(ctx, base, req)
		if err == nil {
			return reply, nil
		}
		slog.Warn("Backend chat call failed", "backend", base, "error", err)
		errs = append(errs, err)
		if ctx.Err() != nil {
			return nil, errors.Join(errs...)
		}
	}

	if c.opts.GeminiAPIKey != "" {
		reply, err := c.sendGemini(ctx, req)
		if err == nil {
			return reply, nil
		}
		errs = append(errs, err)
	}

	return nil, errors.Join(errs...)
}

// Discover probes each candidate's health endpoint and adopts the first one
// that answers 2xx. It is best effort: on failure the current backend is kept.
func (c *Client) Discover(ctx context.Context, candidates []string) (string, error) {
	for _, candidate := range candidates {
		base := strings.TrimRight(strings.TrimSpace(candidate), "/")
		if base == "" {
			continue
		}
		if err := c.probe(ctx, base); err != nil {
			slog.Debug("Backend candidate not reachable", "candidate", base, "error", err)
			continue
		}
		c.SetBackendURL(base)
		slog.Info("Discovered reachable backend", "backend", base)
		return base, nil
	}
	return "", ErrNoBackend
}

func (c *Client) probe(ctx context.Context, base string) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.HealthTimeout)
	defer cancel()

	resp, err := c.http.R().SetContext(ctx).Get(base + "/api/health/")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return &StatusError{URL: base + "/api/health/", Status: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}

func (c *Client) summaryPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("You are KonsultaBot, the IT support and campus information assistant of the university. ")
	b.WriteString("Give short, practical, step-by-step answers.\n")
	if req.Summary != "" {
		fmt.Fprintf(&b, "Known context: %s.\n", req.Summary)
	}
	if req.Language != "" && !strings.EqualFold(req.Language, "english") {
		fmt.Fprintf(&b, "Respond in %s.\n", req.Language)
	}
	fmt.Fprintf(&b, "User: %s", req.Text)
	return b.String()
}
