// Package resolver decides how to answer a user message: ask a clarifying
// question, give a knowledge base solution, ask a remote model or fall back
// to a template. It never returns an error; every failure degrades to a
// local answer.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/Azartis/Konsultabot2-sub000/internal/convo"
	"github.com/Azartis/Konsultabot2-sub000/internal/knowledge"
	"github.com/Azartis/Konsultabot2-sub000/internal/remote"
)

// Sources reported with every response.
const (
	SourceLocalKB       = "local_kb"
	SourceOnlineAPI     = remote.SourceBackend
	SourceGemini        = remote.SourceGemini
	SourceLocalAI       = "local_ai"
	SourceErrorFallback = "error_fallback"
)

// Kind says what a response is.
type Kind string

const (
	KindClarification   Kind = "clarification"
	KindSolution        Kind = "solution"
	KindAnswer          Kind = "answer"
	KindAcknowledgement Kind = "acknowledgement"
	KindGreeting        Kind = "greeting"
	KindFallback        Kind = "fallback"
)

// Response is the resolver's answer to one message.
type Response struct {
	Text       string          `json:"text"`
	Source     string          `json:"source"`
	Confidence float64         `json:"confidence"`
	Kind       Kind            `json:"kind"`
	Steps      []string        `json:"steps,omitempty"`
	ContextKey knowledge.Field `json:"context_key,omitempty"`
	IssueKey   string          `json:"issue_key,omitempty"`
	Model      string          `json:"model,omitempty"`
}

// Remote answers messages online.
type Remote interface {
	Available() bool
	Send(ctx context.Context, req remote.Request) (*remote.Reply, error)
}

// Input is one user message.
type Input struct {
	Message  string
	Language string
	// Offline skips the remote call even when a remote is available.
	Offline bool
	// Model is a preferred remote model name.
	Model string
}

// Resolver is stateless; all session state lives in the convo.Context
// passed to Resolve.
type Resolver struct {
	kb      *knowledge.Base
	tracker *convo.Tracker
	remote  Remote
	pick    func(n int) int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPicker replaces the random template picker. pick(n) must return a
// value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(r *Resolver) { r.pick = pick }
}

// WithRemote sets the online answerer. Without one the resolver works offline.
func WithRemote(rm Remote) Option {
	return func(r *Resolver) { r.remote = rm }
}

// New creates a Resolver over a knowledge base and tracker. Nil arguments
// select the built-in data.
func New(kb *knowledge.Base, tracker *convo.Tracker, opts ...Option) *Resolver {
	if kb == nil {
		kb = knowledge.Default()
	}
	if tracker == nil {
		tracker = convo.NewTracker(nil)
	}
	r := &Resolver{kb: kb, tracker: tracker, pick: rand.Intn}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve answers in.Message and updates c. Both the user message and the
// reply are appended to the conversation history.
func (r *Resolver) Resolve(ctx context.Context, c *convo.Context, in Input) (resp Response) {
	msg := strings.TrimSpace(in.Message)
	if in.Language != "" {
		c.Language = in.Language
	}
	c.UserEmotion = r.tracker.DetectEmotion(msg)
	c.Append(convo.RoleUser, msg)

	defer func() {
		if p := recover(); p != nil {
			slog.Error("Recovered from panic while resolving message", "session_id", c.SessionID, "panic", p)
			resp = r.fallback(c, true)
		}
		c.Append(convo.RoleBot, resp.Text)
	}()

	return r.resolve(ctx, c, msg, in)
}

func (r *Resolver) resolve(ctx context.Context, c *convo.Context, msg string, in Input) Response {
	if r.tracker.IsGratitude(msg) {
		c.SuccessCount++
		return r.acknowledge(c)
	}

	issueActive := false
	if q := c.LastQuestion; q != nil {
		r.tracker.ExtractFor(c, q.ContextKey, msg)
		c.ClearQuestion()
		issueActive = c.SpecificIssue != ""
	}
	r.tracker.ExtractContext(c, msg)

	normalized := convo.Normalize(msg)
	if p, ok := r.kb.MatchProblem(normalized); ok {
		c.SpecificIssue = p.Tag
		c.ProblemCategory = p.Category
		issueActive = true
	}

	if issueActive {
		problem, ok := r.kb.Problem(c.SpecificIssue)
		if ok {
			if f, missing := nextMissing(c, problem); missing {
				return r.clarify(c, f)
			}
			if resp, found := r.solution(c, problem); found {
				return resp
			}
		}
	} else {
		if r.tracker.IsGreeting(msg) {
			return Response{Text: r.pickOne(greetings), Source: SourceLocalAI, Confidence: 1, Kind: KindGreeting}
		}
		if topic, ok := r.kb.MatchTopic(normalized); ok {
			return Response{Text: topic.Answer, Source: SourceLocalKB, Confidence: 0.85, Kind: KindAnswer, IssueKey: topic.Key}
		}
	}

	return r.online(ctx, c, msg, in)
}

// nextMissing returns the first required field, in priority order, that
// has no value and has not been asked for yet.
func nextMissing(c *convo.Context, p knowledge.Problem) (knowledge.Field, bool) {
	for _, f := range knowledge.FieldPriority {
		if p.RequiresField(f) && c.Field(f) == "" && !c.Asked(f) {
			return f, true
		}
	}
	return "", false
}

func (r *Resolver) clarify(c *convo.Context, f knowledge.Field) Response {
	text := questionText(f, c.DeviceType)
	c.Ask(f, text)
	return Response{
		Text:       text,
		Source:     SourceLocalAI,
		Confidence: 0.95,
		Kind:       KindClarification,
		ContextKey: f,
		IssueKey:   c.SpecificIssue,
	}
}

func (r *Resolver) solution(c *convo.Context, p knowledge.Problem) (Response, bool) {
	subject := knowledge.AnySubject
	if p.Subject != "" {
		subject = c.Field(p.Subject)
	}
	if subject == "" {
		return Response{}, false
	}
	steps, variant, ok := r.kb.Lookup(p.Category, subject, p.Tag, c.Field(p.VariantField()))
	if !ok {
		return Response{}, false
	}

	confidence := 0.8
	if variant != knowledge.DefaultVariant {
		confidence = 0.9
	}
	return Response{
		Text:       r.renderSolution(c.UserEmotion, p.Tag, subject, variant, steps),
		Source:     SourceLocalKB,
		Confidence: confidence,
		Kind:       KindSolution,
		Steps:      steps,
		IssueKey:   p.Tag,
	}, true
}

func (r *Resolver) acknowledge(c *convo.Context) Response {
	text := r.pickOne(acknowledgements)
	if c.SuccessCount > 1 {
		text = r.pickOne(repeatAcknowledgements)
		if strings.Contains(text, "%d") {
			text = fmt.Sprintf(text, c.SuccessCount)
		}
	}
	return Response{Text: text, Source: SourceLocalAI, Confidence: 1, Kind: KindAcknowledgement}
}

func (r *Resolver) online(ctx context.Context, c *convo.Context, msg string, in Input) Response {
	if in.Offline || r.remote == nil || !r.remote.Available() {
		return r.fallback(c, false)
	}

	reply, err := r.remote.Send(ctx, remote.Request{
		Text:      msg,
		Language:  c.Language,
		SessionID: c.SessionID,
		Summary:   summarize(c),
		Model:     in.Model,
	})
	if err == nil && (reply == nil || strings.TrimSpace(reply.Text) == "") {
		err = remote.ErrEmptyResponse
	}
	if err != nil {
		slog.Warn("Remote answer failed, using local fallback", "session_id", c.SessionID, "error", err)
		return r.fallback(c, true)
	}
	return Response{
		Text:       reply.Text,
		Source:     reply.Source,
		Confidence: reply.Confidence,
		Kind:       KindAnswer,
		IssueKey:   c.SpecificIssue,
		Model:      reply.Model,
	}
}

// fallback builds a template reply. failed selects the error_fallback
// source used after a remote failure.
func (r *Resolver) fallback(c *convo.Context, failed bool) Response {
	var b strings.Builder
	if failed {
		b.WriteString(errorPrefix)
	}
	if c.SpecificIssue != "" {
		fmt.Fprintf(&b, "I don't have a ready guide for %s", describeIssue(c.SpecificIssue))
		if c.DeviceType != "" {
			fmt.Fprintf(&b, " on a %s", c.DeviceType)
		}
		b.WriteString(" yet. In the meantime:\n")
		for i, tip := range issueTips {
			fmt.Fprintf(&b, "%d. %s\n", i+1, tip)
		}
	} else {
		b.WriteString(r.pickOne(offlineReplies))
	}

	resp := Response{
		Text:       strings.TrimRight(b.String(), "\n"),
		Source:     SourceLocalAI,
		Confidence: 0.4,
		Kind:       KindFallback,
		IssueKey:   c.SpecificIssue,
	}
	if failed {
		resp.Source = SourceErrorFallback
		resp.Confidence = 0.3
	}
	return resp
}

// summarize describes the known context for the remote prompt.
func summarize(c *convo.Context) string {
	var parts []string
	add := func(name, value string) {
		if value != "" {
			parts = append(parts, name+"="+value)
		}
	}
	add("device", c.DeviceType)
	add("brand", c.DeviceBrand)
	add("os", c.OSType)
	add("issue", c.SpecificIssue)
	add("details", c.Details)
	if c.UserEmotion != "" && c.UserEmotion != knowledge.EmotionNeutral {
		add("mood", c.UserEmotion)
	}
	return strings.Join(parts, ", ")
}
