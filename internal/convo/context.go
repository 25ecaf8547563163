// Package convo tracks what a chat session has revealed so far: the device,
// brand and operating system being discussed, the current problem, the
// user's mood and the clarifying question still waiting for an answer.
package convo

import (
	"slices"
	"time"

	"github.com/Azartis/Konsultabot2-sub000/internal/knowledge"
)

// Roles of a conversation turn.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Turn is one entry of the conversation history.
type Turn struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// PendingQuestion is a clarifying question the bot is waiting on.
type PendingQuestion struct {
	ContextKey knowledge.Field `json:"context_key"`
	Text       string          `json:"text"`
	AskedAt    time.Time       `json:"asked_at"`
}

// Context is the mutable state of one chat session. It is owned by a single
// caller at a time; the service layer serializes access per session.
type Context struct {
	SessionID           string            `json:"session_id"`
	Language            string            `json:"language,omitempty"`
	DeviceType          string            `json:"device_type,omitempty"`
	DeviceBrand         string            `json:"device_brand,omitempty"`
	OSType              string            `json:"os_type,omitempty"`
	ProblemCategory     string            `json:"problem_category,omitempty"`
	SpecificIssue       string            `json:"specific_issue,omitempty"`
	Details             string            `json:"details,omitempty"`
	AskedQuestions      []knowledge.Field `json:"asked_questions"`
	ConversationHistory []Turn            `json:"conversation_history"`
	LastQuestion        *PendingQuestion  `json:"last_question,omitempty"`
	UserEmotion         string            `json:"user_emotion"`
	SuccessCount        int               `json:"success_count"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// New starts an empty context for a session.
func New(sessionID, language string) *Context {
	now := time.Now().UTC()
	return &Context{
		SessionID:           sessionID,
		Language:            language,
		AskedQuestions:      []knowledge.Field{},
		ConversationHistory: []Turn{},
		UserEmotion:         knowledge.EmotionNeutral,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// Reset clears everything learned in the session. The session id and
// language survive so a "new chat" keeps talking the same language.
func (c *Context) Reset() {
	fresh := New(c.SessionID, c.Language)
	*c = *fresh
}

// Field returns the current value of a context field.
func (c *Context) Field(f knowledge.Field) string {
	switch f {
	case knowledge.FieldDeviceType:
		return c.DeviceType
	case knowledge.FieldBrand:
		return c.DeviceBrand
	case knowledge.FieldOS:
		return c.OSType
	case knowledge.FieldDetails:
		return c.Details
	}
	return ""
}

// SetField sets f only when it is still empty. It reports whether the value
// was stored.
func (c *Context) SetField(f knowledge.Field, value string) bool {
	if value == "" || c.Field(f) != "" {
		return false
	}
	switch f {
	case knowledge.FieldDeviceType:
		c.DeviceType = value
	case knowledge.FieldBrand:
		c.DeviceBrand = value
	case knowledge.FieldOS:
		c.OSType = value
	case knowledge.FieldDetails:
		c.Details = value
	default:
		return false
	}
	c.touch()
	return true
}

// Asked reports whether f was already requested in this session.
func (c *Context) Asked(f knowledge.Field) bool {
	return slices.Contains(c.AskedQuestions, f)
}

// Ask records a pending clarifying question. Only one question is pending
// at a time and every key is asked at most once until Reset.
func (c *Context) Ask(f knowledge.Field, text string) {
	if !c.Asked(f) {
		c.AskedQuestions = append(c.AskedQuestions, f)
	}
	c.LastQuestion = &PendingQuestion{ContextKey: f, Text: text, AskedAt: time.Now().UTC()}
	c.touch()
}

// ClearQuestion drops the pending question.
func (c *Context) ClearQuestion() {
	c.LastQuestion = nil
}

// Append adds a turn to the history.
func (c *Context) Append(role, text string) {
	c.ConversationHistory = append(c.ConversationHistory, Turn{Role: role, Text: text, Timestamp: time.Now().UTC()})
	c.touch()
}

// RecentHistory returns at most n of the latest turns.
func (c *Context) RecentHistory(n int) []Turn {
	if n <= 0 || len(c.ConversationHistory) <= n {
		return c.ConversationHistory
	}
	return c.ConversationHistory[len(c.ConversationHistory)-n:]
}

func (c *Context) touch() {
	c.UpdatedAt = time.Now().UTC()
}
