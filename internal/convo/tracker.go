package convo

import (
	"strings"
	"unicode"

	"github.com/Azartis/Konsultabot2-sub000/internal/knowledge"
)

const maxAnswerLen = 40

// Tracker extracts context from user messages using a lexicon.
type Tracker struct {
	lex *knowledge.Lexicon
}

// NewTracker creates a tracker. A nil lexicon selects the built-in one.
func NewTracker(lex *knowledge.Lexicon) *Tracker {
	if lex == nil {
		lex = knowledge.DefaultLexicon()
	}
	return &Tracker{lex: lex}
}

// ExtractContext fills device type, brand and OS from message. Fields that
// already hold a value are never overwritten. It returns the fields it set.
func (t *Tracker) ExtractContext(c *Context, message string) []knowledge.Field {
	text := Normalize(message)
	var set []knowledge.Field
	if tag, ok := t.lex.DeviceTypes.Match(text); ok && c.SetField(knowledge.FieldDeviceType, tag) {
		set = append(set, knowledge.FieldDeviceType)
	}
	if tag, ok := t.lex.Brands.Match(text); ok && c.SetField(knowledge.FieldBrand, tag) {
		set = append(set, knowledge.FieldBrand)
	}
	if tag, ok := t.lex.OS.Match(text); ok && c.SetField(knowledge.FieldOS, tag) {
		set = append(set, knowledge.FieldOS)
	}
	return set
}

// ExtractFor treats message as the answer to a question about key. When the
// lexicon does not recognize the answer, the cleaned answer text is stored
// so the same question is not repeated. It reports whether key now has a value.
func (t *Tracker) ExtractFor(c *Context, key knowledge.Field, message string) bool {
	if c.Field(key) != "" {
		return true
	}
	text := Normalize(message)
	var tag string
	var ok bool
	switch key {
	case knowledge.FieldDeviceType:
		tag, ok = t.lex.DeviceTypes.Match(text)
	case knowledge.FieldBrand:
		tag, ok = t.lex.Brands.Match(text)
	case knowledge.FieldOS:
		tag, ok = t.lex.OS.Match(text)
	case knowledge.FieldDetails:
		if details := strings.TrimSpace(message); details != "" {
			return c.SetField(key, details)
		}
	}
	if !ok {
		tag = cleanAnswer(message)
	}
	return c.SetField(key, tag)
}

// DetectEmotion classifies message into exactly one emotion tag.
func (t *Tracker) DetectEmotion(message string) string {
	if tag, ok := t.lex.Emotions.Match(Normalize(message)); ok {
		return tag
	}
	return knowledge.EmotionNeutral
}

// IsGratitude reports whether message thanks the bot.
func (t *Tracker) IsGratitude(message string) bool {
	return t.lex.Gratitude.Contains(Normalize(message))
}

// IsGreeting reports whether message is a greeting.
func (t *Tracker) IsGreeting(message string) bool {
	return t.lex.Greetings.Contains(Normalize(message))
}

// Normalize lowercases message, turns punctuation other than apostrophes
// and hyphens into spaces and pads the result with one space on each side
// so word-boundary patterns such as " hi " match at the edges.
func Normalize(message string) string {
	var b strings.Builder
	b.Grow(len(message) + 2)
	b.WriteByte(' ')
	for _, r := range strings.ToLower(message) {
		switch {
		case r == '\'' || r == '’':
			b.WriteByte('\'')
		case r == '-':
			b.WriteRune(r)
		case unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r):
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(' ')
	return b.String()
}

var answerFillers = []string{"my ", "it's ", "its ", "it is ", "i have ", "i use ", "using ", "a ", "an ", "the "}

// cleanAnswer reduces a free-form answer like "It's a Cherry Mobile." to "cherry mobile".
func cleanAnswer(message string) string {
	s := strings.TrimSpace(Normalize(message))
	for trimmed := true; trimmed; {
		trimmed = false
		for _, f := range answerFillers {
			if strings.HasPrefix(s, f) {
				s = strings.TrimSpace(strings.TrimPrefix(s, f))
				trimmed = true
			}
		}
	}
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > maxAnswerLen {
		s = strings.TrimSpace(string(r[:maxAnswerLen]))
	}
	if s == "" {
		return "unknown"
	}
	return s
}
