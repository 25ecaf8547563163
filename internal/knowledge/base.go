// Package knowledge holds the static data the resolver works from: the
// troubleshooting problem table, the solution steps keyed by category,
// subject, issue and variant, the campus information topics and the word
// lists used for context extraction.
//
// Everything here is loaded once at startup and never mutated.
package knowledge

import (
	"strings"

	"github.com/Azartis/Konsultabot2-sub000/internal/matcher"
)

// Field names a piece of conversation context that a problem may require.
type Field string

const (
	FieldDeviceType Field = "deviceType"
	FieldBrand      Field = "deviceBrand"
	FieldOS         Field = "osType"
	FieldDetails    Field = "details"
)

// FieldPriority is the order in which missing context is asked for.
var FieldPriority = []Field{FieldDeviceType, FieldBrand, FieldOS, FieldDetails}

// DefaultVariant is the solution list used when no variant-specific list exists.
const DefaultVariant = "default"

// AnySubject keys solutions for problems that do not depend on a device or OS.
const AnySubject = "any"

// Problem describes a troubleshooting tag detected by the pattern matcher.
type Problem struct {
	Tag      string
	Category string
	Requires []Field
	// Subject is the context field used as the second lookup key. Empty means AnySubject.
	Subject Field
	// Variant is the context field selecting a specific solution list. Empty means FieldBrand.
	Variant Field
}

// RequiresField reports whether the problem needs f before a solution can be given.
func (p Problem) RequiresField(f Field) bool {
	for _, r := range p.Requires {
		if r == f {
			return true
		}
	}
	return false
}

// VariantField returns the field selecting the solution variant.
func (p Problem) VariantField() Field {
	if p.Variant == "" {
		return FieldBrand
	}
	return p.Variant
}

// Entry is a solution set for one category, subject and issue.
type Entry struct {
	Category  string
	Subject   string
	IssueKey  string
	Solutions map[string][]string
}

// Topic is a campus information answer selected by keywords.
type Topic struct {
	Key      string
	Category string
	Keywords []string
	Answer   string
}

// Base is the in-memory knowledge base.
type Base struct {
	problems    *matcher.Table
	problemInfo map[string]Problem
	entries     map[string]map[string]map[string]Entry
	topics      *matcher.Table
	topicInfo   map[string]Topic
}

// New builds a knowledge base. Problems and topics keep the given order as
// their matching precedence.
func New(problems []ProblemRule, entries []Entry, topics []Topic) *Base {
	b := &Base{
		problemInfo: make(map[string]Problem, len(problems)),
		entries:     make(map[string]map[string]map[string]Entry),
		topicInfo:   make(map[string]Topic, len(topics)),
	}

	rules := make([]matcher.Rule, 0, len(problems))
	for _, p := range problems {
		rules = append(rules, matcher.Rule{Tag: p.Tag, Patterns: p.Patterns})
		b.problemInfo[p.Tag] = p.Problem
	}
	b.problems = matcher.NewTable(rules...)

	for _, e := range entries {
		bySubject, ok := b.entries[e.Category]
		if !ok {
			bySubject = make(map[string]map[string]Entry)
			b.entries[e.Category] = bySubject
		}
		byIssue, ok := bySubject[e.Subject]
		if !ok {
			byIssue = make(map[string]Entry)
			bySubject[e.Subject] = byIssue
		}
		byIssue[e.IssueKey] = e
	}

	topicRules := make([]matcher.Rule, 0, len(topics))
	for _, t := range topics {
		topicRules = append(topicRules, matcher.Rule{Tag: t.Key, Patterns: t.Keywords})
		b.topicInfo[t.Key] = t
	}
	b.topics = matcher.NewTable(topicRules...)

	return b
}

// Default returns the knowledge base shipped with the service.
func Default() *Base {
	return New(problemRules, solutionEntries, campusTopics)
}

// MatchProblem runs the problem table against a message.
func (b *Base) MatchProblem(message string) (Problem, bool) {
	tag, ok := b.problems.Match(message)
	if !ok {
		return Problem{}, false
	}
	return b.problemInfo[tag], true
}

// Problem returns the problem registered for tag.
func (b *Base) Problem(tag string) (Problem, bool) {
	p, ok := b.problemInfo[tag]
	return p, ok
}

// Lookup returns the solution steps for the given keys. The variant list is
// preferred; the default list is used otherwise. The returned variant names
// the list that was selected.
func (b *Base) Lookup(category, subject, issue, variant string) ([]string, string, bool) {
	if subject == "" {
		subject = AnySubject
	}
	entry, ok := b.entries[category][strings.ToLower(subject)][issue]
	if !ok {
		return nil, "", false
	}
	if variant != "" {
		if steps, ok := entry.Solutions[strings.ToLower(variant)]; ok && len(steps) > 0 {
			return steps, strings.ToLower(variant), true
		}
	}
	steps, ok := entry.Solutions[DefaultVariant]
	if !ok || len(steps) == 0 {
		return nil, "", false
	}
	return steps, DefaultVariant, true
}

// MatchTopic returns the campus topic whose keywords appear in message.
func (b *Base) MatchTopic(message string) (Topic, bool) {
	key, ok := b.topics.Match(message)
	if !ok {
		return Topic{}, false
	}
	return b.topicInfo[key], true
}

// ProblemRule pairs a problem with the substrings that detect it.
type ProblemRule struct {
	Problem
	Patterns []string
}
