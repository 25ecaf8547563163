// Package matcher implements ordered, first-match-wins substring tables.
//
// A Table is an explicit rule list. Precedence is the declaration order of
// the rules: when a message contains patterns from several rules, the rule
// declared first wins, regardless of how specific its patterns are.
package matcher

import "strings"

// Rule binds a tag to the substring patterns that select it.
type Rule struct {
	Tag      string
	Patterns []string
}

// Table is an ordered list of rules.
type Table struct {
	rules []Rule
	index map[string]int
}

// NewTable builds a table from rules in precedence order. Patterns are
// lowercased once here so Match only has to lowercase the input.
func NewTable(rules ...Rule) *Table {
	t := &Table{
		rules: make([]Rule, 0, len(rules)),
		index: make(map[string]int, len(rules)),
	}
	for _, r := range rules {
		patterns := make([]string, 0, len(r.Patterns))
		for _, p := range r.Patterns {
			if p = strings.ToLower(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		if _, dup := t.index[r.Tag]; dup {
			// A repeated tag extends the earlier rule and keeps its position.
			i := t.index[r.Tag]
			t.rules[i].Patterns = append(t.rules[i].Patterns, patterns...)
			continue
		}
		t.index[r.Tag] = len(t.rules)
		t.rules = append(t.rules, Rule{Tag: r.Tag, Patterns: patterns})
	}
	return t
}

// Match returns the tag of the first rule with a pattern contained in text.
func (t *Table) Match(text string) (string, bool) {
	if t == nil {
		return "", false
	}
	lower := strings.ToLower(text)
	for _, r := range t.rules {
		for _, p := range r.Patterns {
			if strings.Contains(lower, p) {
				return r.Tag, true
			}
		}
	}
	return "", false
}

// Contains reports whether any rule matches text.
func (t *Table) Contains(text string) bool {
	_, ok := t.Match(text)
	return ok
}

// Rule returns the rule registered for tag.
func (t *Table) Rule(tag string) (Rule, bool) {
	if t == nil {
		return Rule{}, false
	}
	i, ok := t.index[tag]
	if !ok {
		return Rule{}, false
	}
	return t.rules[i], true
}

// Tags lists the tags in precedence order.
func (t *Table) Tags() []string {
	if t == nil {
		return nil
	}
	tags := make([]string, len(t.rules))
	for i, r := range t.rules {
		tags[i] = r.Tag
	}
	return tags
}
