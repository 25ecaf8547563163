package resolver

import (
	"fmt"
	"strings"

	"github.com/Azartis/Konsultabot2-sub000/internal/knowledge"
)

var openings = map[string][]string{
	knowledge.EmotionFrustrated: {
		"I understand how frustrating this is. Let's sort it out together.",
		"Sorry you're dealing with this. Let's fix it step by step.",
	},
	knowledge.EmotionSad: {
		"I'm sorry this is getting you down. Let's try to get it working again.",
	},
	knowledge.EmotionWorried: {
		"Don't worry, this is usually fixable.",
		"No need to panic. Most of the time this can be fixed.",
	},
	knowledge.EmotionConfused: {
		"No problem, I'll keep it simple.",
		"Let me walk you through it one step at a time.",
	},
	knowledge.EmotionExhausted: {
		"I know it's been a long day. Here's the quickest path.",
	},
	knowledge.EmotionUrgent: {
		"Let's get this fixed fast.",
		"Here's the quickest way to get you back on track.",
	},
	knowledge.EmotionNeutral: {
		"Here's what you can try.",
		"Let's troubleshoot this.",
	},
}

var closings = map[string][]string{
	knowledge.EmotionFrustrated: {"If it still doesn't work, tell me which step failed and we'll keep going."},
	knowledge.EmotionWorried:    {"Your files are most likely safe. Let me know how it goes."},
	knowledge.EmotionConfused:   {"If any step is unclear, just ask and I'll explain it."},
	knowledge.EmotionUrgent:     {"If none of this works, go straight to the ICT office so they can prioritize it."},
	knowledge.EmotionNeutral: {
		"Let me know if this helps.",
		"Tell me how it goes.",
	},
}

var acknowledgements = []string{
	"You're welcome! Glad I could help.",
	"Happy to help! Let me know if anything else comes up.",
	"Great to hear that! I'm here if you need anything else.",
}

var repeatAcknowledgements = []string{
	"Glad we fixed another one! Anything else I can help with?",
	"That's %d problems solved today. Anything else?",
}

var greetings = []string{
	"Hello! I'm KonsultaBot. Tell me about a device problem or ask me about campus services.",
	"Hi there! What can I help you with today?",
}

var offlineReplies = []string{
	"I couldn't find a ready answer for that. I can help with laptops, phones, printers, networks and accounts, or with campus information like enrollment and the library.",
	"I'm not sure about that one yet. Try describing the device and the problem, for example \"my laptop won't turn on\".",
}

const errorPrefix = "I'm having trouble right now reaching my online resources. "

var issueTips = []string{
	"Restart the device and try again.",
	"Check for pending updates.",
	"If it keeps happening, bring the device to the ICT office.",
}

var questions = map[knowledge.Field]string{
	knowledge.FieldDeviceType: "What device are you having trouble with?",
	knowledge.FieldBrand:      "What brand is your %s?",
	knowledge.FieldOS:         "Which operating system does it run (Windows, macOS, Android, iOS or Linux)?",
	knowledge.FieldDetails:    "Can you describe the problem in more detail, including any error message you see?",
}

// pickFrom returns one entry using the resolver's picker. Emotions with no
// list of their own use the neutral one.
func (r *Resolver) pickFrom(table map[string][]string, emotion string) string {
	list, ok := table[emotion]
	if !ok || len(list) == 0 {
		list = table[knowledge.EmotionNeutral]
	}
	return list[r.pick(len(list))]
}

func (r *Resolver) pickOne(list []string) string {
	return list[r.pick(len(list))]
}

func questionText(f knowledge.Field, device string) string {
	q := questions[f]
	if f == knowledge.FieldBrand {
		if device == "" {
			device = "device"
		}
		return fmt.Sprintf(q, device)
	}
	return q
}

func (r *Resolver) renderSolution(emotion, issue, subject, variant string, steps []string) string {
	var b strings.Builder
	b.WriteString(r.pickFrom(openings, emotion))
	b.WriteString("\n\n")

	target := subject
	if variant != "" && variant != knowledge.DefaultVariant {
		target = variant + " " + subject
	}
	if target == "" || target == knowledge.AnySubject {
		fmt.Fprintf(&b, "Steps for %s:\n", describeIssue(issue))
	} else {
		fmt.Fprintf(&b, "Steps for %s (%s):\n", describeIssue(issue), target)
	}
	for i, step := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	b.WriteString("\n")
	b.WriteString(r.pickFrom(closings, emotion))
	return b.String()
}

func describeIssue(issue string) string {
	switch issue {
	case "wont turn on":
		return "a device that won't turn on"
	case "blue screen":
		return "blue screen errors"
	default:
		return issue
	}
}
