package knowledge

import "github.com/Azartis/Konsultabot2-sub000/internal/matcher"

// Emotion tags, in detection precedence order.
const (
	EmotionFrustrated = "frustrated"
	EmotionSad        = "sad"
	EmotionWorried    = "worried"
	EmotionConfused   = "confused"
	EmotionExhausted  = "exhausted"
	EmotionRelieved   = "relieved"
	EmotionExcited    = "excited"
	EmotionPositive   = "positive"
	EmotionUrgent     = "urgent"
	EmotionNeutral    = "neutral"
)

// Lexicon groups the word tables used by the context tracker.
type Lexicon struct {
	DeviceTypes *matcher.Table
	Brands      *matcher.Table
	OS          *matcher.Table
	Emotions    *matcher.Table
	Gratitude   *matcher.Table
	Greetings   *matcher.Table
}

// DefaultLexicon returns the built-in tables.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		DeviceTypes: matcher.NewTable(deviceTypeRules...),
		Brands:      matcher.NewTable(brandRules...),
		OS:          matcher.NewTable(osRules...),
		Emotions:    matcher.NewTable(emotionRules...),
		Gratitude:   matcher.NewTable(gratitudeRules...),
		Greetings:   matcher.NewTable(greetingRules...),
	}
}

// Short words are padded with spaces so they only match whole words of
// normalized text: " ios " must not match "bios".
var deviceTypeRules = []matcher.Rule{
	{Tag: "laptop", Patterns: []string{"laptop", "notebook", "macbook", "chromebook"}},
	{Tag: "phone", Patterns: []string{"phone", "cellphone", "smartphone", "iphone", "android", "mobile"}},
	{Tag: "tablet", Patterns: []string{"tablet", "ipad"}},
	{Tag: "printer", Patterns: []string{"printer"}},
	{Tag: "desktop", Patterns: []string{"desktop", "computer", " pc ", " pcs ", "imac"}},
}

var brandRules = []matcher.Rule{
	{Tag: "apple", Patterns: []string{"apple", "iphone", "ipad", "macbook", "imac"}},
	{Tag: "samsung", Patterns: []string{"samsung", "galaxy"}},
	{Tag: "lenovo", Patterns: []string{"lenovo", "thinkpad", "ideapad"}},
	{Tag: "dell", Patterns: []string{"dell", "inspiron", "latitude"}},
	{Tag: "asus", Patterns: []string{"asus", "vivobook", "zenbook", " rog "}},
	{Tag: "acer", Patterns: []string{"acer", "aspire", "nitro"}},
	{Tag: "huawei", Patterns: []string{"huawei"}},
	{Tag: "xiaomi", Patterns: []string{"xiaomi", "redmi", "poco"}},
	{Tag: "oppo", Patterns: []string{"oppo"}},
	{Tag: "realme", Patterns: []string{"realme"}},
	{Tag: "epson", Patterns: []string{"epson"}},
	{Tag: "canon", Patterns: []string{"canon"}},
	{Tag: "hp", Patterns: []string{" hp ", " hp's ", "hewlett", "pavilion", "elitebook"}},
}

var osRules = []matcher.Rule{
	{Tag: "windows", Patterns: []string{"windows", "win10", "win11", "win 10", "win 11"}},
	{Tag: "macos", Patterns: []string{"macos", "mac os", "os x", "macbook", "imac"}},
	{Tag: "android", Patterns: []string{"android"}},
	{Tag: "ios", Patterns: []string{" ios ", "iphone", "ipad"}},
	{Tag: "linux", Patterns: []string{"linux", "ubuntu", "fedora"}},
	{Tag: "chromeos", Patterns: []string{"chromeos", "chrome os", "chromebook"}},
}

var emotionRules = []matcher.Rule{
	{Tag: EmotionFrustrated, Patterns: []string{"frustrat", "annoy", "angry", "hate this", "useless", "fed up", " ugh "}},
	{Tag: EmotionSad, Patterns: []string{"sad", "depress", "crying", "upset", "heartbroken"}},
	{Tag: EmotionWorried, Patterns: []string{"worried", "worry", "afraid", "scared", "nervous", "anxious"}},
	{Tag: EmotionConfused, Patterns: []string{"confus", "don't understand", "dont understand", "not sure", "no idea"}},
	{Tag: EmotionExhausted, Patterns: []string{"tired", "exhausted", "drained", "sleepy"}},
	{Tag: EmotionRelieved, Patterns: []string{"relieved", "phew", "finally"}},
	{Tag: EmotionExcited, Patterns: []string{"excited", "can't wait", "cant wait", "awesome", "amazing"}},
	{Tag: EmotionPositive, Patterns: []string{"thank", "great", "good", "nice", "happy", "love"}},
	{Tag: EmotionUrgent, Patterns: []string{"urgent", "asap", "emergency", "immediately", "right now", "deadline"}},
}

var gratitudeRules = []matcher.Rule{
	{Tag: "thanks", Patterns: []string{"thank", "salamat", "appreciate it", "that fixed it", "it works now", "that worked", "problem solved"}},
}

var greetingRules = []matcher.Rule{
	{Tag: "greeting", Patterns: []string{" hi ", " hello ", " hey ", " good morning ", " good afternoon ", " good evening ", " kumusta ", " maayong "}},
}
