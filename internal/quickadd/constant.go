package quickadd

// Confidence scoring. The score starts at ConfidenceBase and accumulates a
// fixed weight per matched rule; it is clamped at 1.0 after all rules run
// so relative ordering across inputs is preserved.
const (
	ConfidenceBase = 0.5

	WeightCategory   = 0.20
	WeightDate       = 0.15
	WeightTime       = 0.10
	WeightType       = 0.10
	WeightPriority   = 0.10
	WeightRecurrence = 0.15
	WeightLocation   = 0.10

	// WeightExtra is the contribution of preset-specific extraction rules
	// (course codes, quantities, brands, servings).
	WeightExtra = 0.10
)

// SuggestionThreshold: suggestions are generated only below this confidence.
const SuggestionThreshold = 0.7

// Suggestion strings, appended in this order when applicable.
const (
	SuggestAddDueDate      = "Add due date"
	SuggestSpecifyCategory = "Specify category"
	SuggestAddTime         = "Add time"
)

// Priority indicator phrases. High is checked before low; the first list
// with any matching indicator wins. Matched words stay in the title.
var (
	highPriorityWords = []string{
		"urgent", "asap", "critical", "important", "emergency", "!!!", "high priority",
	}
	lowPriorityWords = []string{
		"later", "sometime", "eventually", "low priority", "when free",
	}
)

// Bare words recognized as locations when no at/@ or room-style phrase matched.
var bareLocationWords = []string{
	"gym", "home", "work", "office", "school", "mall", "store",
}
