package quickadd

import (
	"regexp"
	"strconv"
	"strings"

	"lifedesk/internal/model"
)

// GeneralPreset is the default quick-add configuration.
func GeneralPreset() Preset {
	return Preset{
		Name:        "general",
		DefaultKind: model.KindTask,
		Buckets: []KindBucket{
			{
				Kind:     model.KindEvent,
				Keywords: []string{"meeting", "appointment", "call", "conference", "interview", "dinner", "lunch"},
			},
			{
				Kind:     model.KindNote,
				Keywords: []string{"note:", "remember:", "thoughts:", "ideas:", "memo:"},
			},
			{
				Kind:     model.KindIdea,
				Keywords: []string{"idea:", "brainstorm", "concept", "innovation", "inspiration"},
			},
			{
				Kind:     model.KindTask,
				Keywords: []string{"buy", "get", "pick up", "complete", "finish", "do", "make"},
			},
		},
	}
}

var courseCodeRe = regexp.MustCompile(`^[A-Z]{2,4}\d{3}[A-Z]?\b`)

// SchoolPreset recognizes course codes and school-specific item types.
func SchoolPreset() Preset {
	return Preset{
		Name:        "school",
		DefaultKind: model.KindTask,
		Buckets: []KindBucket{
			{
				Kind:     model.KindTask,
				Subtype:  "assignment",
				Keywords: []string{"assignment", "homework", "essay", "problem set", "due"},
			},
			{
				Kind:     model.KindEvent,
				Subtype:  "lecture",
				Keywords: []string{"lecture", "class", "seminar", "lab"},
			},
			{
				Kind:     model.KindEvent,
				Subtype:  "exam",
				Keywords: []string{"exam", "test", "quiz", "midterm", "final"},
			},
		},
		ExtraRules: []Rule{
			{
				Name:   "course-code",
				Weight: WeightExtra,
				Run: func(st *state) bool {
					match := courseCodeRe.FindString(strings.TrimSpace(st.working))
					if match == "" {
						return false
					}
					st.result.Course = match
					st.strip(match)
					return true
				},
			},
		},
	}
}

// WorkPreset favors meetings and deliverables.
func WorkPreset() Preset {
	return Preset{
		Name:        "work",
		DefaultKind: model.KindTask,
		Buckets: []KindBucket{
			{
				Kind:     model.KindEvent,
				Subtype:  "meeting",
				Keywords: []string{"meeting", "standup", "1:1", "one-on-one", "sync", "review", "interview", "call"},
			},
			{
				Kind:     model.KindTask,
				Subtype:  "deliverable",
				Keywords: []string{"deliver", "ship", "deploy", "release", "submit", "report"},
			},
			{
				Kind:     model.KindNote,
				Keywords: []string{"note:", "remember:", "memo:"},
			},
			{
				Kind:     model.KindTask,
				Keywords: []string{"complete", "finish", "do", "prepare", "draft"},
			},
		},
	}
}

var (
	quantityRe = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:iu|mg|g|kg|ml|l|oz|lb|lbs|pack|packs)\b`)
	servingsRe = regexp.MustCompile(`(?i)\b(\d+)\s*(?:times?\s+)?(?:per|a)\s+day\b`)
	brandRe    = regexp.MustCompile(`(?i)\b(?:from|by)\s+([A-Za-z][A-Za-z0-9&'-]*)\b`)
)

// ShoppingPreset recognizes quantities, brands and servings-per-day and
// routes supplements, food and clothing to their own subtypes.
func ShoppingPreset() Preset {
	return Preset{
		Name:        "shopping",
		DefaultKind: model.KindTask,
		Buckets: []KindBucket{
			{
				Kind:     model.KindTask,
				Subtype:  "supplement",
				Keywords: []string{"vitamin", "supplement", "protein", "omega", "probiotic", "creatine"},
			},
			{
				Kind:     model.KindTask,
				Subtype:  "food",
				Keywords: []string{"milk", "bread", "eggs", "cheese", "fruit", "vegetable", "coffee", "snack"},
			},
			{
				Kind:     model.KindTask,
				Subtype:  "clothing",
				Keywords: []string{"shirt", "pants", "shoes", "jacket", "socks", "dress"},
			},
		},
		ExtraRules: []Rule{
			{
				Name:   "quantity-unit",
				Weight: WeightExtra,
				Run: func(st *state) bool {
					match := quantityRe.FindString(st.working)
					if match == "" {
						return false
					}
					st.result.Quantity = strings.TrimSpace(match)
					st.strip(match)
					return true
				},
			},
			{
				Name:   "servings-per-day",
				Weight: WeightExtra,
				Run: func(st *state) bool {
					match := servingsRe.FindStringSubmatch(st.working)
					if match == nil {
						return false
					}
					n, err := strconv.Atoi(match[1])
					if err != nil {
						return false
					}
					st.result.ServingsPerDay = n
					st.strip(match[0])
					return true
				},
			},
			{
				Name:   "brand",
				Weight: WeightExtra,
				Run: func(st *state) bool {
					match := brandRe.FindStringSubmatch(st.working)
					if match == nil {
						return false
					}
					st.result.Brand = match[1]
					st.strip(match[0])
					return true
				},
			},
		},
	}
}

// PresetByName returns the preset registered under name, falling back to
// the general preset for unknown names.
func PresetByName(name string) Preset {
	switch strings.ToLower(name) {
	case "school":
		return SchoolPreset()
	case "work":
		return WorkPreset()
	case "shopping":
		return ShoppingPreset()
	default:
		return GeneralPreset()
	}
}
