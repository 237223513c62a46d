// Package display provides human-readable names for API identifiers.
//
// Rule: slugs are for machines, words are for humans.
// Use these functions in CLI output, markdown reports and JSON cards.
// Keep raw slugs for API calls, map keys and equality comparisons.
package display

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// --- Species and slugs ---

// Name title-cases an API slug, keeping hyphens.
// "mr-mime" -> "Mr-Mime", "PIKACHU" -> "Pikachu".
func Name(slug string) string {
	s := strings.TrimSpace(slug)
	if s == "" {
		return ""
	}
	// A Caser is stateful and must not be shared between goroutines.
	return cases.Title(language.Und).String(s)
}

// Names applies Name to every element.
func Names(slugs []string) []string {
	out := make([]string, len(slugs))
	for i, s := range slugs {
		out[i] = Name(s)
	}
	return out
}

// Location turns a location-area slug into words.
// "viridian-forest-area" -> "Viridian Forest Area".
func Location(slug string) string {
	return Name(strings.ReplaceAll(slug, "-", " "))
}

// Line joins an evolution line for display.
// ["pichu", "pikachu", "raichu"] -> "Pichu -> Pikachu -> Raichu"
func Line(stages []string) string {
	return strings.Join(Names(stages), " → ")
}

// --- Poke Balls ---

var balls = map[string]string{
	"poke":   "Poké Ball",
	"great":  "Great Ball",
	"ultra":  "Ultra Ball",
	"master": "Master Ball",
	"quick":  "Quick Ball",
	"net":    "Net Ball",
}

// Ball returns the item name for a ball code.
// Unknown codes are returned as-is.
func Ball(code string) string {
	if name, ok := balls[code]; ok {
		return name
	}
	return code
}

// BallWithCode returns "Great Ball (great)" format.
func BallWithCode(code string) string {
	if name, ok := balls[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}

// --- Status conditions ---

var statuses = map[string]string{
	"none": "None",
	"par":  "Paralysis",
	"psn":  "Poison",
	"brn":  "Burn",
	"slp":  "Sleep",
	"frz":  "Freeze",
}

// Status returns the condition name for a status code.
// Unknown codes are returned as-is.
func Status(code string) string {
	if name, ok := statuses[code]; ok {
		return name
	}
	return code
}

// StatusWithCode returns "Sleep (slp)" format.
func StatusWithCode(code string) string {
	if name, ok := statuses[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}
