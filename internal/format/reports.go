package format

import (
	"slices"
	"strings"

	"poketrainers/internal/advisor"
	"poketrainers/internal/dex"
	"poketrainers/internal/display"
	"poketrainers/internal/evolution"
)

// effectWidth caps free-text columns in ASCII tables.
const effectWidth = 60

// DedupTable renders one row per evolution line: the members found, the one
// kept, and the line itself.
func DedupTable(res evolution.Result, m Mode) string {
	tb := NewTable(m)
	tb.Title("Evolution lines")
	tb.Header("#", "Kept", "Members", "Line")
	for i, g := range res.Groups {
		tb.Row(i+1, g.Winner, strings.Join(g.Members, ", "), display.Line(g.Line))
	}
	removed := "none"
	if len(res.Removed) > 0 {
		removed = strings.Join(res.Removed, ", ")
	}
	tb.Footer("", "Removed", removed, "")
	tb.AlignRight(1)
	return tb.String()
}

// LineTable renders an evolution line with the queried stage marked.
func LineTable(query string, line []string, m Mode) string {
	tb := NewTable(m)
	tb.Header("Stage", "Pokemon", "Queried")
	q := evolution.Normalize(query)
	for i, s := range line {
		tb.Row(i+1, display.Name(s), BoolMark(s == q))
	}
	tb.AlignRight(1)
	tb.AlignCenter(3)
	return tb.String()
}

// SuggestionTable renders a suggested team, flagging the owned members.
func SuggestionTable(s advisor.Suggestion, owned []string, m Mode) string {
	tb := NewTable(m)
	tb.Header("#", "Pokemon", "Owned")
	own := display.Names(owned)
	for i, name := range s.Team {
		tb.Row(i+1, name, BoolMark(slices.Contains(own, name)))
	}
	if len(s.Removed) > 0 {
		tb.Footer("", "Dropped: "+strings.Join(s.Removed, ", "), "")
	}
	tb.AlignRight(1)
	tb.AlignCenter(3)
	return tb.String()
}

// WeaknessTable renders weaknesses sorted as given.
func WeaknessTable(ws []dex.Weakness, m Mode) string {
	tb := NewTable(m)
	tb.Header("Type", "Damage")
	for _, w := range ws {
		tb.Row(display.Name(w.Type), Multiplier(w.Multiplier))
	}
	tb.AlignRight(2)
	return tb.String()
}

// CatchTable renders a catch estimate.
func CatchTable(r *dex.CatchReport, in dex.CatchInput, m Mode) string {
	tb := NewTable(m)
	tb.Header("Pokemon", "Ball", "Status", "HP", "Capture Rate", "Chance", "Rating")
	chance := Percent(r.Result.Percent)
	if r.Result.Guaranteed {
		chance = "100% (guaranteed)"
	}
	tb.Row(display.Name(r.Name), display.Ball(orDefault(in.Ball, "poke")), display.Status(orDefault(in.Status, "none")),
		hp(in.CurrentHP, in.MaxHP), r.CaptureRate, chance, r.Result.Rating)
	tb.AlignRight(5, 6)
	return tb.String()
}

// BuildTable renders a build template as key/value rows.
func BuildTable(b advisor.BuildTemplate, m Mode) string {
	tb := NewTable(m)
	tb.Header("Field", b.Name)
	tb.Row("Role", b.Role)
	tb.Row("Item", b.Item)
	tb.Row("Ability", b.Ability)
	tb.Row("Moveset", strings.Join(b.Moveset, " / "))
	tb.Row("EV Spread", b.EVSpread)
	tb.Row("Nature", b.Nature)
	tb.Row("Strategy", b.Strategy)
	tb.Wrap(2, effectWidth)
	return tb.String()
}

// MoveTable renders a move entry.
func MoveTable(mv *dex.MoveInfo, m Mode) string {
	tb := NewTable(m)
	tb.Header("Move", "Type", "Category", "Power", "Accuracy", "PP", "Effect")
	tb.Row(display.Name(mv.Name), display.Name(mv.Type), mv.Category,
		OptInt(mv.Power), OptInt(mv.Accuracy), OptInt(mv.PP), mv.Effect)
	tb.Wrap(7, effectWidth)
	return tb.String()
}

// ItemTable renders an item entry.
func ItemTable(it *dex.ItemInfo, m Mode) string {
	tb := NewTable(m)
	tb.Header("Item", "Category", "Cost", "Effect")
	tb.Row(display.Name(it.Name), display.Location(it.Category), it.Cost, it.Effect)
	tb.AlignRight(3)
	tb.Wrap(4, effectWidth)
	return tb.String()
}

// AbilityTable renders an ability entry with its holders.
func AbilityTable(ab *dex.AbilityInfo, m Mode) string {
	tb := NewTable(m)
	tb.Header("Ability", "Effect", "Pokemon")
	holders := strings.Join(display.Names(ab.Pokemon), ", ")
	if ab.More > 0 {
		holders += " +" + itoa(ab.More) + " more"
	}
	tb.Row(display.Name(ab.Name), ab.Effect, holders)
	tb.Wrap(2, effectWidth)
	tb.Wrap(3, effectWidth)
	return tb.String()
}

func hp(cur, maxHP int) string { return itoa(cur) + "/" + itoa(maxHP) }

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
