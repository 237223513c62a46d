package advisor

import (
	"slices"
	"strings"

	"poketrainers/internal/display"
)

// EmptyTeamMessage is the synergy report for a team with no members.
const EmptyTeamMessage = "The team is empty. Add pokemon to your deck to analyse its synergy."

type combo struct {
	applies func(team []string) bool
	text    string
}

var combos = []combo{
	{
		applies: func(team []string) bool {
			return slices.Contains(team, "Whimsicott") &&
				slices.ContainsFunc([]string{"Garchomp", "Dragapult", "Cinderace"}, func(p string) bool {
					return slices.Contains(team, p)
				})
		},
		text: "**🎯 Tailwind + Wallbreaker:** **Whimsicott** (assuming **Tailwind**) doubles your team's speed. " +
			"That lets **Garchomp** or **Dragapult** strike first and break the opponent before they move. *(Speed control synergy)*",
	},
	{
		applies: func(team []string) bool {
			return slices.Contains(team, "Venusaur") && slices.Contains(team, "Charizard")
		},
		text: "**☀️ Sun + Growth:** a strong Fire/Grass core! When **Charizard** (with Drought or weather support) brings out the sun, " +
			"**Venusaur** can use **Chlorophyll** for a huge speed boost or a stronger **Growth**. *(Weather synergy)*",
	},
	{
		applies: func(team []string) bool {
			return slices.Contains(team, "Arcanine") && slices.Contains(team, "Milotic")
		},
		text: "**🛡️ Anti-Intimidate:** if the opponent uses **Intimidate** into your team, " +
			"**Milotic** can trigger **Competitive** and sharply raise its Special Attack! *(Ability counter synergy)*",
	},
}

// Synergy returns a Markdown report of the known combos in team. With no
// combo it gives general advice, or asks for more members when the team has
// fewer than three.
func Synergy(team []string) string {
	if len(team) == 0 {
		return EmptyTeamMessage
	}
	names := display.Names(team)

	var b strings.Builder
	b.WriteString("### 💡 Team Synergy Analysis")
	found := false
	for _, c := range combos {
		if c.applies(names) {
			b.WriteString("\n\n")
			b.WriteString(c.text)
			found = true
		}
	}
	if found {
		return b.String()
	}

	if len(team) >= 3 {
		b.WriteString("\n\n**📝 General advice:** no clear combo found. Consider:" +
			"\n* **Type synergy:** for example a **Ground** pokemon (like Garchomp) protects an **Electric** one (like Pikachu) from Ground attacks." +
			"\n* **Pivoting:** pokemon that switch out safely (*Volt Switch* or *U-turn*) keep up momentum." +
			"\n* **Status control:** pokemon that inflict Sleep or Paralysis make setting up easier.")
	} else {
		b.WriteString("\n\n**📝 Advice:** add more pokemon (at least 3) for a deeper synergy analysis.")
	}
	return b.String()
}
