package advisor

import (
	"fmt"

	"poketrainers/internal/display"
)

// BuildTemplate is a competitive set for one pokemon.
type BuildTemplate struct {
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Item     string   `json:"item"`
	Ability  string   `json:"ability"`
	Moveset  []string `json:"moveset"`
	EVSpread string   `json:"ev_spread"`
	Nature   string   `json:"nature"`
	Strategy string   `json:"strategy"`
}

var builds = map[string]BuildTemplate{
	"Garchomp": {
		Role:     "Physical Sweeper / Late-Game Cleaner",
		Item:     "Choice Scarf (first choice) or Life Orb (second choice)",
		Ability:  "Rough Skin (most popular)",
		Moveset:  []string{"Earthquake", "Outrage", "Stone Edge", "Swords Dance"},
		EVSpread: "252 Atk / 4 Def / 252 Spe",
		Nature:   "Jolly (+Spe, -Sp. Atk)",
		Strategy: "Garchomp is one of the best offensive pokemon. Choice Scarf lets it outspeed many fast threats " +
			"and work as a revenge killer. Run Life Orb when you want to set up Swords Dance and sweep.",
	},
	"Flutter Mane": {
		Role:     "Special Attacker / Booster Energy Sweeper",
		Item:     "Booster Energy (required to trigger Protosynthesis)",
		Ability:  "Protosynthesis",
		Moveset:  []string{"Moonblast", "Shadow Ball", "Thunderbolt", "Protect"},
		EVSpread: "252 Sp. Atk / 4 Def / 252 Spe",
		Nature:   "Timid (+Spe, -Atk)",
		Strategy: "Flutter Mane is among the fastest and strongest pokemon in the current metagame. Booster Energy " +
			"raises its Speed automatically. Protect blocks attacks and wins one-on-one duels. Hit hard with Moonblast and Shadow Ball.",
	},
	"Pikachu": {
		Role:     "Light Ball Attacker / Mascot",
		Item:     "Light Ball (required, doubles Attack and Sp. Atk)",
		Ability:  "Lightning Rod (for doubles)",
		Moveset:  []string{"Volt Tackle", "Surf", "Nuzzle", "Fake Out"},
		EVSpread: "252 Atk / 4 Def / 252 Spe",
		Nature:   "Hasty (+Spe, -Def)",
		Strategy: "Pikachu is only competitive with a Light Ball, which gives it huge damage output. " +
			"Nuzzle paralyses faster foes and Volt Tackle deals maximum damage. In doubles, Fake Out and Lightning Rod are very valuable.",
	},
}

// Build returns the build template for a pokemon. Pokemon without a known
// set get a balanced generic template.
func Build(name string) BuildTemplate {
	title := display.Name(name)
	if b, ok := builds[title]; ok {
		b.Name = title
		b.Moveset = append([]string(nil), b.Moveset...)
		return b
	}
	return BuildTemplate{
		Name:     title,
		Role:     "Balanced Attacker / Generalist",
		Item:     "Leftovers or Assault Vest",
		Ability:  "The pokemon's natural ability (see the dex)",
		Moveset:  []string{"The 4 strongest moves with different coverage", "Including 1 defensive move"},
		EVSpread: "252 HP / 252 in the highest attacking stat (Atk or Sp. Atk)",
		Nature:   "Modest or Adamant (depending on Atk or Sp. Atk)",
		Strategy: fmt.Sprintf("No specific popular build is known for %s right now, or it is not a competitive pokemon. "+
			"Start from a balanced set that shores up your defenses and covers your team's type weaknesses.", title),
	}
}
