package advisor

import (
	"fmt"
	"strings"
)

// Guide levels.
const (
	LevelBeginner = "beginner"
	LevelAdvanced = "advanced"
)

// CuratedTopics are the suggested strategy guide topics.
var CuratedTopics = []string{
	"Basics of Type Matchups",
	"Balanced Team Strategy",
	"Hyper Offense Strategy",
	"Weather Teams",
	"Trick Room Strategy",
	"Tier List",
	"Breeding and EV/IV Training",
}

// StrategyGuide returns a Markdown guide for topic. Tier list topics and
// breeding or EV/IV topics have dedicated guides; anything else gets a
// general battle guide. Levels mentioning "beginner" get the introductory
// version.
func StrategyGuide(topic, level string) string {
	topic = strings.TrimSpace(topic)
	level = strings.TrimSpace(level)
	if level == "" {
		level = LevelBeginner
	}
	t := strings.ToLower(topic)
	beginner := strings.Contains(strings.ToLower(level), LevelBeginner)

	switch {
	case strings.Contains(t, "tier list"):
		if beginner {
			return fmt.Sprintf(tierListBeginner, level, strings.ToLower(level))
		}
		return fmt.Sprintf(tierListAdvanced, level, topic)
	case strings.Contains(t, "breeding") || strings.Contains(t, "ev/iv"):
		if beginner {
			return fmt.Sprintf(statsBeginner, level, strings.ToLower(level))
		}
		return fmt.Sprintf(statsAdvanced, level)
	default:
		return strings.NewReplacer("{topic}", topic, "{level}", level).Replace(generalGuide)
	}
}

const tierListBeginner = `## A Simple Tier List Guide (%s) 🏆

A tier list ranks pokemon by how effective they are in a given battle format.

### 1. Key Concepts
* **S-Tier:** dominant pokemon that appear in almost every team. (Examples: **Flutter Mane**, **Iron Hands**.)
* **A-Tier:** strong pokemon with weaknesses that are easier to exploit. (Examples: **Dragonite**, **Garchomp**.)
* **B-Tier:** still competitive, but they need specific team support.

### 2. Practical Tips
As a **%s** player, focus on A-Tier and B-Tier pokemon that are easy to set up. Do not just copy the S-Tier; learn why they are strong (ability, stats, movepool).

### 3. Example Team
A good starter team often uses a balanced Fire-Water-Grass core such as **Charizard**, **Blastoise** and **Venusaur**.
`

const tierListAdvanced = `## Tier List and Metagame Deep Dive (%s) 🧠

A tier list reflects what currently dominates the *metagame*.

### 1. Key Concepts
* **Metagame:** the competitive environment that shifts with the most used pokemon and strategies.
* **Role compression:** one pokemon covering several roles, for example attacker and hazard remover.

### 2. Analysis: %s
At the top tiers watch **Chien-Pao** and **Ogerpon**. The main question is how to answer your opponent's *speed control*.

### 3. Practical Tips
Use niche pokemon from **B-Tier** that specifically **dismantle** the dominant S-Tier threats.
`

const statsBeginner = `# Pokemon Stat Basics for %s Players 🥚

### 1. Base Stats
Stats decide how strong a pokemon is. Focus on **HP**, **Attack**, **Special Attack** and **Speed**. A **%s** player should pick pokemon with high attacking stats.

### 2. Understanding EVs and IVs
* **IV (Individual Value):** the pokemon's genetics, fixed once caught. Aim for 31 in the stats that matter.
* **EV (Effort Value):** points earned through training. At most 252 per stat and 510 in total. Spend them on the two most important stats.

### 3. Practical Tips
Always hit **super effective** type weaknesses. For breeding, use a **Destiny Knot** and an **Everstone**!
`

const statsAdvanced = `# EV/IV and Nature Optimization (%s) 🔬

Competitive play demands precise stat optimization.

### 1. Custom Spreads
Beyond 252/252, learn custom *EV spreads* that hit specific *benchmarks*, such as surviving a given attack or outspeeding a specific pokemon.

### 2. Zero IVs
Sometimes a **0** IV is exactly what you want: Attack on a special attacker, or Speed under Trick Room.

### 3. Practical Tips
Use **Power Items** for *EV training* and **Mints** to change a *nature* without breeding again.
`

const generalGuide = `# {topic} Strategy: {level} Guide ✨

This guide is for **{level}** players who want to master {topic} in battle.

### 1. Introduction to {topic}
**{topic}** shapes how your team's battles play out. Mastering it takes prediction and a solid understanding of the current *metagame*.

### 2. Key Concepts
Focus on **speed control** and good **positioning**. Use moves like **Tailwind** or **Trick Room** when {topic} is about speed. Consider *Defog* or *Rapid Spin* when {topic} involves *hazards*.

### 3. Example Pokemon and Sets
* **Dragapult (Choice Specs):** Shadow Ball / Draco Meteor / U-turn. (A *revenge killer* set.)
* **Alakazam (Focus Sash):** Psychic / Dazzling Gleam / Substitute / Focus Blast. (A *special sweeper*.)

### 4. Practical Tips
Always keep a *pivot* in reserve in case your main pokemon gets countered. Never rely on a single pokemon!
`
