package pokeapi

import (
	"strconv"
	"strings"
)

// --- PokeAPI response types (hand-written, fields this module reads) ---

// NamedResource is a link to another resource by name.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Resource is an unnamed link to another resource.
type Resource struct {
	URL string `json:"url"`
}

// ID returns the numeric id at the end of the resource URL.
func (r NamedResource) ID() (int, bool) { return ResourceID(r.URL) }

// ResourceID parses the trailing numeric segment of a resource URL such as
// https://pokeapi.co/api/v2/pokemon-species/25/.
func ResourceID(u string) (int, bool) {
	u = strings.TrimSuffix(u, "/")
	i := strings.LastIndexByte(u, '/')
	if i < 0 {
		return 0, false
	}
	id, err := strconv.Atoi(u[i+1:])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Species is a /pokemon-species resource.
type Species struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	CaptureRate    int            `json:"capture_rate"`
	IsLegendary    bool           `json:"is_legendary"`
	IsMythical     bool           `json:"is_mythical"`
	EvolutionChain Resource       `json:"evolution_chain"`
	EvolvesFrom    *NamedResource `json:"evolves_from_species"`
	Generation     NamedResource  `json:"generation"`
}

// EvolutionChain is a /evolution-chain resource.
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is one node of an evolution chain.
type ChainLink struct {
	Species   NamedResource `json:"species"`
	EvolvesTo []ChainLink   `json:"evolves_to"`
}

// Pokemon is a /pokemon resource.
type Pokemon struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Height    int              `json:"height"`
	Weight    int              `json:"weight"`
	Types     []PokemonType    `json:"types"`
	Abilities []PokemonAbility `json:"abilities"`
	Stats     []PokemonStat    `json:"stats"`
	Sprites   Sprites          `json:"sprites"`
	Species   NamedResource    `json:"species"`
}

// TypeNames returns the pokemon's type names in slot order.
func (p *Pokemon) TypeNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		names = append(names, t.Type.Name)
	}
	return names
}

// AbilityNames returns the pokemon's ability names in slot order.
func (p *Pokemon) AbilityNames() []string {
	names := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		names = append(names, a.Ability.Name)
	}
	return names
}

// ArtworkURL returns the official artwork, falling back to the default sprite.
func (p *Pokemon) ArtworkURL() string {
	if u := p.Sprites.Other.OfficialArtwork.FrontDefault; u != "" {
		return u
	}
	return p.Sprites.FrontDefault
}

// PokemonType is a typed slot on a pokemon.
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// PokemonAbility is an ability slot on a pokemon.
type PokemonAbility struct {
	Slot     int           `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

// PokemonStat is a base stat value.
type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// Sprites holds the image URLs of a pokemon.
type Sprites struct {
	FrontDefault string `json:"front_default"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

// Encounter is one entry of /pokemon/{x}/encounters.
type Encounter struct {
	LocationArea NamedResource `json:"location_area"`
}

// Type is a /type resource.
type Type struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	DamageRelations DamageRelations `json:"damage_relations"`
}

// DamageRelations lists how a type fares against others.
type DamageRelations struct {
	DoubleDamageFrom []NamedResource `json:"double_damage_from"`
	HalfDamageFrom   []NamedResource `json:"half_damage_from"`
	NoDamageFrom     []NamedResource `json:"no_damage_from"`
	DoubleDamageTo   []NamedResource `json:"double_damage_to"`
	HalfDamageTo     []NamedResource `json:"half_damage_to"`
	NoDamageTo       []NamedResource `json:"no_damage_to"`
}

// Generation is a /generation resource.
type Generation struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	MainRegion     NamedResource   `json:"main_region"`
	PokemonSpecies []NamedResource `json:"pokemon_species"`
}

// --- Paginated response wrapper ---

// NamedResourceList is the paginated response for resource listing.
type NamedResourceList struct {
	Count    int             `json:"count"`
	Next     string          `json:"next"`
	Previous string          `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// EffectEntry is a localized effect description.
type EffectEntry struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    NamedResource `json:"language"`
}

// FlavorText is a localized item description.
type FlavorText struct {
	Text     string        `json:"text"`
	Language NamedResource `json:"language"`
}

// Move is a /move resource.
type Move struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Power         *int          `json:"power"`
	Accuracy      *int          `json:"accuracy"`
	PP            *int          `json:"pp"`
	Type          NamedResource `json:"type"`
	DamageClass   NamedResource `json:"damage_class"`
	EffectEntries []EffectEntry `json:"effect_entries"`
}

// Item is an /item resource.
type Item struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Cost          int           `json:"cost"`
	Category      NamedResource `json:"category"`
	EffectEntries []FlavorText  `json:"effect_entries"`
	Sprites       struct {
		Default string `json:"default"`
	} `json:"sprites"`
}

// Ability is an /ability resource.
type Ability struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	EffectEntries []EffectEntry    `json:"effect_entries"`
	Pokemon       []AbilityPokemon `json:"pokemon"`
}

// AbilityPokemon links an ability to a pokemon that can have it.
type AbilityPokemon struct {
	IsHidden bool          `json:"is_hidden"`
	Pokemon  NamedResource `json:"pokemon"`
}
