// Package pokeapi provides a scope-based client for the public PokeAPI v2.
//
// Usage:
//
//	client, err := pokeapi.New(pokeapi.DefaultBaseURL, pokeapi.WithTimeout(8*time.Second))
//	species, err := client.Species().Get(ctx, "charmander")
//	chain, err := client.EvolutionChains().GetByURL(ctx, species.EvolutionChain.URL)
//	mon, err := client.Pokemon().Get(ctx, "charizard")
//
// Source adapts a Client to evolution.Source so the resolver can read
// chains straight from the API.
package pokeapi
