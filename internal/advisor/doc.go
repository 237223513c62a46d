// Package advisor holds the rule-based trainer helpers: team suggestions
// over a fixed candidate pool, strategy guides, synergy reports and build
// templates. Only SuggestTeam touches the network, through the evolution
// resolver.
package advisor
