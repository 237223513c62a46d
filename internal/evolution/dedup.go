package evolution

import (
	"context"
	"slices"
	"strings"
)

// Group is the set of candidates that resolved to the same line.
type Group struct {
	Line    []string // resolved line, base form first
	Members []string // candidates in insertion order, exact duplicates dropped
	Winner  string   // the member kept in the team
}

// Result is the outcome of deduplicating a candidate list.
type Result struct {
	Team    []string // one winner per line, in order of first appearance
	Removed []string // candidates not kept, in input order
	Groups  []Group  // in the same order as Team
}

// Deduplicator keeps at most one member per evolutionary line.
type Deduplicator struct {
	resolver LineResolver
}

// NewDeduplicator returns a Deduplicator resolving lines through r.
func NewDeduplicator(r LineResolver) *Deduplicator {
	return &Deduplicator{resolver: r}
}

// Deduplicate returns candidates reduced to one name per evolutionary line.
// The most evolved stage present wins; among members at that stage the one
// seen first wins. Winners keep their original spelling and appear in the
// order their line was first encountered.
func (d *Deduplicator) Deduplicate(ctx context.Context, candidates []string) []string {
	return d.Report(ctx, candidates).Team
}

// Report is Deduplicate with the grouping and removed entries exposed.
func (d *Deduplicator) Report(ctx context.Context, candidates []string) Result {
	res := Result{Team: []string{}}
	if len(candidates) == 0 {
		return res
	}

	index := make(map[string]int)
	var groups []*Group
	for _, c := range candidates {
		line := d.resolver.Resolve(ctx, c)
		key := strings.Join(line, "\x00")
		i, ok := index[key]
		if !ok {
			groups = append(groups, &Group{Line: line})
			i = len(groups) - 1
			index[key] = i
		}
		g := groups[i]
		if !slices.Contains(g.Members, c) {
			g.Members = append(g.Members, c)
		}
	}

	kept := make(map[string]bool, len(groups))
	for _, g := range groups {
		g.Winner = pickWinner(g)
		kept[g.Winner] = true
		res.Team = append(res.Team, g.Winner)
		res.Groups = append(res.Groups, *g)
	}

	for _, c := range candidates {
		if kept[c] {
			// Only the first occurrence of a winner is part of the team.
			delete(kept, c)
			continue
		}
		res.Removed = append(res.Removed, c)
	}
	return res
}

// pickWinner walks the line from the most evolved stage back to the base and
// returns the first member at the first stage that has any.
func pickWinner(g *Group) string {
	for i := len(g.Line) - 1; i >= 0; i-- {
		for _, m := range g.Members {
			if Normalize(m) == g.Line[i] {
				return m
			}
		}
	}
	return g.Members[0]
}
