// Package evolution resolves evolutionary lines and collapses a team so that
// at most one member of each line remains.
//
// Usage:
//
//	resolver := evolution.NewResolver(source, evolution.WithLogger(logger))
//	line := resolver.Resolve(ctx, "Charmeleon") // [charmander charmeleon charizard]
//	team := evolution.NewDeduplicator(resolver).Deduplicate(ctx, []string{"Charmander", "Charizard"})
//
// Resolution never fails: a name the source cannot place in a chain is
// treated as its own single-stage line.
package evolution
