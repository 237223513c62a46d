package pokeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"poketrainers/internal/evolution"
)

// newChainServer serves an eevee-style branching chain plus one species
// without a chain entry.
func newChainServer(t *testing.T, chainHits *atomic.Int32) *Client {
	t.Helper()
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chainURL := server.URL + "/evolution-chain/67/"
		switch r.URL.Path {
		case "/pokemon-species/eevee", "/pokemon-species/vaporeon", "/pokemon-species/jolteon":
			json.NewEncoder(w).Encode(Species{Name: "eevee", EvolutionChain: Resource{URL: chainURL}})
		case "/pokemon-species/orphan":
			json.NewEncoder(w).Encode(Species{Name: "orphan"})
		case "/evolution-chain/67/":
			chainHits.Add(1)
			json.NewEncoder(w).Encode(EvolutionChain{
				ID: 67,
				Chain: ChainLink{
					Species: NamedResource{Name: "eevee"},
					EvolvesTo: []ChainLink{
						{Species: NamedResource{Name: "vaporeon"}},
						{Species: NamedResource{Name: "jolteon"}},
					},
				},
			})
		default:
			http.Error(w, "Not Found", http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	client, err := New(server.URL, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func TestSource_ResolvesThroughAPI(t *testing.T) {
	var hits atomic.Int32
	r := evolution.NewResolver(NewSource(newChainServer(t, &hits)))
	ctx := context.Background()

	want := []string{"eevee", "vaporeon", "jolteon"}
	if diff := cmp.Diff(want, r.Resolve(ctx, "Jolteon")); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, r.Resolve(ctx, "Vaporeon")); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
	if hits.Load() != 1 {
		t.Errorf("chain fetched %d times, want 1", hits.Load())
	}
}

func TestSource_Degrades(t *testing.T) {
	var hits atomic.Int32
	src := NewSource(newChainServer(t, &hits))
	ctx := context.Background()

	if _, ok := src.SpeciesEvolutionRef(ctx, "missingno"); ok {
		t.Error("unknown species reported a chain")
	}
	if _, ok := src.SpeciesEvolutionRef(ctx, "orphan"); ok {
		t.Error("species without chain url reported a chain")
	}
	if _, ok := src.EvolutionChain(ctx, "/evolution-chain/999/"); ok {
		t.Error("missing chain reported ok")
	}

	d := evolution.NewDeduplicator(evolution.NewResolver(src))
	got := d.Deduplicate(ctx, []string{"Eevee", "Missingno", "Jolteon", "Vaporeon", "Missingno"})
	if diff := cmp.Diff([]string{"Jolteon", "Missingno"}, got); diff != "" {
		t.Errorf("Deduplicate mismatch (-want +got):\n%s", diff)
	}
}
