package pokeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// newTestClient serves fixtures keyed by request path; anything else is a
// plain-text 404 like the real API.
func newTestClient(t *testing.T, fixtures map[string]any) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := fixtures[r.URL.Path]
		if !ok {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	client, err := New(server.URL, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatal(err)
	}
	return client, server
}

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty baseURL")
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c, err := New("https://example.test/api/v2/")
	if err != nil {
		t.Fatal(err)
	}
	if c.BaseURL() != "https://example.test/api/v2" {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}
}

func TestNew_Timeout(t *testing.T) {
	c, err := New(DefaultBaseURL)
	if err != nil {
		t.Fatal(err)
	}
	if c.httpClient.Timeout != DefaultTimeout {
		t.Errorf("default timeout = %s, want %s", c.httpClient.Timeout, DefaultTimeout)
	}

	c, err = New(DefaultBaseURL, WithTimeout(2*time.Second))
	if err != nil {
		t.Fatal(err)
	}
	if c.httpClient.Timeout != 2*time.Second {
		t.Errorf("timeout = %s, want 2s", c.httpClient.Timeout)
	}

	if _, err := New(DefaultBaseURL, WithTimeout(-time.Second)); err == nil {
		t.Error("expected error for negative timeout")
	}
}

func TestClient_SendsUserAgent(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		json.NewEncoder(w).Encode(Type{Name: "fire"})
	}))
	defer server.Close()

	client, _ := New(server.URL, WithHTTPClient(server.Client()), WithUserAgent("trainer-test/1.0"))
	if _, err := client.Types().Get(context.Background(), "fire"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "trainer-test/1.0" {
		t.Errorf("User-Agent = %q", got)
	}
}

// --- Species tests ---

func TestSpeciesScope_Get(t *testing.T) {
	client, _ := newTestClient(t, map[string]any{
		"/pokemon-species/charmander": Species{
			ID:             4,
			Name:           "charmander",
			CaptureRate:    45,
			EvolutionChain: Resource{URL: "https://pokeapi.co/api/v2/evolution-chain/2/"},
		},
	})

	sp, err := client.Species().Get(context.Background(), "Charmander")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sp.ID != 4 || sp.CaptureRate != 45 {
		t.Errorf("unexpected species: %+v", sp)
	}
	if id, ok := ResourceID(sp.EvolutionChain.URL); !ok || id != 2 {
		t.Errorf("chain id = %d, %v", id, ok)
	}
}

func TestSpeciesScope_Get_NotFound(t *testing.T) {
	client, _ := newTestClient(t, nil)

	_, err := client.Species().Get(context.Background(), "missingno")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("expected IsNotFound, got: %v", err)
	}
	if IsRateLimited(err) {
		t.Errorf("404 reported as rate limited")
	}
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, _ := New(server.URL, WithHTTPClient(server.Client()))
	_, err := client.Pokemon().Get(context.Background(), "pikachu")
	if !HasStatusCode(err, http.StatusBadGateway) {
		t.Fatalf("expected 502 APIError, got: %v", err)
	}
}

func TestClient_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client, _ := New(server.URL, WithHTTPClient(server.Client()))
	if _, err := client.Types().Get(context.Background(), "fire"); err == nil {
		t.Fatal("expected decode error")
	}
}

// --- Evolution chain tests ---

func TestEvolutionChainScope_Get(t *testing.T) {
	client, _ := newTestClient(t, map[string]any{
		"/evolution-chain/10": EvolutionChain{
			ID: 10,
			Chain: ChainLink{
				Species: NamedResource{Name: "pichu"},
				EvolvesTo: []ChainLink{{
					Species:   NamedResource{Name: "pikachu"},
					EvolvesTo: []ChainLink{{Species: NamedResource{Name: "raichu"}}},
				}},
			},
		},
	})

	chain, err := client.EvolutionChains().Get(context.Background(), 10)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if chain.Chain.EvolvesTo[0].EvolvesTo[0].Species.Name != "raichu" {
		t.Errorf("unexpected chain: %+v", chain)
	}

	// Relative refs resolve against the base URL.
	if _, err := client.EvolutionChains().GetByURL(context.Background(), "/evolution-chain/10"); err != nil {
		t.Errorf("GetByURL relative: %v", err)
	}
	if _, err := client.EvolutionChains().GetByURL(context.Background(), ""); err == nil {
		t.Error("expected error for empty url")
	}
}

// --- Pokemon tests ---

func TestPokemonScope_Get(t *testing.T) {
	mon := Pokemon{
		ID:   6,
		Name: "charizard",
		Types: []PokemonType{
			{Slot: 1, Type: NamedResource{Name: "fire"}},
			{Slot: 2, Type: NamedResource{Name: "flying"}},
		},
		Abilities: []PokemonAbility{
			{Slot: 1, Ability: NamedResource{Name: "blaze"}},
			{Slot: 3, IsHidden: true, Ability: NamedResource{Name: "solar-power"}},
		},
	}
	mon.Sprites.FrontDefault = "front.png"
	client, _ := newTestClient(t, map[string]any{"/pokemon/charizard": mon})

	got, err := client.Pokemon().Get(context.Background(), "charizard")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff([]string{"fire", "flying"}, got.TypeNames()); diff != "" {
		t.Errorf("TypeNames mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"blaze", "solar-power"}, got.AbilityNames()); diff != "" {
		t.Errorf("AbilityNames mismatch (-want +got):\n%s", diff)
	}
	if got.ArtworkURL() != "front.png" {
		t.Errorf("ArtworkURL = %q, want sprite fallback", got.ArtworkURL())
	}

	got.Sprites.Other.OfficialArtwork.FrontDefault = "art.png"
	if got.ArtworkURL() != "art.png" {
		t.Errorf("ArtworkURL = %q, want official artwork", got.ArtworkURL())
	}
}

func TestPokemonScope_List(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		json.NewEncoder(w).Encode(NamedResourceList{
			Count:   1302,
			Results: []NamedResource{{Name: "bulbasaur"}, {Name: "ivysaur"}},
		})
	}))
	defer server.Close()

	client, _ := New(server.URL, WithHTTPClient(server.Client()))
	names, err := client.Pokemon().List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if query != "limit=2" {
		t.Errorf("query = %q", query)
	}
	if diff := cmp.Diff([]string{"bulbasaur", "ivysaur"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	if _, err := client.Pokemon().List(context.Background(), 0); err == nil {
		t.Error("expected error for zero limit")
	}
}

func TestPokemonScope_Encounters(t *testing.T) {
	client, _ := newTestClient(t, map[string]any{
		"/pokemon/pikachu/encounters": []Encounter{
			{LocationArea: NamedResource{Name: "viridian-forest-area"}},
			{LocationArea: NamedResource{Name: "power-plant-area"}},
		},
	})

	got, err := client.Pokemon().Encounters(context.Background(), "pikachu")
	if err != nil {
		t.Fatalf("Encounters: %v", err)
	}
	if len(got) != 2 || got[1].LocationArea.Name != "power-plant-area" {
		t.Errorf("unexpected encounters: %+v", got)
	}
}

// --- Type and generation tests ---

func TestTypeScope_Get(t *testing.T) {
	client, _ := newTestClient(t, map[string]any{
		"/type/fire": Type{
			Name: "fire",
			DamageRelations: DamageRelations{
				DoubleDamageFrom: []NamedResource{{Name: "water"}, {Name: "ground"}, {Name: "rock"}},
			},
		},
	})

	typ, err := client.Types().Get(context.Background(), "Fire")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(typ.DamageRelations.DoubleDamageFrom) != 3 {
		t.Errorf("unexpected relations: %+v", typ.DamageRelations)
	}
}

func TestGenerationScope_Get(t *testing.T) {
	client, _ := newTestClient(t, map[string]any{
		"/generation/1": Generation{
			ID:   1,
			Name: "generation-i",
			PokemonSpecies: []NamedResource{
				{Name: "bulbasaur", URL: "https://pokeapi.co/api/v2/pokemon-species/1/"},
			},
		},
	})

	gen, err := client.Generations().Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gen.Name != "generation-i" || len(gen.PokemonSpecies) != 1 {
		t.Errorf("unexpected generation: %+v", gen)
	}
	if _, err := client.Generations().Get(context.Background(), 0); err == nil {
		t.Error("expected error for generation 0")
	}
}

func TestResourceID(t *testing.T) {
	cases := []struct {
		in string
		id int
		ok bool
	}{
		{"https://pokeapi.co/api/v2/pokemon-species/25/", 25, true},
		{"https://pokeapi.co/api/v2/pokemon-species/25", 25, true},
		{"/evolution-chain/1/", 1, true},
		{"https://pokeapi.co/api/v2/pokemon-species/", 0, false},
		{"pikachu", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		id, ok := ResourceID(tc.in)
		if id != tc.id || ok != tc.ok {
			t.Errorf("ResourceID(%q) = %d, %v; want %d, %v", tc.in, id, ok, tc.id, tc.ok)
		}
	}
}

// --- Encyclopedia tests ---

func TestEncyclopediaScopes(t *testing.T) {
	power := 90
	client, _ := newTestClient(t, map[string]any{
		"/move/thunderbolt": Move{
			Name:        "thunderbolt",
			Power:       &power,
			Type:        NamedResource{Name: "electric"},
			DamageClass: NamedResource{Name: "special"},
		},
		"/item/leftovers": Item{Name: "leftovers", Cost: 4000},
		"/ability/adaptability": Ability{
			Name:    "adaptability",
			Pokemon: []AbilityPokemon{{Pokemon: NamedResource{Name: "porygon-z"}}},
		},
	})
	ctx := context.Background()

	mv, err := client.Moves().Get(ctx, "Thunderbolt")
	if err != nil {
		t.Fatalf("Moves.Get: %v", err)
	}
	if mv.Power == nil || *mv.Power != 90 || mv.Accuracy != nil {
		t.Errorf("unexpected move: %+v", mv)
	}
	it, err := client.Items().Get(ctx, "leftovers")
	if err != nil || it.Cost != 4000 {
		t.Errorf("Items.Get = %+v, %v", it, err)
	}
	ab, err := client.Abilities().Get(ctx, "adaptability")
	if err != nil || len(ab.Pokemon) != 1 {
		t.Errorf("Abilities.Get = %+v, %v", ab, err)
	}
}
