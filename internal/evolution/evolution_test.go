package evolution

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

// fakeSource serves synthetic chains and counts lookups.
type fakeSource struct {
	mu         sync.Mutex
	refs       map[string]string
	chains     map[string]*Node
	refCalls   map[string]int
	chainCalls map[string]int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		refs:       make(map[string]string),
		chains:     make(map[string]*Node),
		refCalls:   make(map[string]int),
		chainCalls: make(map[string]int),
	}
}

// add registers root under ref and points every species in it at ref.
func (f *fakeSource) add(ref string, root *Node) {
	f.chains[ref] = root
	for _, name := range root.Walk() {
		f.refs[name] = ref
	}
}

func (f *fakeSource) SpeciesEvolutionRef(_ context.Context, name string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refCalls[name]++
	ref, ok := f.refs[name]
	return ref, ok
}

func (f *fakeSource) EvolutionChain(_ context.Context, ref string) (*Node, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chainCalls[ref]++
	root, ok := f.chains[ref]
	return root, ok
}

func (f *fakeSource) totalRefCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.refCalls {
		n += c
	}
	return n
}

// linear builds a non-branching chain names[0] -> names[1] -> ...
func linear(names ...string) *Node {
	root := &Node{Name: names[0]}
	cur := root
	for _, n := range names[1:] {
		next := &Node{Name: n}
		cur.Children = []*Node{next}
		cur = next
	}
	return root
}

func testSource() *fakeSource {
	src := newFakeSource()
	src.add("chain/1", linear("Charmander", "Charmeleon", "Charizard"))
	src.add("chain/2", linear("Pichu", "Pikachu", "Raichu"))
	src.add("chain/3", linear("Munchlax", "Snorlax"))
	src.add("chain/4", linear("A", "B", "C"))
	src.add("chain/5", &Node{Name: "X", Children: []*Node{{Name: "Y"}, {Name: "Z"}}})
	return src
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Pikachu", "pikachu"},
		{"  CHARIZARD ", "charizard"},
		{"Raichu-Alola", "raichu"},
		{"chien-pao", "chien"},
		{"Flutter Mane", "flutter mane"},
		{"", ""},
		{"-", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNode_Walk_PreOrder(t *testing.T) {
	root := &Node{Name: "Eevee", Children: []*Node{
		{Name: "Vaporeon"},
		{Name: "Jolteon", Children: []*Node{{Name: "Synthetic"}}},
		{Name: "Flareon"},
	}}
	want := []string{"eevee", "vaporeon", "jolteon", "synthetic", "flareon"}
	if diff := cmp.Diff(want, root.Walk()); diff != "" {
		t.Errorf("Walk mismatch (-want +got):\n%s", diff)
	}
	var empty *Node
	if got := empty.Walk(); got != nil {
		t.Errorf("nil Walk = %v, want nil", got)
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(testSource())
	ctx := context.Background()

	cases := []struct {
		name string
		want []string
	}{
		{"Charmeleon", []string{"charmander", "charmeleon", "charizard"}},
		{" raichu-alola", []string{"pichu", "pikachu", "raichu"}},
		{"Y", []string{"x", "y", "z"}},
		{"Lapras", []string{"lapras"}},
		{"", []string{""}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, r.Resolve(ctx, tc.name)); diff != "" {
			t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestResolver_Memoizes(t *testing.T) {
	src := testSource()
	r := NewResolver(src)
	ctx := context.Background()

	r.Resolve(ctx, "Charmander")
	r.Resolve(ctx, "charmander")
	r.Resolve(ctx, "CHARMANDER-mega")
	if got := src.refCalls["charmander"]; got != 1 {
		t.Errorf("species lookups for charmander = %d, want 1", got)
	}

	r.Resolve(ctx, "Charizard")
	if got := src.refCalls["charizard"]; got != 1 {
		t.Errorf("species lookups for charizard = %d, want 1", got)
	}
	if got := src.chainCalls["chain/1"]; got != 1 {
		t.Errorf("chain lookups = %d, want 1 (shared by the family)", got)
	}

	r.Resolve(ctx, "Missingno")
	r.Resolve(ctx, "Missingno")
	if got := src.refCalls["missingno"]; got != 1 {
		t.Errorf("species lookups for unknown name = %d, want 1", got)
	}
}

// ctxSource fails every lookup once the caller's context is done, like the
// HTTP-backed source does.
type ctxSource struct{ *fakeSource }

func (c ctxSource) SpeciesEvolutionRef(ctx context.Context, name string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	return c.fakeSource.SpeciesEvolutionRef(ctx, name)
}

func (c ctxSource) EvolutionChain(ctx context.Context, ref string) (*Node, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	return c.fakeSource.EvolutionChain(ctx, ref)
}

func TestResolver_CanceledLookupNotCached(t *testing.T) {
	r := NewResolver(ctxSource{testSource()})
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	if diff := cmp.Diff([]string{"charmander"}, r.Resolve(canceled, "Charmander")); diff != "" {
		t.Errorf("Resolve under canceled ctx mismatch (-want +got):\n%s", diff)
	}

	ctx := context.Background()
	want := []string{"charmander", "charmeleon", "charizard"}
	if diff := cmp.Diff(want, r.Resolve(ctx, "Charmander")); diff != "" {
		t.Errorf("Resolve after canceled call mismatch (-want +got):\n%s", diff)
	}
	got := NewDeduplicator(r).Deduplicate(ctx, []string{"Charmander", "Charizard"})
	if diff := cmp.Diff([]string{"Charizard"}, got); diff != "" {
		t.Errorf("Deduplicate after canceled call mismatch (-want +got):\n%s", diff)
	}
}

func TestResolver_DeadlineExceededNotCached(t *testing.T) {
	src := ctxSource{testSource()}
	r := NewResolver(src)
	expired, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-expired.Done()

	r.Prefetch(expired, []string{"Pichu"}, 1)
	r.Resolve(expired, "Pichu")

	want := []string{"pichu", "pikachu", "raichu"}
	if diff := cmp.Diff(want, r.Resolve(context.Background(), "Pichu")); diff != "" {
		t.Errorf("Resolve after expired call mismatch (-want +got):\n%s", diff)
	}
}

func TestResolver_ChainLookupFails(t *testing.T) {
	src := newFakeSource()
	src.refs["ghost"] = "chain/404"
	r := NewResolver(src)

	if diff := cmp.Diff([]string{"ghost"}, r.Resolve(context.Background(), "Ghost")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolver_NilSource(t *testing.T) {
	r := NewResolver(nil)
	if diff := cmp.Diff([]string{"pikachu"}, r.Resolve(context.Background(), "Pikachu")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolver_ReturnsCopy(t *testing.T) {
	r := NewResolver(testSource())
	ctx := context.Background()
	line := r.Resolve(ctx, "Pikachu")
	line[0] = "tampered"
	if got := r.Resolve(ctx, "Pikachu")[0]; got != "pichu" {
		t.Errorf("cached line was modified through a returned slice: %q", got)
	}
}

func TestResolver_WithCache(t *testing.T) {
	cache := NewMemCache()
	r := NewResolver(testSource(), WithCache(cache))
	r.Resolve(context.Background(), "Snorlax")
	r.Resolve(context.Background(), "Munchlax")
	if cache.Len() != 2 {
		t.Errorf("cache entries = %d, want 2", cache.Len())
	}
}

func TestResolver_Prefetch(t *testing.T) {
	defer goleak.VerifyNone(t)
	src := testSource()
	r := NewResolver(src)
	names := []string{"Charmander", "Pikachu", "Snorlax", "A", "Y", "Unknown"}

	r.Prefetch(context.Background(), names, 3)
	before := src.totalRefCalls()
	if before < len(names) {
		t.Fatalf("prefetch made %d species lookups, want at least %d", before, len(names))
	}

	for _, n := range names {
		r.Resolve(context.Background(), n)
	}
	if after := src.totalRefCalls(); after != before {
		t.Errorf("Resolve after Prefetch made %d extra lookups", after-before)
	}
}

func TestResolver_Prefetch_CanceledContext(t *testing.T) {
	defer goleak.VerifyNone(t)
	src := testSource()
	r := NewResolver(src)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r.Prefetch(ctx, []string{"Charmander", "Pikachu"}, 0)
	if got := src.totalRefCalls(); got != 0 {
		t.Errorf("lookups after cancellation = %d, want 0", got)
	}
}
