package arbor

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/arbor/order"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func collectVisit[T any](tree *Tree[T]) []T {
	var out []T
	tree.Visit(func(payload T) {
		out = append(out, payload)
	})
	return out
}

func TestNewSingleNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := New("root")
	if tree.Len() != 1 || tree.Height() != 1 {
		t.Errorf("expected single node, have len=%d height=%d", tree.Len(), tree.Height())
	}
	root := tree.Root()
	if !root.IsLeaf() {
		t.Errorf("expected new root to have no children")
	}
	if root.Payload() != "root" {
		t.Errorf("expected payload 'root', is %q", root.Payload())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestInsertWorkedExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := New("root")
	tree.Insert("one")
	tree.Insert("two")
	tree.Insert("four")
	got := collectVisit(tree)
	want := []string{"four", "one", "root", "two"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("in-order mismatch (-want +got):\n%s", diff)
	}
	// "one" < "root" goes left, "two" goes right, "four" < "one" goes left of "one"
	root := tree.Root()
	if root.Left().Payload() != "one" || root.Right().Payload() != "two" {
		t.Errorf("unexpected children of root: %v / %v", root.Left(), root.Right())
	}
	if root.Left().Left().Payload() != "four" {
		t.Errorf("expected 'four' as left child of 'one', is %v", root.Left().Left())
	}
	if tree.Height() != 3 {
		t.Errorf("expected height 3, is %d", tree.Height())
	}
}

func TestInsertTiesGoRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := New("root")
	for _, s := range []string{"one", "two", "four", "root"} {
		tree.Insert(s)
	}
	got := collectVisit(tree)
	want := []string{"four", "one", "root", "root", "two"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("in-order mismatch (-want +got):\n%s", diff)
	}
	// second "root" is the left child of "two", i.e. in the right subtree of the root
	dup := tree.Root().Right().Left()
	if dup == nil || dup.Payload() != "root" {
		t.Errorf("expected duplicate to be routed right, found %v", dup)
	}
}

type tagged struct {
	key int
	seq int
}

func TestEqualPayloadsKeepInsertionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	byKey := func(a, b tagged) int { return a.key - b.key }
	keys := []int{5, 3, 5, 8, 3, 5, 1, 8, 5}
	tree := NewFunc(tagged{key: keys[0], seq: 0}, byKey)
	for i, k := range keys[1:] {
		tree.Insert(tagged{key: k, seq: i + 1})
	}
	got := collectVisit(tree)
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if prev.key > cur.key {
			t.Fatalf("order violated at %d: %v before %v", i, prev, cur)
		}
		if prev.key == cur.key && prev.seq > cur.seq {
			t.Fatalf("equal keys out of insertion order at %d: %v before %v", i, prev, cur)
		}
	}
}

func TestInsertIntoEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := Empty(order.Natural[int]())
	if !tree.IsEmpty() || tree.Height() != 0 {
		t.Fatalf("expected empty tree")
	}
	tree.Visit(func(int) { t.Errorf("empty tree must not visit anything") })
	tree.Insert(7)
	tree.InsertIterative(3)
	if diff := cmp.Diff([]int{3, 7}, collectVisit(tree)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertWithoutComparisonPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for tree without comparison")
		}
	}()
	tree := &Tree[string]{}
	tree.Insert("x")
}

func TestZeroTreeIsEmpty(t *testing.T) {
	var tree *Tree[string]
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 || tree.Root() != nil {
		t.Errorf("nil tree should behave as empty")
	}
	tree.Visit(func(string) { t.Errorf("nil tree must not visit anything") })
	if _, ok := tree.Take(); ok {
		t.Errorf("nil tree must not hand out a payload")
	}
}

func TestReverseOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := NewFunc("b", order.Reverse(order.Natural[string]()))
	tree.Insert("a")
	tree.Insert("c")
	if diff := cmp.Diff([]string{"c", "b", "a"}, collectVisit(tree)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestIterativeVariantsMatchRecursive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	words := strings.Fields("the quick brown fox jumps over the lazy dog and the cat")
	rec := New(words[0])
	itr := New(words[0])
	for _, w := range words[1:] {
		rec.Insert(w)
		itr.InsertIterative(w)
	}
	if rec.String() != itr.String() {
		t.Errorf("recursive and iterative insert differ: %s vs %s", rec, itr)
	}
	if rec.Height() != itr.Height() {
		t.Errorf("recursive and iterative insert build different shapes")
	}
	var walked []string
	rec.Walk(func(s string) bool {
		walked = append(walked, s)
		return true
	})
	if diff := cmp.Diff(collectVisit(rec), walked); diff != "" {
		t.Errorf("Walk differs from Visit (-visit +walk):\n%s", diff)
	}
	if diff := cmp.Diff(walked, slices.Collect(rec.All())); diff != "" {
		t.Errorf("All differs from Walk (-walk +all):\n%s", diff)
	}
	want := slices.Clone(words)
	slices.Sort(want)
	if diff := cmp.Diff(want, walked); diff != "" {
		t.Errorf("traversal not sorted (-want +got):\n%s", diff)
	}
}

func TestWalkStopsEarly(t *testing.T) {
	tree := New(50)
	for _, n := range []int{20, 80, 10, 30, 70, 90} {
		tree.Insert(n)
	}
	var seen []int
	tree.Walk(func(n int) bool {
		seen = append(seen, n)
		return n < 50
	})
	if diff := cmp.Diff([]int{10, 20, 30, 50}, seen); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	seen = seen[:0]
	for n := range tree.All() {
		if n > 70 {
			break
		}
		seen = append(seen, n)
	}
	if diff := cmp.Diff([]int{10, 20, 30, 50, 70}, seen); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDegeneratedTreeIterative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	const n = 20000
	tree := New(0)
	for i := 1; i < n; i++ {
		tree.InsertIterative(i)
	}
	if tree.Height() != n {
		t.Fatalf("expected list-like tree of height %d, is %d", n, tree.Height())
	}
	next := 0
	tree.Walk(func(i int) bool {
		if i != next {
			t.Fatalf("expected %d, got %d", next, i)
		}
		next++
		return true
	})
	if next != n {
		t.Errorf("walked %d payloads, expected %d", next, n)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestTakeDismantles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := New("root")
	tree.Insert("one")
	tree.Insert("two")
	left := tree.Root().Left()
	payload, ok := tree.Take()
	if !ok || payload != "root" {
		t.Fatalf("expected to take 'root', got %q/%v", payload, ok)
	}
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Errorf("expected tree to be empty after Take")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	if _, ok := tree.Take(); ok {
		t.Errorf("second Take should find an empty tree")
	}
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic when reading a dismantled node")
			}
		}()
		_ = left.Payload()
	}()
	// the tree keeps its comparison and may be re-used
	tree.Insert("fresh")
	if tree.String() != "[fresh]" {
		t.Errorf("expected re-used tree to hold 'fresh', is %s", tree)
	}
}

func TestDrain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := New(3)
	for _, n := range []int{1, 4, 1, 5, 9, 2, 6} {
		tree.Insert(n)
	}
	root := tree.Root()
	got := tree.Drain()
	if diff := cmp.Diff([]int{1, 1, 2, 3, 4, 5, 6, 9}, got); diff != "" {
		t.Errorf("drain mismatch (-want +got):\n%s", diff)
	}
	if !tree.IsEmpty() {
		t.Errorf("expected tree to be empty after Drain")
	}
	if root.String() != "<dismantled>" {
		t.Errorf("expected old root to be dismantled, is %s", root)
	}
	if got := tree.Drain(); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil drain result, got %#v", got)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := New(10)
	tree.Insert(5)
	tree.Insert(15)
	tree.Insert(7)
	if err := tree.Check(); err != nil {
		t.Fatalf("expected valid tree, got %v", err)
	}
	// 7 is in the left subtree of 10; 12 must not go there
	tree.root.left.right.payload = 12
	if err := tree.Check(); !errors.Is(err, ErrOrderViolated) {
		t.Errorf("expected order violation, got %v", err)
	}
	tree.root.left.right.payload = 7
	// a tie in the left subtree violates ties-go-right
	tree.root.left.right.payload = 10
	if err := tree.Check(); !errors.Is(err, ErrOrderViolated) {
		t.Errorf("expected order violation for tie on the left, got %v", err)
	}
	tree.root.left.right.payload = 7
	tree.root.right.right = tree.root.left
	if err := tree.Check(); !errors.Is(err, ErrCycle) && !errors.Is(err, ErrOrderViolated) {
		t.Errorf("expected shared node to be detected, got %v", err)
	}
	tree.root.right.right = nil
	tree.size = 17
	if err := tree.Check(); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected size mismatch, got %v", err)
	}
}

func TestCheckDetectsSharedNode(t *testing.T) {
	tree := New(10)
	tree.Insert(20)
	tree.Insert(15)
	// link the root below 15, a position where its order is fine
	tree.root.right.left.left = tree.root
	if err := tree.Check(); !errors.Is(err, ErrCycle) {
		t.Errorf("expected ErrCycle, got %v", err)
	}
}

func TestCheckDetectsDismantledNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	old := New(1)
	old.Insert(2)
	stale := old.Root().Right()
	old.Drain()
	tree := New(10)
	tree.root.left = stale // payload has been cleared to 0, which fits left of 10
	tree.size = 2
	if err := tree.Check(); !errors.Is(err, ErrDismantled) {
		t.Errorf("expected ErrDismantled, got %v", err)
	}
}
