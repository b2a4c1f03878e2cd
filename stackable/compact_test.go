package stackable_test

import (
	"atlas-sorter/catalog"
	"atlas-sorter/item"
	"atlas-sorter/stackable"
	"errors"
	"math/rand"
	"testing"
)

func maxStack() stackable.MaxStackFunc {
	return catalog.Default().MaxStack
}

func empties(n int) []item.Model {
	return make([]item.Model, n)
}

func TestScratchSize(t *testing.T) {
	cases := map[int]int{0: 9, 1: 9, 2: 18, 10: 18, 25: 36, 27: 36, 28: 36, 54: 63}
	for length, expected := range cases {
		if got := stackable.ScratchSize(length); got != expected {
			t.Errorf("ScratchSize(%d) = %d, expected %d", length, got, expected)
		}
	}
}

func TestCompactMergesStacks(t *testing.T) {
	in := append([]item.Model{
		item.NewBuilder("DIRT", 5).Build(),
		item.NewBuilder("STONE", 32).Build(),
		item.NewBuilder("STONE", 16).Build(),
	}, empties(24)...)

	out, err := stackable.Compact(in, 27, maxStack())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(out) != 27 {
		t.Fatalf("expected 27 slots, got %d", len(out))
	}
	if out[0].Type() != "DIRT" || out[0].Quantity() != 5 {
		t.Fatalf("expected 5 DIRT in slot 0, got [%s]", out[0])
	}
	if out[1].Type() != "STONE" || out[1].Quantity() != 48 {
		t.Fatalf("expected 48 STONE in slot 1, got [%s]", out[1])
	}
	for i := 2; i < 27; i++ {
		if !out[i].IsEmpty() {
			t.Fatalf("expected slot %d to be empty, got [%s]", i, out[i])
		}
	}
}

func TestCompactRespectsStackLimits(t *testing.T) {
	in := []item.Model{
		item.NewBuilder("ENDER_PEARL", 10).Build(),
		item.NewBuilder("ENDER_PEARL", 10).Build(),
		item.NewBuilder("STONE", 60).Build(),
		item.NewBuilder("STONE", 60).Build(),
		item.Empty(),
	}
	out, err := stackable.Compact(in, 5, maxStack())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := []uint32{16, 4, 64, 56, 0}
	for i, q := range expected {
		if out[i].Quantity() != q {
			t.Fatalf("slot %d: expected quantity %d, got [%s]", i, q, out[i])
		}
	}
}

func TestCompactDoesNotMergeDistinctVariants(t *testing.T) {
	in := []item.Model{
		item.NewBuilder("IRON_PICKAXE", 1).SetDamage(3).Build(),
		item.NewBuilder("STONE", 10).SetDisplayName("Rock").Build(),
		item.NewBuilder("STONE", 10).Build(),
	}
	out, err := stackable.Compact(in, 3, maxStack())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i := range in {
		if !out[i].Equals(in[i]) {
			t.Fatalf("slot %d: expected [%s], got [%s]", i, in[i], out[i])
		}
	}
}

func TestCompactStopsAtFirstEmpty(t *testing.T) {
	in := []item.Model{
		item.NewBuilder("STONE", 1).Build(),
		item.Empty(),
		item.NewBuilder("DIRT", 1).Build(),
	}
	_, err := stackable.Compact(in, 3, maxStack())
	if !errors.Is(err, stackable.ErrQuantityMismatch) {
		t.Fatalf("entries after a gap must not vanish silently, got %v", err)
	}
}

func TestCompactOverflow(t *testing.T) {
	in := []item.Model{
		item.NewBuilder("DIAMOND_SWORD", 3).Build(),
	}
	_, err := stackable.Compact(in, 2, maxStack())
	if !errors.Is(err, stackable.ErrScratchOverflow) {
		t.Fatalf("expected ErrScratchOverflow, got %v", err)
	}
}

func TestVerifyConservation(t *testing.T) {
	before := []item.Model{item.NewBuilder("STONE", 10).Build()}
	after := []item.Model{item.NewBuilder("STONE", 9).Build()}
	if err := stackable.VerifyConservation(before, after); !errors.Is(err, stackable.ErrQuantityMismatch) {
		t.Fatalf("expected ErrQuantityMismatch, got %v", err)
	}
	after = []item.Model{item.NewBuilder("STONE", 4).Build(), item.Empty(), item.NewBuilder("STONE", 6).Build()}
	if err := stackable.VerifyConservation(before, after); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	before = []item.Model{item.NewBuilder("STONE", 4).Build(), item.Empty(), item.NewBuilder("DIRT", 2).Build()}
	after = []item.Model{item.NewBuilder("STONE", 4).Build(), item.Empty(), item.Empty()}
	if err := stackable.VerifyConservation(before, after); !errors.Is(err, stackable.ErrQuantityMismatch) {
		t.Fatalf("entries after an empty slot should be counted, got %v", err)
	}
}

// randomStorage fills length slots the way a real container could hold them:
// one stack per slot, never above the stack limit.
func randomStorage(r *rand.Rand, length int, limit stackable.MaxStackFunc) []item.Model {
	types := []string{"STONE", "DIRT", "ENDER_PEARL", "DIAMOND_SWORD", "OAK_LOG"}
	out := make([]item.Model, length)
	for i := range out {
		if r.Intn(3) == 0 {
			continue
		}
		tp := types[r.Intn(len(types))]
		b := item.NewBuilder(tp, uint32(r.Intn(int(limit(tp)))+1))
		if r.Intn(4) == 0 {
			b.SetDisplayName("Named")
		}
		if r.Intn(4) == 0 {
			b.SetDamage(int32(r.Intn(2)))
		}
		out[i] = b.Build()
	}
	return out
}

func totals(entries []item.Model) map[item.Model]uint32 {
	t := make(map[item.Model]uint32)
	for _, e := range entries {
		if !e.IsEmpty() {
			t[e.Variant()] += e.Quantity()
		}
	}
	return t
}

func TestCompactProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	limit := maxStack()
	for run := 0; run < 500; run++ {
		length := r.Intn(54) + 1
		in := randomStorage(r, length, limit)
		sorted := append([]item.Model(nil), in...)
		item.Sort(sorted)

		out, err := stackable.Compact(sorted, length, limit)
		if err != nil {
			t.Fatalf("run %d: Unexpected error: %v", run, err)
		}
		if len(out) != length {
			t.Fatalf("run %d: expected %d slots, got %d", run, length, len(out))
		}

		before, after := totals(in), totals(out)
		if len(before) != len(after) {
			t.Fatalf("run %d: variant count changed %d -> %d", run, len(before), len(after))
		}
		for v, q := range before {
			if after[v] != q {
				t.Fatalf("run %d: variant [%s] went from %d to %d", run, v, q, after[v])
			}
		}

		seenEmpty := false
		for i, e := range out {
			if e.IsEmpty() {
				seenEmpty = true
				continue
			}
			if seenEmpty {
				t.Fatalf("run %d: item [%s] at slot %d follows an empty slot", run, e, i)
			}
			if e.Quantity() > limit(e.Type()) {
				t.Fatalf("run %d: slot %d holds [%s] above its limit", run, i, e)
			}
		}

		again := append([]item.Model(nil), out...)
		item.Sort(again)
		again, err = stackable.Compact(again, length, limit)
		if err != nil {
			t.Fatalf("run %d: Unexpected error: %v", run, err)
		}
		for i := range out {
			if !out[i].Equals(again[i]) {
				t.Fatalf("run %d: not idempotent at slot %d: [%s] vs [%s]", run, i, out[i], again[i])
			}
		}
	}
}
