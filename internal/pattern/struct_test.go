package pattern

import (
	"testing"

	"github.com/schollz/cyclepattern/internal/rational"
)

func TestMaskPreservesInnerTiming(t *testing.T) {
	p := Fastcat([]Pattern[string]{Pure("a"), Pure("b"), Pure("c"), Pure("d")})
	mask := Fastcat([]Pattern[bool]{Pure(true), Pure(false)})
	masked := Mask(mask, p)
	evs := masked.QueryArc(0, 1)
	if len(evs) != 2 {
		t.Fatalf("expected 2 events surviving the true half, got %d", len(evs))
	}
	if evs[0].Value != "a" || evs[1].Value != "b" {
		t.Errorf("expected a,b from the first (true) half, got %v,%v", evs[0].Value, evs[1].Value)
	}
}

func TestStructWithFullCyclePulseEmitsAllInnerEventsSharingOneWhole(t *testing.T) {
	p := Fastcat([]Pattern[string]{Pure("a"), Pure("b"), Pure("c")})
	mask := Pure(true)
	evs := Struct(mask, p).QueryArc(0, 1)
	if len(evs) != 3 {
		t.Fatalf("expected all 3 inner events to survive the single full-cycle pulse, got %d: %v", len(evs), evs)
	}
	for i, e := range evs {
		if e.Whole == nil || !e.Whole.Begin.Eq(rational.Zero) || !e.Whole.End.Eq(rational.One) {
			t.Errorf("event %d whole = %v, want the pulse's own [0,1)", i, e.Whole)
		}
	}
	if !evs[0].HasOnset() {
		t.Errorf("expected the first event to carry the pulse's onset")
	}
	if evs[1].HasOnset() || evs[2].HasOnset() {
		t.Errorf("expected only the first event to carry hasOnset, got %v", evs)
	}
}

func TestEuclidLegatoHasNoGaps(t *testing.T) {
	p := EuclidLegato(3, 8, Pure("x"))
	evs := p.QueryArc(0, 1)
	for i := 1; i < len(evs); i++ {
		if !evs[i-1].Part.End.Eq(evs[i].Part.Begin) {
			t.Errorf("expected legato events to be contiguous, gap between %v and %v", evs[i-1].Part, evs[i].Part)
		}
	}
}

func TestEveryAppliesOnMatchingCyclesOnly(t *testing.T) {
	p := Pure("x")
	f := func(pp Pattern[string]) Pattern[string] { return Fmap(pp, func(string) string { return "y" }) }
	every2 := Every(2, f, p)
	evs := every2.QueryArc(0, 4)
	got := make([]string, len(evs))
	for i, e := range evs {
		got[i] = e.Value
	}
	want := []string{"y", "x", "y", "x"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("every(2) = %v, want %v", got, want)
		}
	}
}

func TestChunkAppliesToOneSliceAtATime(t *testing.T) {
	p := Fastcat([]Pattern[string]{Pure("a"), Pure("b")})
	upper := func(pp Pattern[string]) Pattern[string] { return Fmap(pp, func(string) string { return "X" }) }
	chunked := ChunkInto(2, upper, p)
	c0 := chunked.QueryArc(0, 1)
	c1 := chunked.QueryArc(1, 2)
	if c0[0].Value != "X" || c0[1].Value != "b" {
		t.Errorf("cycle 0 should transform only the first slice, got %v,%v", c0[0].Value, c0[1].Value)
	}
	if c1[0].Value != "a" || c1[1].Value != "X" {
		t.Errorf("cycle 1 should transform only the second slice, got %v,%v", c1[0].Value, c1[1].Value)
	}
}

func TestBiteSqueezesSelectedSlice(t *testing.T) {
	p := Fastcat([]Pattern[string]{Pure("a"), Pure("b"), Pure("c"), Pure("d")})
	idx := Fastcat([]Pattern[int]{Pure(2), Pure(0)})
	bitten := Bite(4, idx, p)
	evs := bitten.QueryArc(0, 1)
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	if evs[0].Value != "c" || evs[1].Value != "a" {
		t.Errorf("expected slices c,a selected by index 2,0, got %v,%v", evs[0].Value, evs[1].Value)
	}
}

func TestPalindromeAlternatesDirection(t *testing.T) {
	p := Fastcat([]Pattern[string]{Pure("a"), Pure("b"), Pure("c")})
	pal := Palindrome(p)
	forward := pal.QueryArc(0, 1)
	backward := pal.QueryArc(1, 2)
	if forward[0].Value != "a" || forward[2].Value != "c" {
		t.Errorf("expected cycle 0 forwards, got %v", forward)
	}
	if backward[0].Value != "c" || backward[2].Value != "a" {
		t.Errorf("expected cycle 1 reversed, got %v", backward)
	}
}

func TestPalindromeOnMultiCycleSourceReversesTheCycleThatFallsThere(t *testing.T) {
	ab := Fastcat([]Pattern[string]{Pure("a"), Pure("b")})
	cd := Fastcat([]Pattern[string]{Pure("c"), Pure("d")})
	p := Slowcat(ab, cd)
	pal := Palindrome(p)

	cycle1 := pal.QueryArc(1, 2)
	if cycle1[0].Value != "d" || cycle1[1].Value != "c" {
		t.Fatalf("expected cycle 1 to reverse the source's own cycle 1 ([d c]), got %v", cycle1)
	}
}
