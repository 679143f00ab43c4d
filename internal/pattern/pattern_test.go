package pattern

import (
	"testing"

	"github.com/schollz/cyclepattern/internal/rational"
)

func onsets[T any](evs []Event[T]) int {
	n := 0
	for _, e := range evs {
		if e.HasOnset() {
			n++
		}
	}
	return n
}

func TestPureEmitsOnePerCycle(t *testing.T) {
	p := Pure("x")
	evs := p.QueryArc(0, 3)
	if len(evs) != 3 {
		t.Fatalf("expected 3 events over 3 cycles, got %d", len(evs))
	}
	for i, e := range evs {
		if !e.HasOnset() {
			t.Errorf("event %d: expected onset", i)
		}
	}
}

func TestPureEmptyArcYieldsNoEvents(t *testing.T) {
	p := Pure(1)
	evs := p.QueryArc(1, 1)
	if len(evs) != 0 {
		t.Errorf("expected no events for an empty query arc, got %d", len(evs))
	}
}

func TestSteadyIsContinuous(t *testing.T) {
	p := Steady(42)
	evs := p.QueryArc(0, 2)
	if len(evs) != 1 {
		t.Fatalf("expected a single continuous event, got %d", len(evs))
	}
	if evs[0].Whole != nil {
		t.Errorf("expected Whole == nil for a continuous event")
	}
}

func TestFastSlowRoundTrip(t *testing.T) {
	p := Fastcat([]Pattern[string]{Pure("a"), Pure("b")})
	sped := Fast(rational.FromInt(2), p)
	back := Slow(rational.FromInt(2), sped)
	want := p.QueryArc(0, 1)
	got := back.QueryArc(0, 1)
	if len(got) != len(want) {
		t.Fatalf("fast/slow round trip changed event count: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !want[i].Part.Begin.Eq(got[i].Part.Begin) || want[i].Value != got[i].Value {
			t.Errorf("event %d mismatch: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEarlyLateRoundTrip(t *testing.T) {
	p := Fastcat([]Pattern[string]{Pure("a"), Pure("b"), Pure("c")})
	shifted := Late(rational.New(1, 4), Early(rational.New(1, 4), p))
	want := p.QueryArc(0, 2)
	got := shifted.QueryArc(0, 2)
	if len(got) != len(want) {
		t.Fatalf("early/late round trip changed event count: got %d, want %d", len(got), len(want))
	}
}

func TestRevTwiceIsIdentity(t *testing.T) {
	p := Fastcat([]Pattern[string]{Pure("a"), Pure("b"), Pure("c")})
	twice := Rev(Rev(p))
	want := p.QueryArc(0, 1)
	got := twice.QueryArc(0, 1)
	if len(got) != len(want) {
		t.Fatalf("rev(rev(p)) changed event count: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if want[i].Value != got[i].Value || !want[i].Part.Begin.Eq(got[i].Part.Begin) {
			t.Errorf("event %d mismatch after double rev: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRevReversesOrderWithinCycle(t *testing.T) {
	p := Fastcat([]Pattern[string]{Pure("a"), Pure("b"), Pure("c")})
	evs := Rev(p).QueryArc(0, 1)
	if len(evs) != 3 {
		t.Fatalf("expected 3 events, got %d", len(evs))
	}
	order := []string{evs[0].Value, evs[1].Value, evs[2].Value}
	want := []string{"c", "b", "a"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("rev order = %v, want %v", order, want)
		}
	}
}

func TestStackWithSilenceIsIdentity(t *testing.T) {
	p := Fastcat([]Pattern[string]{Pure("a"), Pure("b")})
	stacked := Stack(p, Silence[string]())
	want := p.QueryArc(0, 1)
	got := stacked.QueryArc(0, 1)
	if len(got) != len(want) {
		t.Fatalf("stack with silence changed event count: got %d, want %d", len(got), len(want))
	}
}

func TestClippingAtArcBoundary(t *testing.T) {
	p := Pure("x")
	evs := p.QueryArc(0.5, 1.5)
	if len(evs) != 2 {
		t.Fatalf("expected 2 clipped events, got %d", len(evs))
	}
	if evs[0].HasOnset() {
		t.Errorf("first event should be a clipped continuation, not an onset")
	}
	if !evs[1].HasOnset() {
		t.Errorf("second event should have an onset")
	}
}

func TestSeqProportionalWeights(t *testing.T) {
	p := Seq([]WeightedItem[string]{
		{Pattern: Pure("a"), Weight: rational.FromInt(1)},
		{Pattern: Pure("b"), Weight: rational.FromInt(3)},
	})
	evs := p.QueryArc(0, 1)
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	if !evs[0].Part.Duration().Eq(rational.New(1, 4)) {
		t.Errorf("first event should occupy 1/4 of the cycle, got %v", evs[0].Part.Duration())
	}
	if !evs[1].Part.Duration().Eq(rational.New(3, 4)) {
		t.Errorf("second event should occupy 3/4 of the cycle, got %v", evs[1].Part.Duration())
	}
}

func TestCatPlaysOnePatternPerCycle(t *testing.T) {
	p := Cat(Pure("a"), Pure("b"))
	evs := p.QueryArc(0, 3)
	if len(evs) != 3 {
		t.Fatalf("expected 3 events, got %d", len(evs))
	}
	got := []string{evs[0].Value, evs[1].Value, evs[2].Value}
	want := []string{"a", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cat cycling = %v, want %v", got, want)
		}
	}
}

func TestArrangeStretchesWeightedElementsAcrossWholeCycles(t *testing.T) {
	p := Arrange(
		Pure("bd").WithMetadata(rational.FromInt(2), rational.FromInt(2)),
		Pure("hh").WithMetadata(rational.One, rational.One),
	)
	evs := p.QueryArc(0, 3)
	want := []string{"bd", "bd", "hh"}
	if len(evs) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(evs), evs)
	}
	for i, w := range want {
		if evs[i].Value != w {
			t.Errorf("event %d = %q, want %q", i, evs[i].Value, w)
		}
		if evs[i].Part.Begin.Float64() != float64(i) || evs[i].Part.End.Float64() != float64(i+1) {
			t.Errorf("event %d span = [%v,%v), want [%d,%d)", i, evs[i].Part.Begin, evs[i].Part.End, i, i+1)
		}
	}
}

func TestGapLeavesSilence(t *testing.T) {
	p := Seq([]WeightedItem[string]{
		{Pattern: Pure("a"), Weight: rational.One},
		{Pattern: Gap[string](1), Weight: rational.One},
	})
	evs := p.QueryArc(0, 1)
	if len(evs) != 1 {
		t.Fatalf("expected only the non-gap event, got %d", len(evs))
	}
}

func TestEuclidThreeInEight(t *testing.T) {
	p := Euclid(3, 8, Pure(true))
	evs := p.QueryArc(0, 1)
	if onsets(evs) != 3 {
		t.Fatalf("expected 3 onsets, got %d", onsets(evs))
	}
}

func TestStructFiltersFalsePulses(t *testing.T) {
	mask := Fastcat([]Pattern[bool]{Pure(true), Pure(false), Pure(true)})
	p := Struct(mask, Pure("x"))
	evs := p.QueryArc(0, 1)
	if len(evs) != 2 {
		t.Fatalf("expected 2 events (false pulse dropped), got %d", len(evs))
	}
}

func TestDegradeByIsDeterministic(t *testing.T) {
	p := DegradeBy(0.5, Fastcat(repeatPure("x", 16)))
	a := p.QueryArc(0, 1)
	b := p.QueryArc(0, 1)
	if len(a) != len(b) {
		t.Fatalf("degradeBy should be deterministic for a fixed seed: %d != %d", len(a), len(b))
	}
}

func TestPickModUsesInnerTiming(t *testing.T) {
	selector := Pure(0)
	option := Fastcat([]Pattern[string]{Pure("a"), Pure("b")})
	got := PickMod(selector, []Pattern[string]{option})
	want := option.QueryArc(0, 1)
	gotEvs := got.QueryArc(0, 1)
	if len(gotEvs) != len(want) {
		t.Fatalf("pick should preserve the option's own internal timing: got %d events, want %d", len(gotEvs), len(want))
	}
}

func repeatPure(v string, n int) []Pattern[string] {
	out := make([]Pattern[string], n)
	for i := range out {
		out[i] = Pure(v)
	}
	return out
}
