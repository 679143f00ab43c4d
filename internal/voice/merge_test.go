package voice

import "testing"

func TestMergeRightBiasedOverride(t *testing.T) {
	a := GainData(0.5)
	b := PanData(0.2)
	merged := Merge(a, b)
	if merged.Gain == nil || *merged.Gain != 0.5 {
		t.Fatalf("expected gain retained from a, got %v", merged.Gain)
	}
	if merged.Pan == nil || *merged.Pan != 0.2 {
		t.Fatalf("expected pan from b, got %v", merged.Pan)
	}

	overridden := Merge(GainData(0.5), GainData(0.9))
	if overridden.Gain == nil || *overridden.Gain != 0.9 {
		t.Fatalf("later gain should win, got %v", overridden.Gain)
	}
}

func TestSoundIndexSticksAcrossBareSoundCalls(t *testing.T) {
	withIndex := SoundData("bd:1")
	bare := SoundData("bd")

	merged := Merge(withIndex, bare)
	if merged.Sound == nil || *merged.Sound != "bd" {
		t.Fatalf("sound should be overridden to bd, got %v", merged.Sound)
	}
	if merged.SoundIndex == nil || *merged.SoundIndex != 1 {
		t.Fatalf("sound index should stick from earlier bd:1 call, got %v", merged.SoundIndex)
	}
}

func TestFilterChainUpdatesSameKindInPlace(t *testing.T) {
	first := Data{}.WithFilter(Filter{Kind: LowPass, CutoffHz: 800})
	second := Data{}.WithFilter(Filter{Kind: LowPass, CutoffHz: 1200})

	merged := Merge(first, second)
	if len(merged.Filters) != 1 {
		t.Fatalf("expected a single low-pass filter, got %d", len(merged.Filters))
	}
	if merged.Filters[0].CutoffHz != 1200 {
		t.Errorf("expected cutoff updated to 1200, got %v", merged.Filters[0].CutoffHz)
	}
}

func TestFilterChainAddsDistinctKinds(t *testing.T) {
	lp := Data{}.WithFilter(Filter{Kind: LowPass, CutoffHz: 800})
	hp := Data{}.WithFilter(Filter{Kind: HighPass, CutoffHz: 200})

	merged := Merge(lp, hp)
	if len(merged.Filters) != 2 {
		t.Fatalf("expected two distinct filters, got %d", len(merged.Filters))
	}
}

func TestResonanceUpdatesExistingFiltersAndStickToNewOnes(t *testing.T) {
	chain := Data{}.WithFilter(Filter{Kind: LowPass, CutoffHz: 800})
	withResonance := Merge(chain, ResonanceData(0.8))

	if withResonance.Filters[0].Q == nil || *withResonance.Filters[0].Q != 0.8 {
		t.Fatalf("expected existing filter's Q updated to 0.8, got %v", withResonance.Filters[0].Q)
	}

	withNewFilter := Merge(withResonance, Data{}.WithFilter(Filter{Kind: HighPass, CutoffHz: 150}))
	if len(withNewFilter.Filters) != 2 {
		t.Fatalf("expected 2 filters, got %d", len(withNewFilter.Filters))
	}
	hp := withNewFilter.Filters[1]
	if hp.Q == nil || *hp.Q != 0.8 {
		t.Errorf("new filter should pick up the current pending resonance, got %v", hp.Q)
	}
}

func TestValueNoOpOnNonNumericArithmeticInput(t *testing.T) {
	v := Text("not-a-number")
	if _, ok := v.AsNumber(); ok {
		t.Error("expected non-numeric text to fail AsNumber")
	}
	numeric := Text("3.5")
	n, ok := numeric.AsNumber()
	if !ok || n != 3.5 {
		t.Errorf("expected numeric text to promote to 3.5, got %v,%v", n, ok)
	}
}

func TestTruthy(t *testing.T) {
	if Num(0).Truthy() {
		t.Error("0 should not be truthy")
	}
	if !Num(1).Truthy() {
		t.Error("1 should be truthy")
	}
	if Text("").Truthy() {
		t.Error("empty string should not be truthy")
	}
	if !Text("x").Truthy() {
		t.Error("non-empty string should be truthy")
	}
}
