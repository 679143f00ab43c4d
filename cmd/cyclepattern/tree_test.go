package main

import "testing"

func TestBuildFastcatPure(t *testing.T) {
	p, err := parseTree([]byte(`{"op":"fastcat","children":[{"op":"pure","value":"bd"},{"op":"pure","value":"sn"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	evs := p.QueryArc(0, 1)
	if len(evs) != 2 || evs[0].Value != "bd" || evs[1].Value != "sn" {
		t.Fatalf("expected bd,sn, got %v", evs)
	}
}

func TestBuildEuclid(t *testing.T) {
	p, err := parseTree([]byte(`{"op":"euclid","k":3,"n":8,"child":{"op":"pure","value":"x"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	evs := p.QueryArc(0, 1)
	if len(evs) != 3 {
		t.Fatalf("expected 3 euclidean onsets, got %d", len(evs))
	}
}

func TestBuildUnknownOpErrors(t *testing.T) {
	_, err := parseTree([]byte(`{"op":"bogus"}`))
	if err == nil {
		t.Fatal("expected an error for an unknown op")
	}
}

func TestBuildFastMultipliesEventCount(t *testing.T) {
	p, err := parseTree([]byte(`{"op":"fast","factor":2,"child":{"op":"pure","value":"x"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	evs := p.QueryArc(0, 1)
	if len(evs) != 2 {
		t.Fatalf("expected fast(2) to double events, got %d", len(evs))
	}
}
