package main

import (
	"encoding/json"
	"fmt"

	"github.com/schollz/cyclepattern/internal/pattern"
	"github.com/schollz/cyclepattern/internal/rational"
)

// node is the on-disk shape of a pattern-construction tree: the JSON
// pattern-tree format the CLI's query command accepts in place of a
// mini-notation parser (spec.md's EXTERNAL INTERFACES explicitly keeps
// mini-notation out of scope).
type node struct {
	Op       string  `json:"op"`
	Value    string  `json:"value,omitempty"`
	Factor   float64 `json:"factor,omitempty"`
	K        int     `json:"k,omitempty"`
	N        int     `json:"n,omitempty"`
	Prob     float64 `json:"prob,omitempty"`
	Child    *node   `json:"child,omitempty"`
	Children []node  `json:"children,omitempty"`
}

// build turns a parsed tree node into a Pattern[string]. Unknown ops
// return an error rather than silently producing silence, so a typo in
// a bank entry surfaces immediately instead of just playing nothing.
func build(n node) (pattern.Pattern[string], error) {
	switch n.Op {
	case "pure":
		return pattern.Pure(n.Value), nil
	case "silence":
		return pattern.Silence[string](), nil
	case "fastcat", "cat", "stack":
		children := make([]pattern.Pattern[string], len(n.Children))
		for i, c := range n.Children {
			built, err := build(c)
			if err != nil {
				return pattern.Silence[string](), err
			}
			children[i] = built
		}
		switch n.Op {
		case "fastcat":
			return pattern.Fastcat(children), nil
		case "cat":
			return pattern.Cat(children...), nil
		default:
			return pattern.Stack(children...), nil
		}
	case "fast", "slow", "ply":
		if n.Child == nil {
			return pattern.Silence[string](), fmt.Errorf("%s requires a child", n.Op)
		}
		child, err := build(*n.Child)
		if err != nil {
			return pattern.Silence[string](), err
		}
		switch n.Op {
		case "fast":
			return pattern.Fast(rational.FromFloat(n.Factor), child), nil
		case "slow":
			return pattern.Slow(rational.FromFloat(n.Factor), child), nil
		default:
			return pattern.Ply(int(n.Factor), child), nil
		}
	case "rev":
		if n.Child == nil {
			return pattern.Silence[string](), fmt.Errorf("rev requires a child")
		}
		child, err := build(*n.Child)
		if err != nil {
			return pattern.Silence[string](), err
		}
		return pattern.Rev(child), nil
	case "euclid", "euclidLegato":
		if n.Child == nil {
			return pattern.Silence[string](), fmt.Errorf("%s requires a child", n.Op)
		}
		child, err := build(*n.Child)
		if err != nil {
			return pattern.Silence[string](), err
		}
		if n.Op == "euclid" {
			return pattern.Euclid(n.K, n.N, child), nil
		}
		return pattern.EuclidLegato(n.K, n.N, child), nil
	case "degradeBy":
		if n.Child == nil {
			return pattern.Silence[string](), fmt.Errorf("degradeBy requires a child")
		}
		child, err := build(*n.Child)
		if err != nil {
			return pattern.Silence[string](), err
		}
		return pattern.DegradeBy(n.Prob, child), nil
	case "palindrome":
		if n.Child == nil {
			return pattern.Silence[string](), fmt.Errorf("palindrome requires a child")
		}
		child, err := build(*n.Child)
		if err != nil {
			return pattern.Silence[string](), err
		}
		return pattern.Palindrome(child), nil
	case "brak":
		if n.Child == nil {
			return pattern.Silence[string](), fmt.Errorf("brak requires a child")
		}
		child, err := build(*n.Child)
		if err != nil {
			return pattern.Silence[string](), err
		}
		return pattern.Brak(child), nil
	default:
		return pattern.Silence[string](), fmt.Errorf("unknown op %q", n.Op)
	}
}

// parseTree parses and builds a Pattern[string] from a raw JSON document.
func parseTree(raw []byte) (pattern.Pattern[string], error) {
	var n node
	if err := json.Unmarshal(raw, &n); err != nil {
		return pattern.Silence[string](), fmt.Errorf("failed to unmarshal pattern tree: %w", err)
	}
	return build(n)
}
