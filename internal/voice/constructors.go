package voice

import "strconv"

// SoundData builds a Data whose sound (and, for "name:N" tokens, sound
// index) is set — the constructor the mini-notation compiler calls for
// sound() (spec §4.6: "soundIndex from bd:1 is parsed at sound() time").
func SoundData(token string) Data {
	name := token
	var idx *int
	for i := len(token) - 1; i >= 0; i-- {
		if token[i] == ':' {
			if n, err := strconv.Atoi(token[i+1:]); err == nil {
				name = token[:i]
				idx = &n
			}
			break
		}
	}
	return Data{Sound: &name, SoundIndex: idx}
}

// NoteData sets the note field to a literal string value.
func NoteData(note string) Data {
	return Data{Note: &note}
}

// ValueData sets the generic value field.
func ValueData(v Value) Data {
	return Data{Value: &v}
}

// GainData, PanData, SpeedData set their eponymous scalar fields; the
// other scalar constructors below (cutoff, resonance, orbit) share this
// shape, each its own one-line constructor rather than a single stringly-keyed
// setter, mirroring the teacher's one-function-per-field convention in
// internal/modulation.
func GainData(v float64) Data  { return Data{Gain: floatPtr(v)} }
func PanData(v float64) Data   { return Data{Pan: floatPtr(v)} }
func SpeedData(v float64) Data { return Data{Speed: floatPtr(v)} }

func CutoffData(v float64) Data { return Data{Cutoff: floatPtr(v)} }

// ResonanceData builds a standalone resonance() payload: merging it onto
// an accumulated chain applies Data.WithResonance's filter-update rule.
func ResonanceData(v float64) Data { return Data{}.WithResonance(v) }

// OrbitData sets the orbit (effect bus) field.
func OrbitData(n int) Data { return Data{Orbit: &n} }
