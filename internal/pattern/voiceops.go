package pattern

import (
	"github.com/schollz/cyclepattern/internal/music"
	"github.com/schollz/cyclepattern/internal/rational"
	"github.com/schollz/cyclepattern/internal/voice"
)

// Hurry speeds p up by k (like Fast) and additionally multiplies its
// speed field by k, so sample playback rate tracks the tempo change
// rather than just the event grid (spec §4.7 VoiceData.speed).
func Hurry(k rational.Rational, p Pattern[voice.Data]) Pattern[voice.Data] {
	sped := Fast(k, p)
	kf := k.Float64()
	return Fmap(sped, func(d voice.Data) voice.Data {
		base := kf
		if d.Speed != nil {
			base = *d.Speed * kf
		}
		d.Speed = &base
		return d
	})
}

// ScaleOp tags every event of p with the named scale and root, read back
// by ScaleTranspose.
func ScaleOp(name string, root int, p Pattern[voice.Data]) Pattern[voice.Data] {
	return Fmap(p, func(d voice.Data) voice.Data {
		d.Scale = &voice.ScaleTag{Name: name, Root: root}
		return d
	})
}

// ScaleTranspose moves each event's note by steps scale degrees within
// the active ScaleTag (falling back to chromatic semitones if no scale
// is tagged); events with no note field pass through unchanged.
func ScaleTranspose(steps int, p Pattern[voice.Data]) Pattern[voice.Data] {
	return Fmap(p, func(d voice.Data) voice.Data {
		if d.Note == nil {
			return d
		}
		midi, ok := music.ParseNoteName(*d.Note)
		if !ok {
			return d
		}
		var transposed int
		if d.Scale != nil {
			transposed = music.ScaleDegreeTranspose(midi, steps, d.Scale.Name, d.Scale.Root)
		} else {
			transposed = music.ChromaticTranspose(midi, steps)
		}
		name := music.NoteName(transposed)
		d.Note = &name
		return d
	})
}

// Chord tags every event of p with a parsed chord descriptor and root
// octave, read back by RootNotes; an unparseable token leaves p
// untouched.
func Chord(token string, octave int, p Pattern[voice.Data]) Pattern[voice.Data] {
	desc, ok := music.ParseChordToken(token)
	if !ok {
		return p
	}
	return Fmap(p, func(d voice.Data) voice.Data {
		d.Chord = &voice.ChordTag{Descriptor: desc, Octave: octave}
		return d
	})
}

// RootNotes replaces each chord-tagged event's note with that chord's
// root note, for deriving a bassline from a chord progression. Events
// without a Chord tag pass through unchanged.
func RootNotes(p Pattern[voice.Data]) Pattern[voice.Data] {
	return Fmap(p, func(d voice.Data) voice.Data {
		if d.Chord == nil {
			return d
		}
		desc, ok := d.Chord.Descriptor.(music.ChordDescriptor)
		if !ok {
			return d
		}
		name := desc.RootName(d.Chord.Octave)
		d.Note = &name
		return d
	})
}

// ChordNotes expands every chord-tagged event into one stacked event per
// chord tone, so the chord actually sounds rather than just being
// tagged metadata.
func ChordNotes(p Pattern[voice.Data]) Pattern[voice.Data] {
	out := New(func(st QueryState) []Event[voice.Data] {
		var result []Event[voice.Data]
		for _, e := range p.Query(st) {
			if e.Value.Chord == nil {
				result = append(result, e)
				continue
			}
			desc, ok := e.Value.Chord.Descriptor.(music.ChordDescriptor)
			if !ok {
				result = append(result, e)
				continue
			}
			rootMidi := desc.RootMidi(e.Value.Chord.Octave)
			for _, n := range music.ChordNotes(rootMidi, desc) {
				d := e.Value
				name := music.NoteName(n)
				d.Note = &name
				result = append(result, Event[voice.Data]{Whole: e.Whole, Part: e.Part, Value: d})
			}
		}
		return result
	})
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}
