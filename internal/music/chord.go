package music

import "strings"

// ChordType mirrors the tracker's instrument-column chord type, ported
// from internal/types.ChordType in the teacher lineage but keyed by name
// instead of a fixed per-cell enum so arbitrary chord progressions such as
// "C F G" parse.
type ChordType int

const (
	ChordNone ChordType = iota
	ChordMajor
	ChordMinor
	ChordDominant
)

// ChordAddition mirrors internal/types.ChordAddition.
type ChordAddition int

const (
	ChordAddNone ChordAddition = iota
	ChordAdd7
	ChordAdd9
	ChordAdd4
)

// ChordDescriptor is the parsed form of a chord token such as "F", "Am7"
// or the slash-chord "F/A" (root "F", bass "A").
type ChordDescriptor struct {
	RootLetter string
	Type       ChordType
	Addition   ChordAddition
	BassLetter string // empty unless the token was a slash chord
}

// ParseChordToken parses a single mini-notation chord token (without the
// surrounding quotes the external parser strips) such as "C", "Fm",
// "G7", "Cm9", or the slash chord "F/A". Returns false if the root letter
// is not recognised.
func ParseChordToken(token string) (ChordDescriptor, bool) {
	main := token
	bass := ""
	if idx := strings.IndexByte(token, '/'); idx >= 0 {
		main = token[:idx]
		bass = token[idx+1:]
	}

	root, rest, ok := splitRootLetter(main)
	if !ok {
		return ChordDescriptor{}, false
	}

	d := ChordDescriptor{RootLetter: root, Type: ChordMajor}

	if strings.HasPrefix(rest, "m") {
		d.Type = ChordMinor
		rest = rest[1:]
	} else if strings.HasPrefix(rest, "d") {
		d.Type = ChordDominant
		rest = rest[1:]
	}

	switch rest {
	case "7":
		d.Addition = ChordAdd7
	case "9":
		d.Addition = ChordAdd9
	case "4":
		d.Addition = ChordAdd4
	case "":
		d.Addition = ChordAddNone
	default:
		return ChordDescriptor{}, false
	}

	if bass != "" {
		bassRoot, bassRest, ok := splitRootLetter(bass)
		if !ok || bassRest != "" {
			return ChordDescriptor{}, false
		}
		d.BassLetter = bassRoot
	}

	return d, true
}

// splitRootLetter consumes a leading note letter (with optional
// accidental) from s, returning the canonical uppercase letter and the
// remainder of the string.
func splitRootLetter(s string) (letter, rest string, ok bool) {
	if s == "" {
		return "", "", false
	}
	l := strings.ToUpper(s[:1])
	if _, known := pitchClasses[l]; !known {
		return "", "", false
	}
	i := 1
	if i < len(s) && (s[i] == '#' || s[i] == 'b' || s[i] == 'B') {
		candidate := strings.ToUpper(l + string(s[i]))
		if _, known := pitchClasses[candidate]; known {
			l = candidate
			i++
		}
	}
	return l, s[i:], true
}

// RootMidi resolves the descriptor's root letter to a MIDI note at the
// given octave.
func (d ChordDescriptor) RootMidi(octave int) int {
	pc := pitchClasses[d.RootLetter]
	return (octave+1)*12 + pc
}

// RootName resolves the descriptor's root to a display note name
// ("F4", "C#5", ...) at the given octave — this is rootNotes()'s value.
func (d ChordDescriptor) RootName(octave int) string {
	return NoteName(d.RootMidi(octave))
}

// DefaultRootOctave is the octave rootNotes() resolves against when the
// caller does not supply one, centred in the C3-C5 range spec §4.6 names.
const DefaultRootOctave = 4

// ChordNotes expands a descriptor into the full set of MIDI notes for the
// chord, rooted at rootMidi, ported from internal/types.GetChordNotes.
func ChordNotes(rootMidi int, d ChordDescriptor) []int {
	notes := []int{rootMidi}
	if d.Type == ChordNone {
		return notes
	}

	switch d.Type {
	case ChordMajor:
		notes = append(notes, rootMidi+4, rootMidi+7)
	case ChordMinor:
		notes = append(notes, rootMidi+3, rootMidi+7)
	case ChordDominant:
		notes = append(notes, rootMidi+4, rootMidi+7)
	}

	switch d.Addition {
	case ChordAdd7:
		if d.Type == ChordMinor {
			notes = append(notes, rootMidi+10)
		} else {
			notes = append(notes, rootMidi+11)
		}
	case ChordAdd9:
		notes = append(notes, rootMidi+14)
	case ChordAdd4:
		notes = append(notes, rootMidi+5)
	}

	return notes
}
