package music

import (
	"reflect"
	"testing"
)

func TestParseChordToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  ChordDescriptor
	}{
		{"bare major", "C", ChordDescriptor{RootLetter: "C", Type: ChordMajor}},
		{"minor", "Am", ChordDescriptor{RootLetter: "A", Type: ChordMinor}},
		{"major with 7th", "G7", ChordDescriptor{RootLetter: "G", Type: ChordMajor, Addition: ChordAdd7}},
		{"minor 9th", "Dm9", ChordDescriptor{RootLetter: "D", Type: ChordMinor, Addition: ChordAdd9}},
		{"slash chord", "F/A", ChordDescriptor{RootLetter: "F", Type: ChordMajor, BassLetter: "A"}},
		{"sharp root", "C#m", ChordDescriptor{RootLetter: "C#", Type: ChordMinor}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseChordToken(tt.token)
			if !ok {
				t.Fatalf("ParseChordToken(%q) failed to parse", tt.token)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseChordToken(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseChordTokenRejectsUnknownRoot(t *testing.T) {
	if _, ok := ParseChordToken("H"); ok {
		t.Error("expected H (not a note letter) to fail parsing")
	}
}

func TestSlashChordRootNotes(t *testing.T) {
	d, ok := ParseChordToken("F/A")
	if !ok {
		t.Fatal("expected F/A to parse")
	}
	if got := d.RootName(DefaultRootOctave); got != "F4" {
		t.Errorf("RootName = %q, want F4", got)
	}
}

func TestChordNotesMajorTriad(t *testing.T) {
	d, _ := ParseChordToken("C")
	got := ChordNotes(60, d)
	want := []int{60, 64, 67}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChordNotes = %v, want %v", got, want)
	}
}

func TestChordNotesMinorTriad(t *testing.T) {
	d, _ := ParseChordToken("Cm")
	got := ChordNotes(60, d)
	want := []int{60, 63, 67}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChordNotes = %v, want %v", got, want)
	}
}
