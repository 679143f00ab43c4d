package voice

// Merge combines two VoiceData payloads that share an event part. It is
// right-biased per field: b's field wins when set, otherwise a's value is
// retained (spec §4.6/§9 — "one merge operator, used everywhere"). The
// filter chain and resonance tracking get the special treatment spec §4.6
// calls out; every other field follows the same explicit copy so the
// rule is easy to audit field-by-field, mirroring how the teacher's
// storage.go spells out every field of SaveData explicitly rather than
// reaching for reflection.
func Merge(a, b Data) Data {
	out := Data{
		Sound:      pickStr(a.Sound, b.Sound),
		SoundIndex: pickInt(a.SoundIndex, b.SoundIndex),
		Note:       pickStr(a.Note, b.Note),
		Value:      pickValue(a.Value, b.Value),

		Gain:  pickF(a.Gain, b.Gain),
		Pan:   pickF(a.Pan, b.Pan),
		Speed: pickF(a.Speed, b.Speed),

		Cutoff:     pickF(a.Cutoff, b.Cutoff),
		Resonance:  pickF(a.Resonance, b.Resonance),
		Hcutoff:    pickF(a.Hcutoff, b.Hcutoff),
		Hresonance: pickF(a.Hresonance, b.Hresonance),
		Bandf:      pickF(a.Bandf, b.Bandf),
		Bandq:      pickF(a.Bandq, b.Bandq),
		Notchf:     pickF(a.Notchf, b.Notchf),

		Room:     pickF(a.Room, b.Room),
		RoomSize: pickF(a.RoomSize, b.RoomSize),

		Delay:         pickF(a.Delay, b.Delay),
		DelayTime:     pickF(a.DelayTime, b.DelayTime),
		DelayFeedback: pickF(a.DelayFeedback, b.DelayFeedback),

		Distort: pickF(a.Distort, b.Distort),
		Crush:   pickF(a.Crush, b.Crush),
		Coarse:  pickF(a.Coarse, b.Coarse),
		Orbit:   pickInt(a.Orbit, b.Orbit),
		Density: pickF(a.Density, b.Density),
		Decay:   pickF(a.Decay, b.Decay),

		Bpdecay:   pickF(a.Bpdecay, b.Bpdecay),
		Bpattack:  pickF(a.Bpattack, b.Bpattack),
		Lpsustain: pickF(a.Lpsustain, b.Lpsustain),
		Hpsustain: pickF(a.Hpsustain, b.Hpsustain),
		Nfattack:  pickF(a.Nfattack, b.Nfattack),
		Nfrelease: pickF(a.Nfrelease, b.Nfrelease),

		PAttack:  pickF(a.PAttack, b.PAttack),
		PDecay:   pickF(a.PDecay, b.PDecay),
		PRelease: pickF(a.PRelease, b.PRelease),
		PEnv:     pickF(a.PEnv, b.PEnv),
		PCurve:   pickF(a.PCurve, b.PCurve),
		PAnchor:  pickF(a.PAnchor, b.PAnchor),

		Fmh:       pickF(a.Fmh, b.Fmh),
		FmAttack:  pickF(a.FmAttack, b.FmAttack),
		FmDecay:   pickF(a.FmDecay, b.FmDecay),
		FmSustain: pickF(a.FmSustain, b.FmSustain),
		FmEnv:     pickF(a.FmEnv, b.FmEnv),

		FreqSpread: pickF(a.FreqSpread, b.FreqSpread),

		Chord: pickChord(a.Chord, b.Chord),

		Begin:     pickF(a.Begin, b.Begin),
		End:       pickF(a.End, b.End),
		Loop:      pickBool(a.Loop, b.Loop),
		LoopBegin: pickF(a.LoopBegin, b.LoopBegin),
		LoopEnd:   pickF(a.LoopEnd, b.LoopEnd),

		TremoloSync:  pickF(a.TremoloSync, b.TremoloSync),
		TremoloDepth: pickF(a.TremoloDepth, b.TremoloDepth),
		TremoloSkew:  pickF(a.TremoloSkew, b.TremoloSkew),
		TremoloPhase: pickF(a.TremoloPhase, b.TremoloPhase),
		TremoloShape: pickStr(a.TremoloShape, b.TremoloShape),

		Phaser:       pickBool(a.Phaser, b.Phaser),
		PhaserDepth:  pickF(a.PhaserDepth, b.PhaserDepth),
		PhaserCenter: pickF(a.PhaserCenter, b.PhaserCenter),
		PhaserSweep:  pickF(a.PhaserSweep, b.PhaserSweep),

		Scale: pickScale(a.Scale, b.Scale),
	}

	out.Filters, out.pendingResonance = mergeFilters(a, b)
	return out
}

// mergeFilters implements spec §4.6's filter-chain rule: b's resonance
// setting (if any) updates every filter already present before b's own
// new filters (if any) are folded in, so a filter introduced by b after a
// resonance() call in the same chain picks up that resonance.
func mergeFilters(a, b Data) ([]Filter, *float64) {
	filters := make([]Filter, len(a.Filters))
	copy(filters, a.Filters)
	pending := a.pendingResonance

	if b.pendingResonance != nil {
		pending = b.pendingResonance
		for i := range filters {
			v := *pending
			filters[i].Q = &v
		}
	}

	for _, nf := range b.Filters {
		matched := false
		for i := range filters {
			if filters[i].Kind == nf.Kind {
				filters[i].CutoffHz = nf.CutoffHz
				if nf.Q != nil {
					filters[i].Q = nf.Q
				}
				if nf.Envelope != nil {
					filters[i].Envelope = nf.Envelope
				}
				matched = true
				break
			}
		}
		if !matched {
			f := nf
			if f.Q == nil && pending != nil {
				v := *pending
				f.Q = &v
			}
			filters = append(filters, f)
		}
	}

	return filters, pending
}

func pickF(a, b *float64) *float64 {
	if b != nil {
		return b
	}
	return a
}

func pickInt(a, b *int) *int {
	if b != nil {
		return b
	}
	return a
}

func pickStr(a, b *string) *string {
	if b != nil {
		return b
	}
	return a
}

func pickBool(a, b *bool) *bool {
	if b != nil {
		return b
	}
	return a
}

func pickValue(a, b *Value) *Value {
	if b != nil {
		return b
	}
	return a
}

func pickChord(a, b *ChordTag) *ChordTag {
	if b != nil {
		return b
	}
	return a
}

func pickScale(a, b *ScaleTag) *ScaleTag {
	if b != nil {
		return b
	}
	return a
}
