package sequence

// IsRepetitionOf reports whether s equals p repeated len(s)/len(p) times.
func IsRepetitionOf(s, p string) bool {
	if len(p) == 0 || len(s)%len(p) != 0 {
		return false
	}
	for i := 0; i < len(s); i += len(p) {
		if s[i:i+len(p)] != p {
			return false
		}
	}
	return true
}

// FromBits spells u in binary, most significant bit first, with 1 as 'A' and 0 as 'B'.
func FromBits(u uint64) string {
	if u == 0 {
		return ""
	}
	var buf [64]byte
	i := len(buf)
	for ; u != 0; u >>= 1 {
		i--
		if u&1 == 1 {
			buf[i] = 'A'
		} else {
			buf[i] = 'B'
		}
	}
	return string(buf[i:])
}

// Skip describes a candidate rejected as a repetition of an earlier sequence.
type Skip struct {
	Candidate string
	Base      string
	Times     int
}

// Enumerator yields the A/B sequences that contain at least one B and are not a
// repetition of a sequence it produced earlier, in order of their binary value.
type Enumerator struct {
	next     uint64
	accepted []string

	// OnSkip, when set, is called for every rejected repetition.
	OnSkip func(Skip)
}

func NewEnumerator() *Enumerator {
	return &Enumerator{next: 1}
}

// Next returns the next non-periodic sequence.
func (e *Enumerator) Next() string {
	for {
		ab := FromBits(e.next)
		e.next++

		if !containsB(ab) {
			continue
		}
		if base, ok := e.repeats(ab); ok {
			if e.OnSkip != nil {
				e.OnSkip(Skip{Candidate: ab, Base: base, Times: len(ab) / len(base)})
			}
			continue
		}

		e.accepted = append(e.accepted, ab)
		return ab
	}
}

// repeats scans accepted sequences in order; they are sorted by length, so the
// scan stops once a candidate base is longer than half of ab.
func (e *Enumerator) repeats(ab string) (string, bool) {
	maxLen := len(ab) / 2
	for _, s := range e.accepted {
		if len(s) > maxLen {
			return "", false
		}
		if IsRepetitionOf(ab, s) {
			return s, true
		}
	}
	return "", false
}

func containsB(ab string) bool {
	for i := 0; i < len(ab); i++ {
		if ab[i] == 'B' {
			return true
		}
	}
	return false
}
