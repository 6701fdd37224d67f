package sequence

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmpty indicates a control sequence without symbols.
	ErrEmpty = errors.New("sequence: empty control sequence")

	// ErrInvalidSymbol indicates a character outside {A, B, C}.
	ErrInvalidSymbol = errors.New("sequence: invalid symbol")
)

// Symbol selects which control value drives one sub-step of the map.
type Symbol uint8

const (
	A Symbol = iota
	B
	C
)

func (s Symbol) String() string {
	switch s {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	default:
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
}

// Sequence is an ordered, non-empty list of symbols.
type Sequence []Symbol

// Parse reads a sequence such as "BBBABBAAAAAA". Lower-case letters are accepted.
func Parse(text string) (Sequence, error) {
	if text == "" {
		return nil, ErrEmpty
	}

	seq := make(Sequence, 0, len(text))
	for i, ch := range text {
		switch ch {
		case 'A', 'a':
			seq = append(seq, A)
		case 'B', 'b':
			seq = append(seq, B)
		case 'C', 'c':
			seq = append(seq, C)
		default:
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidSymbol, ch, i)
		}
	}
	return seq, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(text string) Sequence {
	seq, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return seq
}

func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, sym := range s {
		sb.WriteString(sym.String())
	}
	return sb.String()
}

// Uses reports whether sym occurs in the sequence.
func (s Sequence) Uses(sym Symbol) bool {
	for _, v := range s {
		if v == sym {
			return true
		}
	}
	return false
}
