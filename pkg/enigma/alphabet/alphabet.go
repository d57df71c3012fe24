// Package alphabet holds the 26-letter domain every Enigma component works on.
package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

const Size = 26

var ErrInvalidLetter = errors.New("letter is outside of the A-Z range")

// Letter is one of A..Z, or Invalid.
type Letter uint8

const (
	A Letter = iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
	Invalid
)

func FromRune(r rune) Letter {
	if r < 'A' || r > 'Z' {
		return Invalid
	}
	return Letter(r - 'A')
}

func FromIndex(idx int) Letter {
	if idx < 0 || idx >= Size {
		return Invalid
	}
	return Letter(idx)
}

func Parse(value string) (Letter, error) {
	runes := []rune(strings.TrimSpace(value))
	if len(runes) != 1 {
		return Invalid, fmt.Errorf("%w: %q", ErrInvalidLetter, value)
	}
	l := FromRune(runes[0])
	if !l.IsValid() {
		return Invalid, fmt.Errorf("%w: %q", ErrInvalidLetter, value)
	}
	return l, nil
}

func MustParse(value string) Letter {
	l, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return l
}

// All lists A through Z.
func All() []Letter {
	letters := make([]Letter, Size)
	for i := range letters {
		letters[i] = Letter(i)
	}
	return letters
}

// FromString keeps the letters A-Z of s and silently drops everything else.
func FromString(s string) []Letter {
	letters := make([]Letter, 0, len(s))
	for _, r := range s {
		if l := FromRune(r); l.IsValid() {
			letters = append(letters, l)
		}
	}
	return letters
}

func String(letters []Letter) string {
	var b strings.Builder
	b.Grow(len(letters))
	for _, l := range letters {
		b.WriteRune(l.Rune())
	}
	return b.String()
}

func (l Letter) IsValid() bool {
	return l < Invalid
}

func (l Letter) Index() int {
	return int(l)
}

func (l Letter) Succ() Letter {
	return l.Offset(1)
}

func (l Letter) Pred() Letter {
	return l.Offset(-1)
}

// Offset moves the letter by the given number of positions around the ring.
func (l Letter) Offset(by int) Letter {
	if !l.IsValid() {
		return Invalid
	}
	return Letter(mod(int(l)+by, Size))
}

func (l Letter) Rune() rune {
	if !l.IsValid() {
		return '?'
	}
	return rune('A' + l)
}

func (l Letter) String() string {
	if !l.IsValid() {
		return "Invalid"
	}
	return string(l.Rune())
}

func mod(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}
