package plugboard

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sergeii/enigmasim/pkg/enigma/alphabet"
)

const MaxPairs = alphabet.Size / 2

var ErrInvalidPlugboardConfiguration = errors.New("invalid plugboard configuration")

// Plugboard swaps letters connected by a cable.
// The zero value has no cables and passes every letter through.
type Plugboard struct {
	wired    [alphabet.Size]bool
	partners [alphabet.Size]alphabet.Letter
}

// New accepts pairs in the form "AZ" or "A:Z".
func New(pairs ...string) (Plugboard, error) {
	var pb Plugboard

	if len(pairs) > MaxPairs {
		return Plugboard{}, fmt.Errorf(
			"%w: at most %d pairs are allowed, got %d", ErrInvalidPlugboardConfiguration, MaxPairs, len(pairs),
		)
	}

	for _, pair := range pairs {
		left, right, err := parsePair(pair)
		if err != nil {
			return Plugboard{}, err
		}
		if left == right {
			return Plugboard{}, fmt.Errorf(
				"%w: %s cannot be plugged into itself", ErrInvalidPlugboardConfiguration, left,
			)
		}
		for _, l := range []alphabet.Letter{left, right} {
			if pb.wired[l] {
				return Plugboard{}, fmt.Errorf(
					"%w: %s is already plugged to %s", ErrInvalidPlugboardConfiguration, l, pb.partners[l],
				)
			}
		}
		pb.connect(left, right)
	}

	return pb, nil
}

// Parse reads pairs separated by spaces or commas, e.g. "AZ BY" or "A:Z,B:Y".
func Parse(value string) (Plugboard, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == ','
	})
	return New(fields...)
}

func MustNew(pairs ...string) Plugboard {
	pb, err := New(pairs...)
	if err != nil {
		panic(err)
	}
	return pb
}

func parsePair(pair string) (alphabet.Letter, alphabet.Letter, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(pair), ":", ""))
	if len(normalized) != 2 {
		return alphabet.Invalid, alphabet.Invalid, fmt.Errorf(
			"%w: malformed pair %q", ErrInvalidPlugboardConfiguration, pair,
		)
	}
	left := alphabet.FromRune(rune(normalized[0]))
	right := alphabet.FromRune(rune(normalized[1]))
	if !left.IsValid() || !right.IsValid() {
		return alphabet.Invalid, alphabet.Invalid, fmt.Errorf(
			"%w: malformed pair %q", ErrInvalidPlugboardConfiguration, pair,
		)
	}
	return left, right, nil
}

func (pb *Plugboard) connect(a, b alphabet.Letter) {
	pb.wired[a], pb.wired[b] = true, true
	pb.partners[a], pb.partners[b] = b, a
}

func (pb Plugboard) Swap(l alphabet.Letter) alphabet.Letter {
	if !l.IsValid() {
		return alphabet.Invalid
	}
	if pb.wired[l] {
		return pb.partners[l]
	}
	return l
}

// Pairs lists cables with the lower letter first, in alphabetical order.
func (pb Plugboard) Pairs() []string {
	pairs := make([]string, 0, MaxPairs)
	for i, wired := range pb.wired {
		l := alphabet.Letter(i)
		if wired && l < pb.partners[l] {
			pairs = append(pairs, string([]rune{l.Rune(), pb.partners[l].Rune()}))
		}
	}
	sort.Strings(pairs)
	return pairs
}

func (pb Plugboard) Len() int {
	return len(pb.Pairs())
}

func (pb Plugboard) String() string {
	return strings.Join(pb.Pairs(), " ")
}
