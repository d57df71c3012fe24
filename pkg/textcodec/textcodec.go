// Package textcodec turns free-form text into machine letters and back.
package textcodec

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/sergeii/enigmasim/pkg/enigma/alphabet"
)

// umlauts are spelled out the way operators wrote them on the message pad
var umlauts = strings.NewReplacer(
	"Ä", "AE", "ä", "ae",
	"Ö", "OE", "ö", "oe",
	"Ü", "UE", "ü", "ue",
	"ẞ", "SS",
)

func newStripper() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Normalize spells out umlauts, strips the remaining diacritics and upper-cases the text.
// Characters that have no letter equivalent are kept as is.
func Normalize(text string) string {
	text = umlauts.Replace(text)
	stripped, _, err := transform.String(newStripper(), text)
	if err != nil {
		stripped = text
	}
	return cases.Upper(language.German).String(stripped)
}

// Sanitize converts text into letters, dropping everything the keyboard cannot type.
// The second value is the number of dropped characters.
func Sanitize(text string) ([]alphabet.Letter, int) {
	normalized := Normalize(text)
	letters := make([]alphabet.Letter, 0, len(normalized))
	dropped := 0
	for _, r := range normalized {
		l := alphabet.FromRune(r)
		if !l.IsValid() {
			dropped++
			continue
		}
		letters = append(letters, l)
	}
	return letters, dropped
}

// Render joins letters into groups of the given size separated by a space.
// A non-positive group size disables grouping.
func Render(letters []alphabet.Letter, group int) string {
	if group <= 0 {
		return alphabet.String(letters)
	}
	var sb strings.Builder
	sb.Grow(len(letters) + len(letters)/group)
	for i, l := range letters {
		if i > 0 && i%group == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(l.Rune())
	}
	return sb.String()
}
