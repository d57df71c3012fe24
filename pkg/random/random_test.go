package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergeii/enigmasim/pkg/random"
)

func TestPick(t *testing.T) {
	items := []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII"}
	tests := []struct {
		name string
		k    int
	}{
		{"none", 0},
		{"three", 3},
		{"all", 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := random.New()
			picked := random.Pick(src, items, tt.k)
			assert.Len(t, picked, tt.k)

			seen := make(map[string]struct{}, tt.k)
			for _, item := range picked {
				assert.Contains(t, items, item)
				seen[item] = struct{}{}
			}
			assert.Len(t, seen, tt.k)
		})
	}
	// the input is left intact
	assert.Equal(t, []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII"}, items)
}

func TestPick_TooMany(t *testing.T) {
	assert.Panics(t, func() {
		random.Pick(random.New(), []int{1, 2}, 3)
	})
}

func TestNewSeeded_IsReproducible(t *testing.T) {
	first := random.NewSeeded(1941)
	second := random.NewSeeded(1941)
	for range 100 {
		assert.Equal(t, first.IntN(26), second.IntN(26))
	}

	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	assert.Equal(
		t,
		random.Pick(random.NewSeeded(7), items, 5),
		random.Pick(random.NewSeeded(7), items, 5),
	)
}

func TestChoice(t *testing.T) {
	src := random.New()
	for range 50 {
		assert.Contains(t, []string{"B", "C"}, random.Choice(src, []string{"B", "C"}))
	}
}
