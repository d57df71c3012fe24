package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigmasim/internal/testutils"
)

type rotorSchema struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Wiring  string `json:"wiring"`
	Notches string `json:"notches"`
	Thin    bool   `json:"thin"`
}

type reflectorSchema struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Wiring string `json:"wiring"`
	Thin   bool   `json:"thin"`
}

type catalogSchema struct {
	Rotors     []rotorSchema     `json:"rotors"`
	Reflectors []reflectorSchema `json:"reflectors"`
}

func TestAPI_Catalog_OK(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	var catalog catalogSchema
	resp := testutils.DoTestRequest(
		t, ts, http.MethodGet, "/api/catalog", nil,
		testutils.MustBindJSON(&catalog),
	)
	assert.Equal(t, 200, resp.StatusCode)

	require.Len(t, catalog.Rotors, 10)
	names := make([]string, 0, len(catalog.Rotors))
	for _, r := range catalog.Rotors {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "Beta", "Gamma"}, names)

	assert.Equal(t, rotorSchema{
		Name:    "I",
		Slug:    "i",
		Wiring:  "EKMFLGDQVZNTOWYHXUSPAIBRCJ",
		Notches: "Q",
		Thin:    false,
	}, catalog.Rotors[0])
	assert.Equal(t, "ZM", catalog.Rotors[5].Notches)
	assert.Equal(t, rotorSchema{
		Name:    "Beta",
		Slug:    "beta",
		Wiring:  "LEYJVCNIXWPBQMDRTAKZGFUHOS",
		Notches: "",
		Thin:    true,
	}, catalog.Rotors[8])

	require.Len(t, catalog.Reflectors, 5)
	assert.Equal(t, reflectorSchema{
		Name:   "B",
		Slug:   "b",
		Wiring: "YRUHQSLDPXNGOKMIEBFZCWVJAT",
		Thin:   false,
	}, catalog.Reflectors[1])
	assert.Equal(t, reflectorSchema{
		Name:   "C-Thin",
		Slug:   "c-thin",
		Wiring: "RDOBJNTKVEHMLFCWZAXGYIPSUQ",
		Thin:   true,
	}, catalog.Reflectors[4])
}
