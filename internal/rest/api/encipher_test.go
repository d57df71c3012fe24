package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"

	"github.com/sergeii/enigmasim/internal/core/entities/keysetting"
	"github.com/sergeii/enigmasim/internal/settings"
	"github.com/sergeii/enigmasim/internal/testutils"
	"github.com/sergeii/enigmasim/internal/testutils/factories/profilefactory"
)

type keySchema struct {
	Reflector string   `json:"reflector"`
	Rotors    []string `json:"rotors"`
	Rings     string   `json:"rings"`
	Positions string   `json:"positions"`
	Plugs     []string `json:"plugs"`
	Compact   string   `json:"compact"`
}

type encipheredSchema struct {
	Text    string    `json:"text"`
	Letters int       `json:"letters"`
	Dropped int       `json:"dropped"`
	Key     keySchema `json:"key"`
	Window  string    `json:"window"`
}

type errorSchema struct {
	Error string `json:"error"`
}

func mustJSON(v any) *bytes.Buffer {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bytes.NewBuffer(body)
}

func TestAPI_Encipher_OK(t *testing.T) {
	tests := []struct {
		name string
		req  map[string]any
		want encipheredSchema
	}{
		{
			"default grouping",
			map[string]any{
				"text": "AAAAAAAAAA",
				"key":  map[string]any{"reflector": "B", "rotors": []string{"I", "II", "III"}},
			},
			encipheredSchema{
				Text:    "BDZGO WCXLT",
				Letters: 10,
				Key: keySchema{
					Reflector: "B",
					Rotors:    []string{"I", "II", "III"},
					Plugs:     []string{},
					Compact:   "B I-II-III AAA AAA",
				},
				Window: "AAK",
			},
		},
		{
			"no grouping",
			map[string]any{
				"text":  "Hello, World!",
				"key":   map[string]any{"reflector": "B", "rotors": []string{"I", "II", "III"}},
				"group": 0,
			},
			encipheredSchema{
				Text:    "ILBDAAMTAZ",
				Letters: 10,
				Dropped: 3,
				Key: keySchema{
					Reflector: "B",
					Rotors:    []string{"I", "II", "III"},
					Plugs:     []string{},
					Compact:   "B I-II-III AAA AAA",
				},
				Window: "AAK",
			},
		},
		{
			"operator manual",
			map[string]any{
				"text": "FEINDLIQEINFANTERIEKOLONNEBEOBAQTET",
				"key": map[string]any{
					"reflector": "A",
					"rotors":    []string{"II", "I", "III"},
					"rings":     "24 13 22",
					"positions": "ABL",
					"plugs":     []string{"AM", "FI", "NV", "PS", "TU", "WZ"},
				},
				"group": 0,
			},
			encipheredSchema{
				Text:    "GCDSEAHUGWTQGRKVLFGXUCALXVYMIGMMNMF",
				Letters: 35,
				Key: keySchema{
					Reflector: "A",
					Rotors:    []string{"II", "I", "III"},
					Rings:     "24 13 22",
					Positions: "ABL",
					Plugs:     []string{"AM", "FI", "NV", "PS", "TU", "WZ"},
					Compact:   "A II-I-III XMV ABL AM FI NV PS TU WZ",
				},
				Window: "ACU",
			},
		},
		{
			"message key replaces positions",
			map[string]any{
				"text":      "AAAAA",
				"key":       map[string]any{"reflector": "B", "rotors": []string{"I", "II", "III"}, "positions": "AAA"},
				"positions": "ADU",
			},
			encipheredSchema{
				Text:    "EQIBM",
				Letters: 5,
				Key: keySchema{
					Reflector: "B",
					Rotors:    []string{"I", "II", "III"},
					Positions: "ADU",
					Plugs:     []string{},
					Compact:   "B I-II-III AAA ADU",
				},
				Window: "BFZ",
			},
		},
		{
			"four rotor machine",
			map[string]any{
				"text": "AAAAA",
				"key": map[string]any{
					"reflector": "B-Thin",
					"rotors":    []string{"Beta", "II", "IV", "I"},
				},
			},
			encipheredSchema{
				Text:    "EJBLD",
				Letters: 5,
				Key: keySchema{
					Reflector: "B-Thin",
					Rotors:    []string{"Beta", "II", "IV", "I"},
					Plugs:     []string{},
					Compact:   "B-Thin Beta-II-IV-I AAAA AAAA",
				},
				Window: "AAAF",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, cancel := testutils.PrepareTestServer(t)
			defer cancel()

			var got encipheredSchema
			resp := testutils.DoTestRequest(
				t, ts, http.MethodPost, "/api/encipher", mustJSON(tt.req),
				testutils.MustBindJSON(&got),
			)
			assert.Equal(t, 200, resp.StatusCode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAPI_Encipher_IsReciprocal(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	key := map[string]any{
		"reflector": "C",
		"rotors":    []string{"VI", "VII", "VIII"},
		"rings":     "XYZ",
		"positions": "QEV",
		"plugs":     []string{"AZ", "BY", "CX", "DW"},
	}
	plaintext := "DIESISTEINGEHEIMERTEXTDERUEBERDENDOPPELSCHRITTHINAUSGEHT"

	var enciphered encipheredSchema
	resp := testutils.DoTestRequest(
		t, ts, http.MethodPost, "/api/encipher",
		mustJSON(map[string]any{"text": plaintext, "key": key, "group": 0}),
		testutils.MustBindJSON(&enciphered),
	)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEqual(t, plaintext, enciphered.Text)
	for i := range plaintext {
		assert.NotEqual(t, plaintext[i], enciphered.Text[i])
	}

	var deciphered encipheredSchema
	resp = testutils.DoTestRequest(
		t, ts, http.MethodPost, "/api/encipher",
		mustJSON(map[string]any{"text": enciphered.Text, "key": key, "group": 0}),
		testutils.MustBindJSON(&deciphered),
	)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, plaintext, deciphered.Text)
	assert.Equal(t, enciphered.Window, deciphered.Window)
}

func TestAPI_Encipher_WithProfile(t *testing.T) {
	ctx := context.TODO()

	ts, deps, cancel := testutils.PrepareTestServerWithDeps(t)
	defer cancel()

	profilefactory.Create(
		ctx,
		deps.Profiles,
		profilefactory.WithName("U-534"),
		profilefactory.WithKey(keysetting.KeySetting{
			Reflector: "B",
			Rotors:    []string{"I", "II", "III"},
			Plugs:     []string{"AZ", "BY"},
		}),
	)

	var got encipheredSchema
	resp := testutils.DoTestRequest(
		t, ts, http.MethodPost, "/api/encipher",
		mustJSON(map[string]any{"text": "aaaaa", "profile": "U-534"}),
		testutils.MustBindJSON(&got),
	)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "UTZJB", got.Text)
	assert.Equal(t, "B I-II-III AAA AAA AZ BY", got.Key.Compact)

	assert.Equal(t, float64(1), testutil.ToFloat64(deps.Collector.EncipherRequests.WithLabelValues("api")))
	assert.Equal(t, float64(5), testutil.ToFloat64(deps.Collector.EncipherLetters))
}

func TestAPI_Encipher_GroupSizeSetting(t *testing.T) {
	cfg := settings.Default()
	cfg.GroupSize = 4

	ts, cancel := testutils.PrepareTestServer(t, fx.Replace(cfg))
	defer cancel()

	var got encipheredSchema
	resp := testutils.DoTestRequest(
		t, ts, http.MethodPost, "/api/encipher",
		mustJSON(map[string]any{
			"text": "AAAAAAAAAA",
			"key":  map[string]any{"reflector": "B", "rotors": []string{"I", "II", "III"}},
		}),
		testutils.MustBindJSON(&got),
	)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "BDZG OWCX LT", got.Text)
}

func TestAPI_Encipher_Errors(t *testing.T) {
	validKey := map[string]any{"reflector": "B", "rotors": []string{"I", "II", "III"}}
	tests := []struct {
		name       string
		req        any
		wantStatus int
		wantError  string
	}{
		{
			"malformed json",
			"{",
			400,
			"",
		},
		{
			"text is required",
			map[string]any{"key": validKey},
			400,
			"Text",
		},
		{
			"no letters in text",
			map[string]any{"text": "1234 !?", "key": validKey},
			400,
			"no letters",
		},
		{
			"no key",
			map[string]any{"text": "AAAAA"},
			400,
			"key or a profile",
		},
		{
			"unknown rotor",
			map[string]any{"text": "AAAAA", "key": map[string]any{"reflector": "B", "rotors": []string{"I", "II", "IX"}}},
			400,
			"rotor",
		},
		{
			"unknown reflector",
			map[string]any{"text": "AAAAA", "key": map[string]any{"reflector": "D", "rotors": []string{"I", "II", "III"}}},
			400,
			"reflector",
		},
		{
			"too few rotors",
			map[string]any{"text": "AAAAA", "key": map[string]any{"reflector": "B", "rotors": []string{"I", "II"}}},
			400,
			"min",
		},
		{
			"thin reflector on three rotor machine",
			map[string]any{"text": "AAAAA", "key": map[string]any{"reflector": "B-Thin", "rotors": []string{"I", "II", "III"}}},
			400,
			"invalid key",
		},
		{
			"repeated rotor",
			map[string]any{"text": "AAAAA", "key": map[string]any{"reflector": "B", "rotors": []string{"I", "I", "III"}}},
			400,
			"invalid key",
		},
		{
			"plug used twice",
			map[string]any{
				"text": "AAAAA",
				"key": map[string]any{
					"reflector": "B", "rotors": []string{"I", "II", "III"}, "plugs": []string{"AB", "AC"},
				},
			},
			400,
			"invalid key",
		},
		{
			"malformed plug",
			map[string]any{
				"text": "AAAAA",
				"key": map[string]any{
					"reflector": "B", "rotors": []string{"I", "II", "III"}, "plugs": []string{"A1"},
				},
			},
			400,
			"plugpair",
		},
		{
			"malformed message key",
			map[string]any{"text": "AAAAA", "key": validKey, "positions": "A1B"},
			400,
			"window",
		},
		{
			"message key of wrong length",
			map[string]any{"text": "AAAAA", "key": validKey, "positions": "ABCD"},
			400,
			"invalid key",
		},
		{
			"group out of range",
			map[string]any{"text": "AAAAA", "key": validKey, "group": 100},
			400,
			"Group",
		},
		{
			"unknown profile",
			map[string]any{"text": "AAAAA", "profile": "unknown"},
			404,
			"profile not found",
		},
		{
			"text too long",
			map[string]any{"text": strings.Repeat("A", settings.DefaultMaxTextLength+1), "key": validKey},
			413,
			"too long",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, cancel := testutils.PrepareTestServer(t)
			defer cancel()

			var body *bytes.Buffer
			if raw, ok := tt.req.(string); ok {
				body = bytes.NewBufferString(raw)
			} else {
				body = mustJSON(tt.req)
			}

			var got errorSchema
			resp := testutils.DoTestRequest(
				t, ts, http.MethodPost, "/api/encipher", body,
				testutils.MustBindJSON(&got),
			)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, got.Error)
			assert.Contains(t, got.Error, tt.wantError)
		})
	}
}
