package mlutext

import (
	"testing"

	"github.com/chromakit/iccmeta/codec"
)

func TestBuild(t *testing.T) {
	t.Run("empty cache is a delete", func(t *testing.T) {
		p := Build(nil)
		if !p.Delete {
			t.Fatalf("Build(nil) = %+v, want delete instruction", p)
		}
		if len(p.Translations) != 0 {
			t.Fatalf("delete payload carries translations: %+v", p.Translations)
		}
	})

	t.Run("only unrepresentable entries is a delete", func(t *testing.T) {
		p := Build(map[string]string{
			"sr@latin": "Opis",
			"x":        "too short",
		})
		if !p.Delete {
			t.Fatalf("Build = %+v, want delete instruction", p)
		}
	})

	t.Run("default entry maps to sentinel codes", func(t *testing.T) {
		p := Build(map[string]string{"": "sRGB display profile"})
		if p.Delete || len(p.Translations) != 1 {
			t.Fatalf("Build = %+v", p)
		}
		got := p.Translations[0]
		want := codec.Translation{Text: "sRGB display profile"}
		if got != want {
			t.Fatalf("translation = %+v, want %+v", got, want)
		}
	})

	t.Run("mixed entries drop the bad ones", func(t *testing.T) {
		p := Build(map[string]string{
			"":         "Default",
			"fr":       "Défaut",
			"en_GB":    "Default GB",
			"sr@latin": "skipped",
			"germany":  "skipped",
		})
		if p.Delete {
			t.Fatalf("unexpected delete: %+v", p)
		}
		want := []codec.Translation{
			{Text: "Default"},
			{Language: "en", Country: "GB", Text: "Default GB"},
			{Language: "fr", Text: "Défaut"},
		}
		if len(p.Translations) != len(want) {
			t.Fatalf("translations = %+v, want %+v", p.Translations, want)
		}
		for i := range want {
			if p.Translations[i] != want[i] {
				t.Fatalf("translation[%d] = %+v, want %+v", i, p.Translations[i], want[i])
			}
		}
	})
}

func TestNeedsPromotion(t *testing.T) {
	single := Build(map[string]string{"": "one"})
	multi := Build(map[string]string{"": "one", "fr": "deux"})

	cases := []struct {
		name    string
		payload Payload
		version float64
		want    bool
	}{
		{name: "single translation never promotes", payload: single, version: 2.1, want: false},
		{name: "multiple translations promote v2", payload: multi, version: 2.1, want: true},
		{name: "already multilingual stays put", payload: multi, version: 4.0, want: false},
		{name: "newer version never lowered", payload: multi, version: 4.3, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NeedsPromotion(tc.payload, tc.version); got != tc.want {
				t.Fatalf("NeedsPromotion(v=%.1f) = %v, want %v", tc.version, got, tc.want)
			}
		})
	}
}
