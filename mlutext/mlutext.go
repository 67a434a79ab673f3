// Package mlutext turns a localized field's cache of per-locale text into
// a single multilingual tag payload for the codec to encode.
//
// The builder is pure: it only decides which translations the tag format
// can carry and whether the profile header needs a version bump. The
// actual tag write, and the one-way version ratchet, happen at save time
// in the profile facade.
package mlutext

import (
	"sort"
	"strings"

	"github.com/chromakit/iccmeta/codec"
	"github.com/chromakit/iccmeta/localekey"
)

// MultilingualVersion is the lowest profile version whose format can
// carry a multilingual 'mluc' tag. Profiles holding more than one
// translation of a field are promoted to it at save time.
const MultilingualVersion = 4.0

// Payload is the build result for one localized field: either an
// instruction to delete the tag, or the list of translations to encode.
type Payload struct {
	// Delete is set when the field holds no representable translations
	// and any existing tag of its signature must be removed.
	Delete bool
	// Translations are the surviving locale variants, ordered by locale
	// key for reproducible writes. Empty when Delete is set.
	Translations []codec.Translation
}

// parse converts one cache entry into a Translation. Entries the tag
// format cannot represent report ok=false and are skipped: keys with a
// variant marker such as "sr@latin" are cosmetic variants the format has
// no slot for, and keys that fail decomposition are malformed.
func parse(key, text string) (tr codec.Translation, ok bool) {
	if key == localekey.Default {
		return codec.Translation{Text: text}, true
	}
	if strings.Contains(key, "@") {
		return codec.Translation{}, false
	}
	language, country, err := localekey.Decompose(key)
	if err != nil {
		return codec.Translation{}, false
	}
	return codec.Translation{Language: language, Country: country, Text: text}, true
}

// Build converts a field cache (locale key → text) into a Payload.
// Unrepresentable entries are dropped silently; if nothing survives the
// payload is a delete instruction.
func Build(entries map[string]string) Payload {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	translations := make([]codec.Translation, 0, len(keys))
	for _, key := range keys {
		tr, ok := parse(key, entries[key])
		if !ok {
			continue
		}
		translations = append(translations, tr)
	}

	if len(translations) == 0 {
		return Payload{Delete: true}
	}
	return Payload{Translations: translations}
}

// NeedsPromotion reports whether writing the payload requires raising the
// profile version to MultilingualVersion. A single translation fits the
// legacy text types, so only multi-translation payloads promote, and a
// version already at or above the threshold is never touched.
func NeedsPromotion(p Payload, version float64) bool {
	return len(p.Translations) > 1 && version < MultilingualVersion
}
