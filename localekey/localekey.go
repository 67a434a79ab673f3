// Package localekey canonicalizes human locale strings into the keys the
// per-field translation caches are indexed by.
//
// A locale key is the locale with any trailing charset or variant suffix
// cut off: "en_GB.UTF-8" becomes "en_GB", "fr" stays "fr". The empty key
// stands for the profile's untranslated default text, which ICC profiles
// conventionally store as en_US, so anything starting with "en_US"
// normalizes to the empty key too.
package localekey

import (
	"errors"
	"fmt"
	"strings"
)

// Default is the locale key of the profile's untranslated default entry.
const Default = ""

// ErrInvalidLocale reports a locale whose language or country code is not
// exactly two characters, or that carries a variant the profile format
// cannot represent.
var ErrInvalidLocale = errors.New("invalid locale")

// Normalize converts a locale string into a cache key. The empty string
// and anything starting with "en_US" map to Default; otherwise the key is
// the locale truncated at the first '.' or '(' (charset and variant
// suffixes, e.g. "en_GB.UTF-8" or "de_DE(euro)").
//
// Normalize never fails: malformed locales still produce a key, and are
// rejected later by Decompose when codec lookups need language and
// country codes.
func Normalize(locale string) string {
	if locale == "" || strings.HasPrefix(locale, "en_US") {
		return Default
	}
	if i := strings.IndexAny(locale, ".("); i >= 0 {
		locale = locale[:i]
	}
	return locale
}

// Decompose splits a locale key into the language and country codes used
// for codec lookups. The Default key yields two empty strings, the
// codec's no-language/no-country sentinel pair.
//
// A non-empty key is split on the first '_': the language code must be
// exactly 2 characters, and the country code, when present, must be
// exactly 2 characters as well. Anything else, including variant markers
// like "sr@latin", fails with ErrInvalidLocale.
func Decompose(key string) (language, country string, err error) {
	if key == Default {
		return "", "", nil
	}
	language, country, _ = strings.Cut(key, "_")
	if len(language) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidLocale, key)
	}
	if country != "" && len(country) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidLocale, key)
	}
	return language, country, nil
}
