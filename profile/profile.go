// Package profile is the facade over a profile's localized metadata and
// named-color table. It owns one read-through/write-through text cache
// per localized field, assembles multilingual tag payloads at save time,
// and extracts named colors lazily, all on top of an external tag codec
// that does the byte-level work.
//
// A Profile is not safe for concurrent mutation. Readers of a fully
// populated cache may share it, but a reader racing a first-population
// write needs external locking.
package profile

import (
	"errors"
	"fmt"

	"github.com/chromakit/iccmeta/codec"
	"github.com/chromakit/iccmeta/localekey"
	"github.com/chromakit/iccmeta/namedcolor"
)

// ErrNoData reports that a field has no resolvable text for the
// requested locale anywhere in the profile.
var ErrNoData = errors.New("no data for locale")

// ErrCannotWriteField reports that the codec rejected a localized field
// write during save.
var ErrCannotWriteField = errors.New("cannot write localized field")

// Observer is notified after a localized field is mutated. It replaces
// the property-change notifications of the original GObject API: the
// facade's owner supplies one when it needs change tracking.
type Observer func(Field)

// Profile holds the locale-addressable metadata of one color profile.
type Profile struct {
	codec    codec.Codec
	observer Observer

	// mluc holds one locale-key → text cache per localized field.
	// Setter writes land here and shadow the codec from then on.
	mluc [fieldCount]map[string]string

	metadata     map[string]string
	metadataRead bool

	named     []namedcolor.Swatch
	namedRead bool
}

// New wraps a codec in an empty Profile. The caches start empty and fill
// on demand; nothing is read from the codec up front.
func New(c codec.Codec) *Profile {
	p := &Profile{codec: c}
	for f := range p.mluc {
		p.mluc[f] = make(map[string]string)
	}
	return p
}

// SetObserver installs the change callback. A nil observer disables
// notification.
func (p *Profile) SetObserver(obs Observer) {
	p.observer = obs
}

func (p *Profile) notify(f Field) {
	if p.observer != nil {
		p.observer(f)
	}
}

// Text returns the field's text for a locale, e.g. "en_GB.UTF-8". The
// empty locale selects the profile's untranslated default text.
//
// The lookup is a read-through cache: a previously set or fetched value
// for the same normalized locale is returned as is, otherwise the codec
// is consulted once over the field's candidate tags and the result
// memoized. Malformed locales fail with localekey.ErrInvalidLocale;
// locales the profile has no text for fail with ErrNoData.
func (p *Profile) Text(f Field, locale string) (string, error) {
	key := localekey.Normalize(locale)
	if value, ok := p.mluc[f][key]; ok {
		return value, nil
	}

	language, country, err := localekey.Decompose(key)
	if err != nil {
		return "", err
	}

	for _, sig := range f.readSigs() {
		mlu, ok := p.codec.ReadMLU(sig)
		if !ok {
			continue
		}
		text, ok := mlu.Text(language, country)
		if !ok {
			continue
		}
		p.mluc[f][key] = text
		return text, nil
	}
	return "", fmt.Errorf("%w: %s %q", ErrNoData, f, key)
}

// SetText stores the field's text for a locale, overwriting any cached
// or previously set value under the same normalized key. The codec is
// untouched until Save.
func (p *Profile) SetText(f Field, locale, value string) {
	p.mluc[f][localekey.Normalize(locale)] = value
	p.notify(f)
}

// SetTextItems stores a whole locale → text mapping for the field, one
// SetText per entry.
func (p *Profile) SetTextItems(f Field, items map[string]string) {
	for locale, value := range items {
		p.SetText(f, locale, value)
	}
}

// Description returns the profile description for a locale.
func (p *Profile) Description(locale string) (string, error) {
	return p.Text(FieldDescription, locale)
}

// Copyright returns the profile copyright for a locale.
func (p *Profile) Copyright(locale string) (string, error) {
	return p.Text(FieldCopyright, locale)
}

// Manufacturer returns the device manufacturer for a locale.
func (p *Profile) Manufacturer(locale string) (string, error) {
	return p.Text(FieldManufacturer, locale)
}

// Model returns the device model for a locale.
func (p *Profile) Model(locale string) (string, error) {
	return p.Text(FieldModel, locale)
}

// SetDescription sets the profile description for a locale.
func (p *Profile) SetDescription(locale, value string) {
	p.SetText(FieldDescription, locale, value)
}

// SetCopyright sets the profile copyright for a locale.
func (p *Profile) SetCopyright(locale, value string) {
	p.SetText(FieldCopyright, locale, value)
}

// SetManufacturer sets the device manufacturer for a locale.
func (p *Profile) SetManufacturer(locale, value string) {
	p.SetText(FieldManufacturer, locale, value)
}

// SetModel sets the device model for a locale.
func (p *Profile) SetModel(locale, value string) {
	p.SetText(FieldModel, locale, value)
}

// NamedColors returns the profile's named colors, extracting them from
// the codec on first call. Profiles without a named-color table yield an
// empty slice.
func (p *Profile) NamedColors() []namedcolor.Swatch {
	if !p.namedRead {
		if list, ok := p.codec.NamedColors(); ok {
			p.named = namedcolor.Extract(p.codec, list)
		}
		p.namedRead = true
	}
	return p.named
}

// Metadata returns the profile's key/value metadata dictionary, loading
// it from the codec on first access. The returned map is the live
// dictionary; prefer AddMetadata and RemoveMetadata for mutation.
func (p *Profile) Metadata() map[string]string {
	p.loadMetadata()
	return p.metadata
}

// MetadataItem returns one metadata value, or false if the key is absent.
func (p *Profile) MetadataItem(key string) (string, bool) {
	p.loadMetadata()
	value, ok := p.metadata[key]
	return value, ok
}

// AddMetadata sets a metadata key/value pair.
func (p *Profile) AddMetadata(key, value string) {
	p.loadMetadata()
	p.metadata[key] = value
}

// RemoveMetadata removes a metadata key. Removing an absent key is not
// an error.
func (p *Profile) RemoveMetadata(key string) {
	p.loadMetadata()
	delete(p.metadata, key)
}

func (p *Profile) loadMetadata() {
	if p.metadataRead {
		return
	}
	p.metadataRead = true
	if dict, ok := p.codec.ReadDict(); ok {
		p.metadata = dict
		return
	}
	p.metadata = make(map[string]string)
}

// Version reports the profile header version.
func (p *Profile) Version() float64 {
	return p.codec.Version()
}

// SetVersion updates the profile header version. Save may still raise it
// when a field carries more than one translation.
func (p *Profile) SetVersion(v float64) {
	p.codec.SetVersion(v)
}
