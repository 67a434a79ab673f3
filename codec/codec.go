// Package codec declares the contract between the metadata core and the
// component that understands the binary ICC container. The core never
// parses profile bytes itself: everything it knows about a profile goes
// through a Codec, and everything it writes back goes through one too.
//
// A Codec implementation typically wraps a CMS library or a native tag
// parser. The package also carries the encoded-Lab conversion tables so
// implementations and test fakes agree on the PCS number format.
package codec

// Translation is one localized variant of a text tag. Empty Language and
// Country select the codec's no-language/no-country sentinel record,
// which holds the profile's untranslated default text.
//
// Country is only meaningful when Language is set; both are two-letter
// codes when present.
type Translation struct {
	Language string
	Country  string
	Text     string
}

// MLU is a decoded multilingual-text tag. Lookup resolution (exact match,
// language-only fallback and so on) is the codec's business; the core
// asks for one (language, country) pair and takes what it gets.
type MLU interface {
	// Text returns the translation for the language/country pair, or
	// false if the tag holds nothing usable for it.
	Text(language, country string) (string, bool)
}

// NamedColorInfo is one entry of a profile's named-color table, exactly
// as stored: the display name is split over prefix, name and suffix, and
// the coordinate is a PCS-encoded Lab triple.
type NamedColorInfo struct {
	Name   string
	Prefix string
	Suffix string
	PCS    [3]uint16
}

// NamedColorList is a decoded named-color tag.
type NamedColorList interface {
	Count() int
	// Info returns the entry at index, or false if the entry cannot be
	// fetched. A false here is per-entry: neighboring indices stay valid.
	Info(index int) (NamedColorInfo, bool)
}

// Codec is the external collaborator that owns the byte-level view of a
// profile. All methods are synchronous; implementations that perform I/O
// must complete it before returning.
type Codec interface {
	// ReadMLU decodes a multilingual-text tag, or reports false if the
	// tag is absent or unreadable.
	ReadMLU(sig Signature) (MLU, bool)

	// WriteMLU replaces the tag with the given translations. A failure
	// to encode any single translation fails the whole write.
	WriteMLU(sig Signature, translations []Translation) error

	// DeleteTag removes a tag if present. Deleting an absent tag is not
	// an error.
	DeleteTag(sig Signature)

	// NamedColors decodes the profile's named-color table, or reports
	// false if the profile has none.
	NamedColors() (NamedColorList, bool)

	// DecodeLab converts a PCS-encoded triple into a float Lab value.
	DecodeLab(pcs [3]uint16) Lab

	// ReadDict decodes the key/value metadata dictionary tag, or
	// reports false if the profile has none.
	ReadDict() (map[string]string, bool)

	// WriteDict replaces the metadata dictionary tag.
	WriteDict(entries map[string]string) error

	// Version reports the profile header version, e.g. 2.1 or 4.3.
	Version() float64

	// SetVersion updates the profile header version.
	SetVersion(v float64)
}
