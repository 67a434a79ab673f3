// Package namedcolor extracts the spot-color table of a profile into
// display-ready swatches: a reassembled human-readable name plus a
// device-independent Lab value.
package namedcolor

import (
	"strings"
	"unicode/utf8"

	"github.com/chromakit/iccmeta/codec"
	"github.com/chromakit/iccmeta/textfix"
)

// Swatch is one named color: the display name assembled from the entry's
// prefix, core name and suffix, and the decoded Lab value.
type Swatch struct {
	Name  string
	Value codec.Lab
}

// LabDecoder converts a PCS-encoded coordinate into a float Lab value.
// The profile codec satisfies this.
type LabDecoder interface {
	DecodeLab(pcs [3]uint16) codec.Lab
}

// displayName joins prefix, name and suffix with single spaces, omitting
// empty parts: ("PANTONE", "Red", "C") reads "PANTONE Red C".
func displayName(info codec.NamedColorInfo) string {
	var b strings.Builder
	if info.Prefix != "" {
		b.WriteString(info.Prefix)
		b.WriteByte(' ')
	}
	b.WriteString(info.Name)
	if info.Suffix != "" {
		b.WriteByte(' ')
		b.WriteString(info.Suffix)
	}
	return b.String()
}

// Extract walks the codec's named-color list in order and returns one
// swatch per usable entry. Entries that cannot be fetched, or whose name
// is not valid UTF-8 even after repair, are dropped; the rest keep the
// list's native order, duplicates included.
func Extract(dec LabDecoder, list codec.NamedColorList) []Swatch {
	count := list.Count()
	swatches := make([]Swatch, 0, count)
	for i := 0; i < count; i++ {
		info, ok := list.Info(i)
		if !ok {
			continue
		}
		name := displayName(info)
		if !utf8.ValidString(name) {
			fixed, err := textfix.Repair(name)
			if err != nil {
				continue
			}
			name = fixed
		}
		swatches = append(swatches, Swatch{
			Name:  name,
			Value: dec.DecodeLab(info.PCS),
		})
	}
	return swatches
}
