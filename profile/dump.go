package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chromakit/iccmeta/i18n"
)

// String renders a human-readable summary of the profile: version,
// default text of each localized field, metadata and named colors.
// Labels go through the i18n catalog so frontends can show the dump
// directly.
func (p *Profile) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s:\t%.1f\n", i18n.T("Version"), p.Version())

	for f := FieldDescription; f < fieldCount; f++ {
		text, err := p.Text(f, "")
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%s:\t%s\n", i18n.T(f.String()), text)
	}

	if meta := p.Metadata(); len(meta) > 0 {
		fmt.Fprintf(&b, "%s:\n", i18n.T("Metadata"))
		keys := make([]string, 0, len(meta))
		for key := range meta {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(&b, "  %s=%s\n", key, meta[key])
		}
	}

	if swatches := p.NamedColors(); len(swatches) > 0 {
		fmt.Fprintf(&b, "%s:\n", i18n.N("Named color", "Named colors", len(swatches)))
		for i, sw := range swatches {
			fmt.Fprintf(&b, "  %03d:\t%s\tL:%.2f a:%.3f b:%.3f\n",
				i, sw.Name, sw.Value.L, sw.Value.A, sw.Value.B)
		}
	}

	return b.String()
}
