package namedcolor

import (
	"math"
	"testing"

	"github.com/chromakit/iccmeta/codec"
)

// fakeList serves canned entries; a nil entry simulates a fetch failure.
type fakeList struct {
	entries []*codec.NamedColorInfo
}

func (l *fakeList) Count() int { return len(l.entries) }

func (l *fakeList) Info(index int) (codec.NamedColorInfo, bool) {
	if l.entries[index] == nil {
		return codec.NamedColorInfo{}, false
	}
	return *l.entries[index], true
}

type v4Decoder struct{}

func (v4Decoder) DecodeLab(pcs [3]uint16) codec.Lab {
	return codec.LabFromEncoded(pcs)
}

func TestExtract(t *testing.T) {
	white := [3]uint16{0xffff, 0x8080, 0x8080}

	t.Run("assembles prefix name suffix", func(t *testing.T) {
		list := &fakeList{entries: []*codec.NamedColorInfo{
			{Name: "Red", Prefix: "PANTONE", Suffix: "C", PCS: white},
		}}
		got := Extract(v4Decoder{}, list)
		if len(got) != 1 {
			t.Fatalf("Extract returned %d swatches, want 1", len(got))
		}
		if got[0].Name != "PANTONE Red C" {
			t.Fatalf("swatch name = %q, want %q", got[0].Name, "PANTONE Red C")
		}
		if math.Abs(got[0].Value.L-100) > 0.01 {
			t.Fatalf("swatch L = %f, want 100", got[0].Value.L)
		}
	})

	t.Run("empty prefix and suffix add no spaces", func(t *testing.T) {
		list := &fakeList{entries: []*codec.NamedColorInfo{
			{Name: "Cyan", PCS: white},
			{Name: "Blue", Suffix: "M", PCS: white},
		}}
		got := Extract(v4Decoder{}, list)
		if got[0].Name != "Cyan" || got[1].Name != "Blue M" {
			t.Fatalf("swatch names = %q, %q", got[0].Name, got[1].Name)
		}
	})

	t.Run("fetch failure skips entry, order kept", func(t *testing.T) {
		list := &fakeList{entries: []*codec.NamedColorInfo{
			{Name: "First", PCS: white},
			nil,
			{Name: "Third", PCS: white},
		}}
		got := Extract(v4Decoder{}, list)
		if len(got) != 2 {
			t.Fatalf("Extract returned %d swatches, want 2", len(got))
		}
		if got[0].Name != "First" || got[1].Name != "Third" {
			t.Fatalf("swatch names = %q, %q", got[0].Name, got[1].Name)
		}
	})

	t.Run("legacy bytes are repaired", func(t *testing.T) {
		list := &fakeList{entries: []*codec.NamedColorInfo{
			{Name: "TRUMATCH\xae 1-a", PCS: white},
		}}
		got := Extract(v4Decoder{}, list)
		if len(got) != 1 || got[0].Name != "TRUMATCH® 1-a" {
			t.Fatalf("Extract = %+v", got)
		}
	})

	t.Run("irreparable names are dropped", func(t *testing.T) {
		list := &fakeList{entries: []*codec.NamedColorInfo{
			{Name: "Good", PCS: white},
			{Name: "Bad\xff\xfe", PCS: white},
		}}
		got := Extract(v4Decoder{}, list)
		if len(got) != 1 || got[0].Name != "Good" {
			t.Fatalf("Extract = %+v", got)
		}
	})

	t.Run("duplicates are preserved", func(t *testing.T) {
		list := &fakeList{entries: []*codec.NamedColorInfo{
			{Name: "Spot", PCS: white},
			{Name: "Spot", PCS: white},
		}}
		if got := Extract(v4Decoder{}, list); len(got) != 2 {
			t.Fatalf("Extract returned %d swatches, want 2", len(got))
		}
	})
}
