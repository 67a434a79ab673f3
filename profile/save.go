package profile

import (
	"fmt"

	"github.com/chromakit/iccmeta/codec"
	"github.com/chromakit/iccmeta/mlutext"
)

// Save flushes the metadata dictionary and all four localized fields to
// the codec, in that order. It stops at the first field the codec
// rejects and reports it wrapped in ErrCannotWriteField; fields already
// written stay written (no rollback — the caller decides whether the
// codec state is still worth serializing).
func (p *Profile) Save() error {
	if err := p.saveMetadata(); err != nil {
		return err
	}
	return p.saveTranslations()
}

func (p *Profile) saveMetadata() error {
	// Untouched metadata stays whatever the profile already holds.
	if !p.metadataRead {
		return nil
	}
	if len(p.metadata) == 0 {
		p.codec.DeleteTag(codec.SigMeta)
		return nil
	}
	if err := p.codec.WriteDict(p.metadata); err != nil {
		return fmt.Errorf("writing metadata dictionary: %w", err)
	}
	return nil
}

func (p *Profile) saveTranslations() error {
	for f := FieldDescription; f < fieldCount; f++ {
		if err := p.saveField(f); err != nil {
			return err
		}
	}
	return nil
}

func (p *Profile) saveField(f Field) error {
	payload := mlutext.Build(p.mluc[f])
	sig := f.writeSig()

	if payload.Delete {
		p.codec.DeleteTag(sig)
		return nil
	}

	// One-way ratchet: legacy text types cannot hold more than one
	// translation, so multi-locale fields force a multilingual profile.
	if mlutext.NeedsPromotion(payload, p.codec.Version()) {
		p.codec.SetVersion(mlutext.MultilingualVersion)
	}

	if err := p.codec.WriteMLU(sig, payload.Translations); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCannotWriteField, f, err)
	}

	// The Apple 'dscm' shadow copy would now disagree with the freshly
	// written description, so it is dropped rather than left stale.
	if f == FieldDescription {
		p.codec.DeleteTag(codec.SigProfileDescriptionML)
	}
	return nil
}
