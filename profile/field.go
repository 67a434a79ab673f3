package profile

import "github.com/chromakit/iccmeta/codec"

// Field identifies one localized metadata field of a profile. Each field
// owns an independent locale-key → text cache.
type Field int

const (
	FieldDescription Field = iota
	FieldCopyright
	FieldManufacturer
	FieldModel
	fieldCount
)

// String returns the field's English display name. Callers presenting it
// to users localize it with i18n.T.
func (f Field) String() string {
	switch f {
	case FieldDescription:
		return "Description"
	case FieldCopyright:
		return "Copyright"
	case FieldManufacturer:
		return "Manufacturer"
	case FieldModel:
		return "Model"
	}
	return "Unknown"
}

// readSigs lists each field's candidate tag signatures in order of
// preference. The description has a legacy Apple shadow tag that, when
// present, carries the better multilingual data and is read first.
func (f Field) readSigs() []codec.Signature {
	switch f {
	case FieldDescription:
		return []codec.Signature{codec.SigProfileDescriptionML, codec.SigProfileDescription}
	case FieldCopyright:
		return []codec.Signature{codec.SigCopyright}
	case FieldManufacturer:
		return []codec.Signature{codec.SigDeviceMfgDesc}
	case FieldModel:
		return []codec.Signature{codec.SigDeviceModelDesc}
	}
	return nil
}

// writeSig is the signature a field is written back under.
func (f Field) writeSig() codec.Signature {
	switch f {
	case FieldDescription:
		return codec.SigProfileDescription
	case FieldCopyright:
		return codec.SigCopyright
	case FieldManufacturer:
		return codec.SigDeviceMfgDesc
	case FieldModel:
		return codec.SigDeviceModelDesc
	}
	return 0
}
