package codec

// Signature is a four-character ICC tag or type signature.
type Signature uint32

// Tag signatures the metadata core reads and writes. The codec may of
// course understand many more; these are the ones this module names.
const (
	// SigProfileDescription is the profile description tag, 'desc'.
	SigProfileDescription Signature = 0x64657363
	// SigProfileDescriptionML is the Apple-specific multilingual
	// description shadow tag, 'dscm'. Read in preference to 'desc',
	// deleted after every description write so no stale copy survives.
	SigProfileDescriptionML Signature = 0x6473636d
	// SigCopyright is the profile copyright tag, 'cprt'.
	SigCopyright Signature = 0x63707274
	// SigDeviceMfgDesc is the device manufacturer description tag, 'dmnd'.
	SigDeviceMfgDesc Signature = 0x646d6e64
	// SigDeviceModelDesc is the device model description tag, 'dmdd'.
	SigDeviceModelDesc Signature = 0x646d6464
	// SigNamedColor2 is the named color table tag, 'ncl2'.
	SigNamedColor2 Signature = 0x6e636c32
	// SigMeta is the key/value metadata dictionary tag, 'meta'.
	SigMeta Signature = 0x6d657461
)

func printable(b byte) byte {
	if b < 0x20 || b > 0x7e {
		return ' '
	}
	return b
}

// String renders the signature as its four-character code, with
// non-printable bytes masked to spaces.
func (s Signature) String() string {
	return string([]byte{
		printable(byte(s >> 24)),
		printable(byte(s >> 16)),
		printable(byte(s >> 8)),
		printable(byte(s)),
	})
}
