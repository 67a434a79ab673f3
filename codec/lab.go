package codec

// Lab is a device-independent CIE L*a*b* color value.
type Lab struct {
	L float64
	A float64
	B float64
}

// PCS Lab encodings. ICC v4 stores L* 0..100 over the full 16-bit range
// and a*/b* -128..+127 with 0x8080 as zero; v2 reserves the top byte
// (L* 0..100 maps to 0..0xff00, a*/b* -128..+127.996 with zero at 0x8000).

// LabFromEncoded converts a v4 PCS-encoded triple to float Lab.
func LabFromEncoded(pcs [3]uint16) Lab {
	return Lab{
		L: float64(pcs[0]) * 100.0 / 65535.0,
		A: float64(pcs[1])/257.0 - 128.0,
		B: float64(pcs[2])/257.0 - 128.0,
	}
}

// LabFromEncodedV2 converts a legacy v2 PCS-encoded triple to float Lab.
func LabFromEncodedV2(pcs [3]uint16) Lab {
	return Lab{
		L: float64(pcs[0]) / 652.80,
		A: float64(pcs[1])/256.0 - 128.0,
		B: float64(pcs[2])/256.0 - 128.0,
	}
}
