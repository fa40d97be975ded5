package crypto

// EXMLKey is the hard-coded 24-byte 3DES key shared by every EXML container.
// It is read-only; nothing outside this package should copy or print it.
var EXMLKey = [24]byte{
	0x59, 0x6d, 0x5a, 0x77, 0x5a, 0x6c, 0x51, 0x72,
	0x51, 0x33, 0x56, 0x34, 0x64, 0x56, 0x6c, 0x74,
	0x4e, 0x54, 0x41, 0x72, 0x57, 0x45, 0x39, 0x73,
}
