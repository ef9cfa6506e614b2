package packet

import (
	"bytes"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const nonBreakingSpace = rune(0x00A0)

// nbspToSpace rewrites the non-breaking space that some localisations
// embed in driver names to an ordinary space, via the same
// golang.org/x/text/transform machinery the rest of the ecosystem reaches
// for when doing rune-level text surgery instead of a byte-by-byte loop.
var nbspToSpace = runes.Map(func(r rune) rune {
	if r == nonBreakingSpace {
		return rune(0x0020)
	}
	return r
})

// decodeFixedName reads a fixed-width, null-padded UTF-8 string, truncates
// it at the first null byte, decodes it lossily, and normalises the
// non-breaking space to an ordinary space.
func decodeFixedName(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}

	normalized, _, err := transform.Bytes(nbspToSpace, raw)
	if err != nil {
		return string(raw)
	}
	return string(normalized)
}

// DecodeFixedName is the exported form of decodeFixedName, used by the
// v22/v23 body decoders to read the 48-byte null-padded name fields.
func DecodeFixedName(raw []byte) string { return decodeFixedName(raw) }
