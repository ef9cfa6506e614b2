package packet

import "fmt"

// InvalidPacketError is returned whenever a datagram cannot be decoded:
// too few bytes, an unsupported format tag, a wrong fixed body length, or
// an unrecognised packet-id. It carries a short human-readable reason and
// never wraps a lower-level cause — decoding is a pure, local operation.
type InvalidPacketError struct {
	Reason string
}

func (e *InvalidPacketError) Error() string {
	return fmt.Sprintf("invalid packet: %s", e.Reason)
}

func invalidPacket(format string, args ...interface{}) error {
	return &InvalidPacketError{Reason: fmt.Sprintf(format, args...)}
}

// NewInvalidPacketError lets the v22/v23 body decoders report a malformed
// packet with the same typed error the header decoder uses.
func NewInvalidPacketError(format string, args ...interface{}) error {
	return invalidPacket(format, args...)
}
