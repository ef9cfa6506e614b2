package v22

import "github.com/psybedev/racetel/packet"

// DecodeOpaque handles the packet kinds the reducer never consumes
// (Motion, CarSetups, CarDamage): the header is already decoded, so the
// remaining body is kept verbatim rather than given a field-level type.
func DecodeOpaque(h packet.Header, raw []byte) packet.OpaquePacket {
	body := raw[packet.HeaderSizeV22:]
	cp := make([]byte, len(body))
	copy(cp, body)
	return packet.OpaquePacket{Hdr: h, ID: h.PacketID, Body: cp}
}
