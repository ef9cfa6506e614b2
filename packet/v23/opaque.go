package v23

import "github.com/psybedev/racetel/packet"

// DecodeOpaque handles the packet kinds the reducer never consumes
// (Motion, CarSetups, CarDamage, TyreSets, MotionEx): the header is already decoded, so the
// remaining body is kept verbatim rather than given a field-level type.
func DecodeOpaque(h packet.Header, raw []byte) packet.OpaquePacket {
	body := raw[packet.HeaderSizeV23:]
	cp := make([]byte, len(body))
	copy(cp, body)
	return packet.OpaquePacket{Hdr: h, ID: h.PacketID, Body: cp}
}
