package codec

import (
	"encoding/binary"
	"testing"

	"github.com/psybedev/racetel/packet"
)

func buildV23Header(packetID uint8, sessionUID uint64) []byte {
	b := make([]byte, packet.HeaderSizeV23)
	binary.LittleEndian.PutUint16(b[0:2], uint16(packet.FormatV23))
	b[2] = 23
	b[3] = 1
	b[4] = 23
	b[5] = 1
	b[6] = packetID
	binary.LittleEndian.PutUint64(b[7:15], sessionUID)
	binary.LittleEndian.PutUint32(b[19:23], 1)
	binary.LittleEndian.PutUint32(b[23:27], 1)
	b[28] = 255
	return b
}

// TestDecodeRejectsTruncatedFinalClassification is scenario S6: a
// FinalClassification packet truncated to 1000 bytes (header + 971-byte
// body, short of the published 991) must fail, never decode partially.
func TestDecodeRejectsTruncatedFinalClassification(t *testing.T) {
	header := buildV23Header(uint8(packet.PacketIDFinalClassification), 7)
	raw := append(header, make([]byte, 1000-len(header))...)

	if _, err := Decode(raw); err == nil {
		t.Fatal("expected InvalidPacket for a truncated final classification body")
	}
}

func TestDecodeRoutesOpaquePacketsForBothFormats(t *testing.T) {
	v23Header := buildV23Header(uint8(packet.PacketIDMotionEx), 1)
	raw := append(v23Header, make([]byte, 200)...)

	p, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	op, ok := p.(packet.OpaquePacket)
	if !ok {
		t.Fatalf("Decode() returned %T, want packet.OpaquePacket", p)
	}
	if op.ID != packet.PacketIDMotionEx {
		t.Errorf("ID = %v, want PacketIDMotionEx", op.ID)
	}
}

func TestDecodeRejectsUnsupportedPacketIDForFormat(t *testing.T) {
	// V22 omits only TyreSets and MotionEx.
	header := make([]byte, packet.HeaderSizeV22)
	binary.LittleEndian.PutUint16(header[0:2], uint16(packet.FormatV22))
	header[5] = uint8(packet.PacketIDTyreSets)
	header[23] = 255

	if _, err := Decode(header); err == nil {
		t.Fatal("expected an error for TyreSets on format 2022")
	}
}

// TestDecodeRoutesSessionHistoryOnV22 checks that SessionHistory, which
// F1 22 does send despite being introduced alongside TyreSets/MotionEx
// in the public docs, decodes successfully under format 2022.
func TestDecodeRoutesSessionHistoryOnV22(t *testing.T) {
	header := make([]byte, packet.HeaderSizeV22)
	binary.LittleEndian.PutUint16(header[0:2], uint16(packet.FormatV22))
	header[5] = uint8(packet.PacketIDSessionHistory)
	header[23] = 255
	raw := append(header, make([]byte, 1155)...)

	p, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if _, ok := p.(packet.SessionHistoryPacket); !ok {
		t.Fatalf("Decode() returned %T, want packet.SessionHistoryPacket", p)
	}
}

func TestDecodeHeaderDelegates(t *testing.T) {
	raw := buildV23Header(uint8(packet.PacketIDSession), 99)
	h, err := DecodeHeader(raw)
	if err != nil {
		t.Fatalf("DecodeHeader() error = %v", err)
	}
	if h.SessionUID != 99 {
		t.Errorf("SessionUID = %d, want 99", h.SessionUID)
	}
}
