package packet

import (
	"encoding/binary"
	"math"
)

// Format identifies which protocol revision a datagram was produced by.
type Format uint16

const (
	FormatV22 Format = 2022
	FormatV23 Format = 2023
)

// Fixed header sizes, in bytes. Load-bearing for the header-peek
// optimisation: every packet of a given format starts with exactly this
// many bytes before the body.
const (
	HeaderSizeV22 = 24
	HeaderSizeV23 = 29
)

const secondaryPlayerAbsent = 255

// Header is the fixed prefix shared by every packet, decoded once and
// reused both for cheap session/packet-id filtering and as context for
// the body decoders.
type Header struct {
	Format                  Format
	GameYear                uint8 // V23 only; zero on V22
	GameVersionMajor        uint8
	GameVersionMinor        uint8
	PacketVersion           uint8
	PacketID                PacketID
	SessionUID              uint64
	SessionTime             float32
	FrameIdentifier         uint32
	OverallFrameIdentifier  uint32 // V23 only; zero on V22
	PlayerCarIndex          uint8
	SecondaryPlayerCarIndex *uint8 // nil when the wire value is 255
}

// DecodeHeader reads the fixed-size prefix of a datagram and returns the
// semantic header. It does not touch the body. Fails if fewer bytes than
// the format's header size remain, or if the format tag is unrecognised.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < 2 {
		return Header{}, invalidPacket("packet too small")
	}

	format := Format(binary.LittleEndian.Uint16(data[0:2]))

	switch format {
	case FormatV22:
		return decodeHeaderV22(data)
	case FormatV23:
		return decodeHeaderV23(data)
	default:
		return Header{}, invalidPacket("expected packet format 2022 or 2023, got %d", format)
	}
}

func decodeHeaderV22(data []byte) (Header, error) {
	if len(data) < HeaderSizeV22 {
		return Header{}, invalidPacket("packet too small")
	}

	h := Header{
		Format:           FormatV22,
		GameVersionMajor: data[2],
		GameVersionMinor: data[3],
		PacketVersion:    data[4],
		SessionUID:       binary.LittleEndian.Uint64(data[6:14]),
		SessionTime:      decodeFloat32(data[14:18]),
		FrameIdentifier:  binary.LittleEndian.Uint32(data[18:22]),
		PlayerCarIndex:   data[22],
	}

	pid, err := packetIDFromCode(data[5], FormatV22)
	if err != nil {
		return Header{}, err
	}
	h.PacketID = pid
	h.SecondaryPlayerCarIndex = optionalU8(data[23])

	return h, nil
}

func decodeHeaderV23(data []byte) (Header, error) {
	if len(data) < HeaderSizeV23 {
		return Header{}, invalidPacket("packet too small")
	}

	h := Header{
		Format:                 FormatV23,
		GameYear:               data[2],
		GameVersionMajor:       data[3],
		GameVersionMinor:       data[4],
		PacketVersion:          data[5],
		SessionUID:             binary.LittleEndian.Uint64(data[7:15]),
		SessionTime:            decodeFloat32(data[15:19]),
		FrameIdentifier:        binary.LittleEndian.Uint32(data[19:23]),
		OverallFrameIdentifier: binary.LittleEndian.Uint32(data[23:27]),
		PlayerCarIndex:         data[27],
	}

	pid, err := packetIDFromCode(data[6], FormatV23)
	if err != nil {
		return Header{}, err
	}
	h.PacketID = pid
	h.SecondaryPlayerCarIndex = optionalU8(data[28])

	return h, nil
}

func optionalU8(v uint8) *uint8 {
	if v == secondaryPlayerAbsent {
		return nil
	}
	return &v
}

func decodeFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
