// Package codec is the single entry point that knows about every packet
// format. It exists as its own package, separate from packet, so that
// packet/v22 and packet/v23 can import the shared types in packet without
// creating an import cycle back through the dispatcher.
package codec

import (
	"github.com/psybedev/racetel/packet"
	"github.com/psybedev/racetel/packet/v22"
	"github.com/psybedev/racetel/packet/v23"
)

// DecodeHeader re-exports packet.DecodeHeader for callers that only need
// the cheap header peek (session/packet-id filtering) without paying for
// a full body decode.
func DecodeHeader(data []byte) (packet.Header, error) {
	return packet.DecodeHeader(data)
}

// Decode peeks the header, then routes to the matching format's body
// decoder for the packet-id found there. Every arm consumes the header
// itself plus exactly the published body size; trailing or missing bytes
// are a hard failure.
func Decode(data []byte) (packet.Packet, error) {
	h, err := packet.DecodeHeader(data)
	if err != nil {
		return nil, err
	}

	switch h.Format {
	case packet.FormatV22:
		return decodeV22(h, data)
	case packet.FormatV23:
		return decodeV23(h, data)
	default:
		return nil, packet.NewInvalidPacketError("expected packet format 2022 or 2023, got %d", h.Format)
	}
}

func decodeV22(h packet.Header, data []byte) (packet.Packet, error) {
	switch h.PacketID {
	case packet.PacketIDMotion, packet.PacketIDCarSetups, packet.PacketIDCarDamage:
		return v22.DecodeOpaque(h, data), nil
	case packet.PacketIDSession:
		return v22.DecodeSession(h, data)
	case packet.PacketIDLapData:
		return v22.DecodeLapData(h, data)
	case packet.PacketIDEvent:
		return v22.DecodeEvent(h, data)
	case packet.PacketIDParticipants:
		return v22.DecodeParticipants(h, data)
	case packet.PacketIDCarTelemetry:
		return v22.DecodeCarTelemetry(h, data)
	case packet.PacketIDCarStatus:
		return v22.DecodeCarStatus(h, data)
	case packet.PacketIDFinalClassification:
		return v22.DecodeFinalClassification(h, data)
	case packet.PacketIDLobbyInfo:
		return v22.DecodeLobbyInfo(h, data)
	case packet.PacketIDSessionHistory:
		return v22.DecodeSessionHistory(h, data)
	default:
		return nil, packet.NewInvalidPacketError("packet-id %s is not present in format 2022", h.PacketID)
	}
}

func decodeV23(h packet.Header, data []byte) (packet.Packet, error) {
	switch h.PacketID {
	case packet.PacketIDMotion, packet.PacketIDCarSetups, packet.PacketIDCarDamage,
		packet.PacketIDTyreSets, packet.PacketIDMotionEx:
		return v23.DecodeOpaque(h, data), nil
	case packet.PacketIDSession:
		return v23.DecodeSession(h, data)
	case packet.PacketIDLapData:
		return v23.DecodeLapData(h, data)
	case packet.PacketIDEvent:
		return v23.DecodeEvent(h, data)
	case packet.PacketIDParticipants:
		return v23.DecodeParticipants(h, data)
	case packet.PacketIDCarTelemetry:
		return v23.DecodeCarTelemetry(h, data)
	case packet.PacketIDCarStatus:
		return v23.DecodeCarStatus(h, data)
	case packet.PacketIDFinalClassification:
		return v23.DecodeFinalClassification(h, data)
	case packet.PacketIDLobbyInfo:
		return v23.DecodeLobbyInfo(h, data)
	case packet.PacketIDSessionHistory:
		return v23.DecodeSessionHistory(h, data)
	default:
		return nil, packet.NewInvalidPacketError("unknown packet-id %d", h.PacketID)
	}
}
