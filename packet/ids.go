package packet

// PacketID enumerates the packet kinds on the wire. Unlike the other
// enumerations in this package, an unrecognised numeric code is a hard
// decode failure rather than an Unknown variant — there is no sensible
// way to route an unidentified packet body.
type PacketID uint8

const (
	PacketIDMotion PacketID = iota
	PacketIDSession
	PacketIDLapData
	PacketIDEvent
	PacketIDParticipants
	PacketIDCarSetups
	PacketIDCarTelemetry
	PacketIDCarStatus
	PacketIDFinalClassification
	PacketIDLobbyInfo
	PacketIDCarDamage
	PacketIDSessionHistory
	PacketIDTyreSets
	PacketIDMotionEx
)

func (id PacketID) String() string {
	switch id {
	case PacketIDMotion:
		return "Motion"
	case PacketIDSession:
		return "Session"
	case PacketIDLapData:
		return "LapData"
	case PacketIDEvent:
		return "Event"
	case PacketIDParticipants:
		return "Participants"
	case PacketIDCarSetups:
		return "CarSetups"
	case PacketIDCarTelemetry:
		return "CarTelemetry"
	case PacketIDCarStatus:
		return "CarStatus"
	case PacketIDFinalClassification:
		return "FinalClassification"
	case PacketIDLobbyInfo:
		return "LobbyInfo"
	case PacketIDCarDamage:
		return "CarDamage"
	case PacketIDSessionHistory:
		return "SessionHistory"
	case PacketIDTyreSets:
		return "TyreSets"
	case PacketIDMotionEx:
		return "MotionEx"
	default:
		return "Unrecognised"
	}
}

// packetIDFromCode maps the wire byte to a PacketID, validating it against
// the set supported by the given format. V22 re-numbers nothing but omits
// TyreSets and MotionEx (codes 12 and 13).
func packetIDFromCode(code uint8, format Format) (PacketID, error) {
	if code > uint8(PacketIDMotionEx) {
		return 0, invalidPacket("unknown packet-id %d", code)
	}

	id := PacketID(code)
	if format == FormatV22 && (id == PacketIDTyreSets || id == PacketIDMotionEx) {
		return 0, invalidPacket("packet-id %s is not present in format 2022", id)
	}

	return id, nil
}
