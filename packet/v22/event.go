package v22

import (
	"time"

	"github.com/psybedev/racetel/packet"
	"github.com/psybedev/racetel/packet/wire"
)

// DecodeEvent reads the 4-byte ASCII tag and dispatches to the matching
// variant parser. An unrecognised tag decodes to Unknown without error —
// only a short read panics back through wire.Guard.
func DecodeEvent(h packet.Header, raw []byte) (out packet.EventPacket, err error) {
	defer wire.Guard(&err)

	body := raw[packet.HeaderSizeV22:]
	r := wire.NewReader(body)

	var code packet.EventCode
	copy(code[:], r.Bytes(4))
	out.Hdr = h
	out.Code = code

	switch code {
	case packet.EventCodeSessionStarted, packet.EventCodeSessionEnded,
		packet.EventCodeChequeredFlag, packet.EventCodeLightsOut,
		packet.EventCodeStopGoServed, packet.EventCodeDRSEnabled,
		packet.EventCodeDRSDisabled:
		out.Detail = nil
	case packet.EventCodeFastestLap:
		out.Detail = packet.FastestLap{VehicleIdx: r.U8(), LapTime: time.Duration(r.F32() * float32(time.Second))}
	case packet.EventCodeRetirement:
		out.Detail = packet.Retirement{VehicleIdx: r.U8()}
	case packet.EventCodeTeamMateInPits:
		out.Detail = packet.TeamMateInPits{VehicleIdx: r.U8()}
	case packet.EventCodeRaceWinner:
		out.Detail = packet.RaceWinner{VehicleIdx: r.U8()}
	case packet.EventCodePenaltyIssued:
		out.Detail = packet.PenaltyIssued{
			PenaltyType:      packet.PenaltyTypeFromCode(r.U8()),
			InfringementType: packet.InfringementTypeFromCode(r.U8()),
			VehicleIdx:       r.U8(),
			OtherVehicleIdx:  r.U8(),
			Time:             r.U8(),
			LapNum:           r.U8(),
			PlacesGained:     r.U8(),
		}
	case packet.EventCodeSpeedTrap:
		out.Detail = packet.SpeedTrap{
			VehicleIdx:        r.U8(),
			Speed:             r.F32(),
			IsOverallFastest:  r.Bool8(),
			IsDriverFastest:   r.Bool8(),
			FastestVehicleIdx: r.U8(),
			FastestSpeed:      r.F32(),
		}
	case packet.EventCodeStartLights:
		out.Detail = packet.StartLights{NumLights: r.U8()}
	case packet.EventCodeDriveThroughServed:
		out.Detail = packet.DriveThroughServed{VehicleIdx: r.U8()}
	case packet.EventCodeFlashback:
		out.Detail = packet.Flashback{FrameIdentifier: r.U32(), SessionTime: r.F32()}
	case packet.EventCodeButton:
		out.Detail = packet.Button{ButtonMask: r.U32()}
	default:
		out.Detail = packet.Unknown{Code: code}
	}

	return out, nil
}
