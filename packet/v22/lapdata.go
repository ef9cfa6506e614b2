package v22

import (
	"github.com/psybedev/racetel/packet"
	"github.com/psybedev/racetel/packet/wire"
)

const lapDataSlotSize = 48
const lapDataBodySize = lapDataSlotSize * 22

// DecodeLapData reads all 22 per-driver slots, always at full width, and
// only afterwards drops the slots whose result-status marks them absent.
func DecodeLapData(h packet.Header, raw []byte) (out packet.LapDataPacket, err error) {
	defer wire.Guard(&err)

	body := raw[packet.HeaderSizeV22:]
	if len(body) != lapDataBodySize {
		return packet.LapDataPacket{}, packet.NewInvalidPacketError("invalid lap data packet length")
	}

	r := wire.NewReader(body)
	out.Hdr = h

	for i := 0; i < 22; i++ {
		slot := packet.LapDataSlot{
			LastLapTimeMs:       r.U32(),
			CurrentLapTimeMs:    r.U32(),
			Sector1TimeMs:       uint32(r.U16()),
			Sector2TimeMs:       uint32(r.U16()),
			DeltaToCarAheadMs:   r.U16(),
			DeltaToRaceLeaderMs: r.U16(),
			LapDistance:         r.F32(),
			TotalDistance:       r.F32(),
			SafetyCarDelta:      r.F32(),
			CarPosition:         r.U8(),
			CurrentLapNum:       r.U8(),
			PitStatus:           packet.PitStatusFromCode(r.U8()),
			NumPitStops:         r.U8(),
			Sector:              r.U8(),
			CurrentLapInvalid:   r.Bool8(),
			Penalties:           r.U8(),
			TotalWarnings:       r.U8(),
			CornerCuttingWarnings:       r.U8(),
			NumUnservedDriveThroughPens: r.U8(),
			NumUnservedStopGoPens:       r.U8(),
			GridPosition:          r.U8(),
			DriverStatus:          packet.DriverStatusFromCode(r.U8()),
			ResultStatus:          packet.ResultStatusFromCode(r.U8()),
			PitLaneTimerActive:    r.Bool8(),
			PitLaneTimeInLaneMs:   r.U16(),
			PitStopTimerMs:        r.U16(),
			PitStopShouldServePen: r.Bool8(),
		}

		if !slot.ResultStatus.IsAbsentSlot() {
			s := slot
			out.Slots[i] = &s
		}
	}

	return out, nil
}
