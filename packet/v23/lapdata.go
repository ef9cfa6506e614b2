package v23

import (
	"github.com/psybedev/racetel/packet"
	"github.com/psybedev/racetel/packet/wire"
)

const lapDataSlotSize = 52
const lapDataBodySize = lapDataSlotSize * 22

// DecodeLapData is the F1 23 counterpart of v22.DecodeLapData. It adds
// the sector time minute-overflow bytes and the time-trial
// personal-best/rival correlation indices.
func DecodeLapData(h packet.Header, raw []byte) (out packet.LapDataPacket, err error) {
	defer wire.Guard(&err)

	body := raw[packet.HeaderSizeV23:]
	if len(body) != lapDataBodySize {
		return packet.LapDataPacket{}, packet.NewInvalidPacketError("invalid lap data packet length")
	}

	r := wire.NewReader(body)
	out.Hdr = h

	for i := 0; i < 22; i++ {
		lastLap := r.U32()
		currentLap := r.U32()
		sector1Ms := uint32(r.U16())
		sector1Min := uint32(r.U8())
		sector2Ms := uint32(r.U16())
		sector2Min := uint32(r.U8())

		slot := packet.LapDataSlot{
			LastLapTimeMs:       lastLap,
			CurrentLapTimeMs:    currentLap,
			Sector1TimeMs:       sector1Min*60000 + sector1Ms,
			Sector2TimeMs:       sector2Min*60000 + sector2Ms,
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
		slot.TimeTrialPersonalBestCarIdx = r.U8()
		slot.TimeTrialRivalCarIdx = r.U8()

		if !slot.ResultStatus.IsAbsentSlot() {
			s := slot
			out.Slots[i] = &s
		}
	}

	return out, nil
}
