package v22

import (
	"github.com/psybedev/racetel/packet"
	"github.com/psybedev/racetel/packet/wire"
)

// sessionHistoryMinSize is checked with >=, not ==, because the fixed
// 100-row/8-stint arrays are always fully present regardless of how many
// laps have actually been driven.
const sessionHistoryMinSize = 1155

const (
	lapValidBit     = 1 << 0
	sector1ValidBit = 1 << 1
	sector2ValidBit = 1 << 2
	sector3ValidBit = 1 << 3
)

// DecodeSessionHistory reads the F1 22 SessionHistory packet. F1 22 only
// omits TyreSets and MotionEx; SessionHistory was already present.
func DecodeSessionHistory(h packet.Header, raw []byte) (out packet.SessionHistoryPacket, err error) {
	defer wire.Guard(&err)

	if len(raw) < sessionHistoryMinSize {
		return packet.SessionHistoryPacket{}, packet.NewInvalidPacketError("invalid session history packet length")
	}

	body := raw[packet.HeaderSizeV22:]
	r := wire.NewReader(body)
	out.Hdr = h
	out.CarIdx = r.U8()
	out.NumLaps = r.U8()
	out.NumTyreStints = r.U8()
	out.BestLapTimeLapNum = r.U8()
	out.BestSector1LapNum = r.U8()
	out.BestSector2LapNum = r.U8()
	out.BestSector3LapNum = r.U8()

	for i := 0; i < 100; i++ {
		lapTimeMs := r.U32()
		s1Ms := uint32(r.U16())
		s1Min := uint32(r.U8())
		s2Ms := uint32(r.U16())
		s2Min := uint32(r.U8())
		s3Ms := uint32(r.U16())
		s3Min := uint32(r.U8())
		flags := r.U8()

		out.Laps[i] = packet.LapHistoryData{
			LapTimeMs:     lapTimeMs,
			Sector1TimeMs: s1Min*60000 + s1Ms,
			Sector2TimeMs: s2Min*60000 + s2Ms,
			Sector3TimeMs: s3Min*60000 + s3Ms,
			LapValid:      flags&lapValidBit != 0,
			Sector1Valid:  flags&sector1ValidBit != 0,
			Sector2Valid:  flags&sector2ValidBit != 0,
			Sector3Valid:  flags&sector3ValidBit != 0,
		}
	}

	for i := 0; i < 8; i++ {
		out.TyreStints[i] = packet.TyreStintHistory{
			EndLap:         r.U8(),
			ActualCompound: packet.TyreCompoundActualFromCode(r.U8()),
			VisualCompound: packet.TyreCompoundVisualFromCode(r.U8()),
		}
	}

	return out, nil
}
