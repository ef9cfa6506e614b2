package v22

import (
	"time"

	"github.com/psybedev/racetel/packet"
	"github.com/psybedev/racetel/packet/wire"
)

const classificationResultSize = 45
const finalClassificationBodySize = 1 + classificationResultSize*22

// DecodeFinalClassification is length-strict: a short or long body
// fails outright rather than decoding a partial slot array.
func DecodeFinalClassification(h packet.Header, raw []byte) (out packet.FinalClassificationPacket, err error) {
	defer wire.Guard(&err)

	body := raw[packet.HeaderSizeV22:]
	if len(body) != finalClassificationBodySize {
		return packet.FinalClassificationPacket{}, packet.NewInvalidPacketError("invalid final classification packet length")
	}

	r := wire.NewReader(body)
	out.Hdr = h
	out.NumCars = r.U8()

	for i := 0; i < 22; i++ {
		res := packet.ClassificationResult{
			Position:     r.U8(),
			NumLaps:      r.U8(),
			GridPosition: r.U8(),
			Points:       r.U8(),
			NumPitStops:  r.U8(),
			ResultStatus: packet.ResultStatusFromCode(r.U8()),
		}
		res.BestLapTimeMs = r.U32()
		res.TotalRaceTimeWithoutPenalties = time.Duration(r.F64() * float64(time.Second))
		res.PenaltyTimeS = r.U8()
		res.NumPenalties = r.U8()
		res.NumTyreStints = r.U8()

		var actual [8]packet.TyreCompoundActual
		var visual [8]packet.TyreCompoundVisual
		var endLaps [8]uint8
		for j := 0; j < 8; j++ {
			actual[j] = packet.TyreCompoundActualFromCode(r.U8())
		}
		for j := 0; j < 8; j++ {
			visual[j] = packet.TyreCompoundVisualFromCode(r.U8())
		}
		for j := 0; j < 8; j++ {
			endLaps[j] = r.U8()
		}
		for j := 0; j < 8; j++ {
			res.TyreStints[j] = packet.TyreStint{EndLap: endLaps[j], ActualCompound: actual[j], VisualCompound: visual[j]}
		}

		out.Results[i] = res
	}

	return out, nil
}
