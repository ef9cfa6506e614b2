package v23

import (
	"github.com/psybedev/racetel/packet"
	"github.com/psybedev/racetel/packet/wire"
)

const carStatusCarSize = 45
const carStatusBodySize = carStatusCarSize * 22

func DecodeCarStatus(h packet.Header, raw []byte) (out packet.CarStatusPacket, err error) {
	defer wire.Guard(&err)

	body := raw[packet.HeaderSizeV23:]
	if len(body) != carStatusBodySize {
		return packet.CarStatusPacket{}, packet.NewInvalidPacketError("invalid car status packet length")
	}

	r := wire.NewReader(body)
	out.Hdr = h

	for i := 0; i < 22; i++ {
		out.Cars[i] = packet.CarStatus{
			TractionControl:       r.U8(),
			AntiLockBrakes:        r.Bool8(),
			FuelMix:                r.U8(),
			FrontBrakeBias:        r.U8(),
			FuelInTank:            r.F32(),
			FuelCapacity:          r.F32(),
			FuelRemainingLaps:     r.F32(),
			MaxRPM:                r.U16(),
			IdleRPM:               r.U16(),
			MaxGears:              r.U8(),
			DRSAllowed:            r.Bool8(),
			DRSActivationDistance: r.U16(),
			ActualTyreCompound:    packet.TyreCompoundActualFromCode(r.U8()),
			VisualTyreCompound:    packet.TyreCompoundVisualFromCode(r.U8()),
			TyresAgeLaps:          r.U8(),
			VehicleFIAFlag:        r.I8(),
			ERSStoreEnergy:        r.F32(),
			ERSDeployMode:         r.U8(),
			ERSHarvestedThisLapMGUK: r.F32(),
			ERSHarvestedThisLapMGUH: r.F32(),
			ERSDeployedThisLap:      r.F32(),
		}
	}

	return out, nil
}
