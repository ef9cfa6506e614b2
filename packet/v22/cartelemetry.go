package v22

import (
	"github.com/psybedev/racetel/packet"
	"github.com/psybedev/racetel/packet/wire"
)

const carTelemetryCarSize = 58
const carTelemetryBodySize = carTelemetryCarSize*22 + 3

func DecodeCarTelemetry(h packet.Header, raw []byte) (out packet.CarTelemetryPacket, err error) {
	defer wire.Guard(&err)

	body := raw[packet.HeaderSizeV22:]
	if len(body) != carTelemetryBodySize {
		return packet.CarTelemetryPacket{}, packet.NewInvalidPacketError("invalid car telemetry packet length")
	}

	r := wire.NewReader(body)
	out.Hdr = h

	for i := 0; i < 22; i++ {
		c := packet.CarTelemetry{
			Speed:            r.U16(),
			Throttle:         r.F32(),
			Steer:            r.F32(),
			Brake:            r.F32(),
			Clutch:           r.U8(),
			Gear:             r.I8(),
			EngineRPM:        r.U16(),
			DRS:              r.Bool8(),
			RevLightsPercent: r.U8(),
		}
		for j := 0; j < 4; j++ {
			c.BrakesTemperature[j] = r.U16()
		}
		for j := 0; j < 4; j++ {
			c.TyresSurfaceTemperature[j] = r.U8()
		}
		for j := 0; j < 4; j++ {
			c.TyresInnerTemperature[j] = r.U8()
		}
		c.EngineTemperature = r.U16()
		for j := 0; j < 4; j++ {
			c.TyresPressure[j] = r.F32()
		}
		for j := 0; j < 4; j++ {
			c.SurfaceType[j] = r.U8()
		}
		out.Cars[i] = c
	}

	out.MFDPanelIndex = r.U8()
	out.MFDPanelIndexSecondary = r.U8()
	out.SuggestedGear = r.I8()

	return out, nil
}
