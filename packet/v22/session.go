// Package v22 decodes F1 22 packet bodies. Every function here takes the
// header already decoded by the parent package plus the full datagram and
// returns the typed body, or an InvalidPacketError.
package v22

import (
	"github.com/psybedev/racetel/packet"
	"github.com/psybedev/racetel/packet/wire"
)

const sessionBodySize = 611

// DecodeSession reads the F1 22 Session packet. V22 carries no aggregate
// safety-car/VSC/red-flag period counters and no pit-stop rejoin
// position; those fields stay zero.
func DecodeSession(h packet.Header, raw []byte) (out packet.SessionPacket, err error) {
	defer wire.Guard(&err)

	body := raw[packet.HeaderSizeV22:]
	if len(body) != sessionBodySize {
		return packet.SessionPacket{}, packet.NewInvalidPacketError("invalid session packet length")
	}

	r := wire.NewReader(body)
	out.Hdr = h
	out.Weather = packet.WeatherFromCode(r.U8())
	out.TrackTemperature = r.I8()
	out.AirTemperature = r.I8()
	out.TotalLaps = r.U8()
	out.TrackLength = r.U16()
	out.SessionType = packet.SessionTypeFromCode(r.U8())
	out.Track = packet.TrackFromCode(r.I8())
	out.Formula = packet.FormulaFromCode(r.U8())
	out.SessionTimeLeft = r.U16()
	out.SessionDuration = r.U16()
	out.PitSpeedLimit = r.U8()
	out.GamePaused = r.Bool8()
	out.IsSpectating = r.Bool8()
	out.SpectatorCarIndex = r.U8()
	out.SliProNativeSupport = r.Bool8()

	numZones := int(r.U8())
	zones := make([]packet.MarshalZone, 0, 21)
	for i := 0; i < 21; i++ {
		z := packet.MarshalZone{ZoneStart: r.F32(), ZoneFlag: packet.MarshalZoneFlagFromCode(r.I8())}
		if i < numZones {
			zones = append(zones, z)
		}
	}
	out.MarshalZones = zones

	out.SafetyCarStatus = packet.SafetyCarStatusFromCode(r.U8())
	out.NetworkGame = r.Bool8()

	numForecasts := int(r.U8())
	samples := make([]packet.WeatherForecastSample, 0, 56)
	for i := 0; i < 56; i++ {
		s := packet.WeatherForecastSample{
			SessionType:            packet.SessionTypeFromCode(r.U8()),
			TimeOffset:             r.U8(),
			Weather:                packet.WeatherFromCode(r.U8()),
			TrackTemperature:       r.I8(),
			TrackTemperatureChange: r.I8(),
			AirTemperature:         r.I8(),
			AirTemperatureChange:   r.I8(),
			RainPercentage:         r.U8(),
		}
		if i < numForecasts {
			samples = append(samples, s)
		}
	}
	out.WeatherForecastSamples = samples

	out.ForecastAccuracy = r.U8()
	out.AIDifficulty = r.U8()
	out.SeasonLinkIdentifier = r.U32()
	out.WeekendLinkIdentifier = r.U32()
	out.SessionLinkIdentifier = r.U32()
	out.PitStopWindowIdealLap = r.U8()
	out.PitStopWindowLatestLap = r.U8()

	out.AssistSettings = packet.AssistSettings{
		SteeringAssist:   r.U8(),
		BrakingAssist:    r.U8(),
		GearboxAssist:    r.U8(),
		PitAssist:        r.Bool8(),
		PitReleaseAssist: r.Bool8(),
		ERSAssist:        r.Bool8(),
		DRSAssist:        r.Bool8(),
	}
	out.DynamicRacingLine = r.U8()
	out.DynamicRacingLine3D = r.U8()
	out.GameMode = r.U8()
	out.RuleSet = r.U8()
	out.TimeOfDay = r.U32()
	out.SessionLength = r.U8()
	out.UnitPreferences = packet.UnitPreferences{
		SpeedUnitsLeadPlayer:            r.U8(),
		TemperatureUnitsLeadPlayer:      r.U8(),
		SpeedUnitsSecondaryPlayer:       r.U8(),
		TemperatureUnitsSecondaryPlayer: r.U8(),
	}

	return out, nil
}
