package v23

import (
	"github.com/psybedev/racetel/packet"
	"github.com/psybedev/racetel/packet/wire"
)

const participantsBodySize = 1 + 22*57

func DecodeParticipants(h packet.Header, raw []byte) (out packet.ParticipantsPacket, err error) {
	defer wire.Guard(&err)

	body := raw[packet.HeaderSizeV23:]
	if len(body) != participantsBodySize {
		return packet.ParticipantsPacket{}, packet.NewInvalidPacketError("invalid participants packet length")
	}

	r := wire.NewReader(body)
	out.Hdr = h
	out.NumActiveCars = r.U8()

	for i := 0; i < 22; i++ {
		out.Participants[i] = packet.Participant{
			AIControlled:     r.Bool8(),
			DriverID:         r.U8(),
			NetworkID:        r.U8(),
			Team:             packet.TeamFromCode(r.U8()),
			MyTeam:           r.Bool8(),
			RaceNumber:       r.U8(),
			Nationality:      packet.NationalityFromCode(r.U8()),
			Name:             packet.DecodeFixedName(r.Bytes(48)),
			TelemetryVisible: r.Bool8(),
			ShowOnlineNames:  r.Bool8(),
			Platform:         packet.PlatformFromCode(r.U8()),
		}
	}

	return out, nil
}
