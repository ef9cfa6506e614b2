package v22

import (
	"github.com/psybedev/racetel/packet"
	"github.com/psybedev/racetel/packet/wire"
)

const lobbyPlayerSize = 54
const lobbyInfoBodySize = 1 + lobbyPlayerSize*22

func DecodeLobbyInfo(h packet.Header, raw []byte) (out packet.LobbyInfoPacket, err error) {
	defer wire.Guard(&err)

	body := raw[packet.HeaderSizeV22:]
	if len(body) != lobbyInfoBodySize {
		return packet.LobbyInfoPacket{}, packet.NewInvalidPacketError("invalid lobby info packet length")
	}

	r := wire.NewReader(body)
	out.Hdr = h
	out.NumPlayers = r.U8()

	for i := 0; i < 22; i++ {
		aiControlled := r.Bool8()
		team := packet.TeamFromCode(r.U8())
		nationality := packet.NationalityFromCode(r.U8())
		platform := packet.PlatformFromCode(r.U8())
		name := packet.DecodeFixedName(r.Bytes(48))
		carNumber := r.U8()

		readyStatus, rsErr := packet.LobbyReadyStatusFromCode(r.U8())
		if rsErr != nil {
			return packet.LobbyInfoPacket{}, rsErr
		}

		out.Players[i] = packet.LobbyPlayer{
			AIControlled: aiControlled,
			Team:         team,
			Nationality:  nationality,
			Platform:     platform,
			Name:         name,
			CarNumber:    carNumber,
			ReadyStatus:  readyStatus,
		}
	}

	return out, nil
}
