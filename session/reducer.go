package session

import (
	"io"
	"sort"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/psybedev/racetel/packet"
)

// FrameSource is anything that can replay a {timestamp, packet} stream
// in order. capture.Source satisfies this.
type FrameSource interface {
	Next() (packet.Frame, error)
}

// reducer holds the fold's working state across the whole replay pass.
type reducer struct {
	sessions map[uint64]*sessionState
	order    []uint64
	logger   zerolog.Logger
}

func newReducer(logger zerolog.Logger) *reducer {
	return &reducer{sessions: make(map[uint64]*sessionState), logger: logger}
}

func (rd *reducer) stateFor(uid uint64) *sessionState {
	if s, ok := rd.sessions[uid]; ok {
		return s
	}
	s := newSessionState()
	rd.sessions[uid] = s
	rd.order = append(rd.order, uid)
	return s
}

// RunReducer folds a replayed packet stream into ParsedSessions. It
// consults session-uid only, never timestamps; it discards the
// placeholder uid 0 and every Event::Button; and it never raises for a
// session it can't finalise — such a session is simply absent from the
// result.
func RunReducer(src FrameSource, logger zerolog.Logger) (ParsedSessions, error) {
	rd := newReducer(logger)

	for {
		frame, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ParsedSessions{}, err
		}

		h := frame.Packet.Header()
		if h.SessionUID == 0 {
			continue
		}

		switch p := frame.Packet.(type) {
		case packet.EventPacket:
			if _, isButton := p.Detail.(packet.Button); isButton {
				continue
			}
			rd.applyEvent(rd.stateFor(h.SessionUID), p)
		case packet.SessionPacket:
			rd.applySession(rd.stateFor(h.SessionUID), p)
		case packet.ParticipantsPacket:
			rd.applyParticipants(rd.stateFor(h.SessionUID), p)
		case packet.LapDataPacket:
			rd.applyLapData(h.SessionUID, rd.stateFor(h.SessionUID), p)
		case packet.SessionHistoryPacket:
			rd.applySessionHistory(rd.stateFor(h.SessionUID), p)
		case packet.FinalClassificationPacket:
			rd.applyFinalClassification(rd.stateFor(h.SessionUID), p)
		default:
			continue
		}
	}

	return rd.emit(), nil
}

func (rd *reducer) applySession(ss *sessionState, p packet.SessionPacket) {
	ss.sessionType = p.SessionType
	ss.track = p.Track
	ss.length = p.TrackLength
	ss.sessionLinkID = p.SessionLinkIdentifier
	ss.safetyCarStatus = p.SafetyCarStatus
}

func (rd *reducer) applyParticipants(ss *sessionState, p packet.ParticipantsPacket) {
	for i := 0; i < 22; i++ {
		part := p.Participants[i]
		ds := ss.drivers[i]
		ds.hasParticipant = true
		ds.aiControlled = part.DriverID != 255
		ds.name = part.Name
		ds.nationality = part.Nationality
		ds.raceNumber = part.RaceNumber
		ds.team = part.Team
	}
}

func (rd *reducer) applySessionHistory(ss *sessionState, p packet.SessionHistoryPacket) {
	if int(p.CarIdx) >= len(ss.drivers) {
		return
	}
	n := int(p.NumLaps)
	if n > len(p.Laps) {
		n = len(p.Laps)
	}
	history := make([]packet.LapHistoryData, n)
	copy(history, p.Laps[:n])
	ss.drivers[p.CarIdx].sessionHistory = history
}

func (rd *reducer) applyFinalClassification(ss *sessionState, p packet.FinalClassificationPacket) {
	for i := 0; i < 22; i++ {
		res := p.Results[i]
		if res.ResultStatus.IsAbsentSlot() {
			continue
		}
		ds := ss.drivers[i]
		ds.valid = true
		ds.gridPosition = res.GridPosition
		ds.position = res.Position
		ds.numLaps = res.NumLaps
		ds.numPitStops = res.NumPitStops
		ds.penaltyTimeS = res.PenaltyTimeS
		ds.fastestLapMs = res.BestLapTimeMs
		ds.status = outcomeFromResultStatus(res.ResultStatus)
		ds.totalTimeWithoutPenaltiesMs = uint64(res.TotalRaceTimeWithoutPenalties.Milliseconds())
		ds.tyreStints = res.TyreStints
	}
}

func (rd *reducer) applyEvent(ss *sessionState, p packet.EventPacket) {
	detail, ok := p.Detail.(packet.PenaltyIssued)
	if !ok {
		return
	}
	if int(detail.VehicleIdx) >= len(ss.drivers) {
		return
	}
	ds := ss.drivers[detail.VehicleIdx]
	if ds.current == nil {
		return
	}
	ds.current.infringements = append(ds.current.infringements, Penalty{
		PenaltyType:      detail.PenaltyType,
		InfringementType: detail.InfringementType,
		OtherVehicleIdx:  detail.OtherVehicleIdx,
		Time:             detail.Time,
		LapNum:           detail.LapNum,
		PlacesGained:     detail.PlacesGained,
	})
}

func scFlags(status packet.SafetyCarStatus) (safetyCar, vsc, formation bool) {
	switch status {
	case packet.SafetyCarFull:
		return true, false, false
	case packet.SafetyCarVirtual:
		return false, true, false
	case packet.SafetyCarFormation:
		return false, false, true
	default:
		return false, false, false
	}
}

func newLapFromSlot(slot *packet.LapDataSlot, sessionSC packet.SafetyCarStatus, outLap bool) *lapInProgress {
	sc, vsc, formation := scFlags(sessionSC)
	return &lapInProgress{
		lapNum:           slot.CurrentLapNum,
		sector1Ms:        slot.Sector1TimeMs,
		sector2Ms:        slot.Sector2TimeMs,
		safetyCar:        sc,
		virtualSafetyCar: vsc,
		formation:        formation,
		outLap:           outLap,
		lapValid:         !slot.CurrentLapInvalid,
	}
}

func (rd *reducer) applyLapData(sessionUID uint64, ss *sessionState, p packet.LapDataPacket) {
	for i := 0; i < 22; i++ {
		slot := p.Slots[i]
		if slot == nil {
			continue
		}
		ds := ss.drivers[i]

		switch {
		case ds.current == nil:
			ds.current = newLapFromSlot(slot, ss.safetyCarStatus, false)

		case slot.CurrentLapNum == ds.current.lapNum:
			ds.current.sector1Ms = slot.Sector1TimeMs
			ds.current.sector2Ms = slot.Sector2TimeMs
			ds.current.lapValid = !slot.CurrentLapInvalid

			sc, vsc, formation := scFlags(ss.safetyCarStatus)
			ds.current.safetyCar = ds.current.safetyCar || sc
			ds.current.virtualSafetyCar = ds.current.virtualSafetyCar || vsc
			ds.current.formation = ds.current.formation || formation

			if !ds.pitting && slot.PitStatus == packet.PitStatusPitting {
				ds.current.inLap = true
				ds.pitting = true
			} else if ds.pitting && slot.PitStatus == packet.PitStatusNone {
				ds.pitting = false
			}

		case slot.CurrentLapNum > ds.current.lapNum:
			prev := ds.current
			ds.laps = append(ds.laps, LapRecord{
				LapNumber:        prev.lapNum,
				LapTimeMs:        slot.LastLapTimeMs,
				Sector1TimeMs:    prev.sector1Ms,
				Sector2TimeMs:    prev.sector2Ms,
				Sector3TimeMs:    saturatingSub(slot.LastLapTimeMs, prev.sector1Ms+prev.sector2Ms),
				LapValid:         prev.lapValid,
				Position:         slot.CarPosition,
				SafetyCar:        prev.safetyCar,
				VirtualSafetyCar: prev.virtualSafetyCar,
				Formation:        prev.formation,
				InLap:            prev.inLap,
				OutLap:           prev.outLap,
				Infringements:    prev.infringements,
			})
			ds.current = newLapFromSlot(slot, ss.safetyCarStatus, prev.inLap)

		default:
			// lap-num regressed: a flashback rewind. Leave the current
			// lap untouched rather than rewinding state.
		}
	}
}

// indexedDriver pairs a driver slot with its index so the valid-slot
// filter can still recover the slot index after lo.Filter drops it.
type indexedDriver struct {
	index int
	state *driverState
}

func toParticipant(d indexedDriver) SessionParticipant {
	ds := d.state

	var player Player
	if ds.hasParticipant {
		player.Name = ds.name
		nationality := ds.nationality
		player.Nationality = &nationality
	}

	return SessionParticipant{
		ID:                          uint8(d.index),
		AIControlled:                ds.aiControlled,
		GridPosition:                ds.gridPosition,
		Position:                    ds.position,
		NumLaps:                     ds.numLaps,
		Status:                      ds.status,
		Team:                        ds.team,
		RaceNumber:                  ds.raceNumber,
		Player:                      player,
		NumPitStops:                 ds.numPitStops,
		TyreStints:                  ds.tyreStints,
		FastestLapMs:                ds.fastestLapMs,
		TotalTimeWithoutPenaltiesMs: ds.totalTimeWithoutPenaltiesMs,
		PenaltyTimeS:                ds.penaltyTimeS,
		Laps:                        ds.laps,
		SessionHistory:              ds.sessionHistory,
	}
}

func (rd *reducer) emit() ParsedSessions {
	out := ParsedSessions{}

	for _, uid := range rd.order {
		ss := rd.sessions[uid]

		indexed := lo.Map(ss.drivers[:], func(ds *driverState, i int) indexedDriver {
			return indexedDriver{index: i, state: ds}
		})
		valid := lo.Filter(indexed, func(d indexedDriver, _ int) bool { return d.state.valid })
		if len(valid) == 0 {
			continue
		}

		participants := lo.Map(valid, func(d indexedDriver, _ int) SessionParticipant { return toParticipant(d) })

		sort.SliceStable(participants, func(i, j int) bool {
			return participants[i].Position < participants[j].Position
		})

		out.Sessions = append(out.Sessions, ParsedSessionData{
			SessionID:     uid,
			SessionLinkID: ss.sessionLinkID,
			SessionType:   ss.sessionType,
			Track:         ss.track,
			Participants:  participants,
		})
	}

	return out
}
