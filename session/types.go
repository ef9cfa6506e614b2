// Package session implements the stateful fold over a decoded packet
// stream that derives per-driver race results. The reducer is a pure
// function of its input sequence:
// it holds no goroutines, performs no I/O, and never raises — a session
// it cannot finalise is simply omitted from the output.
package session

import "github.com/psybedev/racetel/packet"

// DriverOutcomeStatus is the reducer's emitted status taxonomy. DNS is
// carried for completeness but never assigned: a driver who never
// receives a valid FinalClassification entry is dropped from output
// entirely, so the "appeared in Participants but not in
// FinalClassification" case never reaches a status field to tag.
type DriverOutcomeStatus uint8

const (
	DriverOutcomeUnknown DriverOutcomeStatus = iota
	DriverOutcomeFinished
	DriverOutcomeDNF
	DriverOutcomeDSQ
	DriverOutcomeDNS
)

// Penalty is one infringement attached to a LapRecord, derived from a
// PenaltyIssued event.
type Penalty struct {
	PenaltyType      packet.PenaltyType      `json:"penalty_type"`
	InfringementType packet.InfringementType `json:"infringement_type"`
	OtherVehicleIdx  uint8                   `json:"other_vehicle_idx"`
	Time             uint8                   `json:"time_s"`
	LapNum           uint8                   `json:"lap_num"`
	PlacesGained     uint8                   `json:"places_gained"`
}

// LapRecord is the reducer's per-lap output row — distinct from the
// wire-level LapData, which is a per-frame snapshot (glossary).
type LapRecord struct {
	LapNumber        uint8     `json:"lap_number"`
	LapTimeMs        uint32    `json:"lap_time_ms"`
	Sector1TimeMs    uint32    `json:"sector1_time_ms"`
	Sector2TimeMs    uint32    `json:"sector2_time_ms"`
	Sector3TimeMs    uint32    `json:"sector3_time_ms"`
	LapValid         bool      `json:"lap_valid"`
	Position         uint8     `json:"position"`
	SafetyCar        bool      `json:"safety_car"`
	VirtualSafetyCar bool      `json:"virtual_safety_car"`
	Formation        bool      `json:"formation"`
	InLap            bool      `json:"in_lap"`
	OutLap           bool      `json:"out_lap"`
	Infringements    []Penalty `json:"infringements,omitempty"`
}

// Player is the human-facing identity of a participant, when one was
// ever observed for this driver slot.
type Player struct {
	Name        string              `json:"name"`
	Nationality *packet.Nationality `json:"nationality,omitempty"`
}

// SessionParticipant is one driver's full derived record.
type SessionParticipant struct {
	ID                          uint8                    `json:"id"`
	AIControlled                bool                     `json:"ai_controlled"`
	GridPosition                uint8                    `json:"grid_position"`
	Position                    uint8                    `json:"position"`
	NumLaps                     uint8                    `json:"num_laps"`
	Status                      DriverOutcomeStatus      `json:"status"`
	Team                        packet.Team              `json:"team"`
	RaceNumber                  uint8                    `json:"race_number"`
	Player                      Player                   `json:"player"`
	NumPitStops                 uint8                    `json:"num_pit_stops"`
	TyreStints                  [8]packet.TyreStint      `json:"tyre_stints"`
	FastestLapMs                uint32                   `json:"fastest_lap_ms"`
	TotalTimeWithoutPenaltiesMs uint64                   `json:"total_time_without_penalties_ms"`
	PenaltyTimeS                uint8                    `json:"penalty_time_s"`
	Laps                        []LapRecord              `json:"laps"`
	SessionHistory              []packet.LapHistoryData  `json:"session_history,omitempty"`
}

// ParsedSessionData is one session's complete derived result.
type ParsedSessionData struct {
	SessionID     uint64              `json:"session_id"`
	SessionLinkID uint32              `json:"session_link_id"`
	SessionType   packet.SessionType  `json:"session_type"`
	Track         packet.Track        `json:"track"`
	Participants  []SessionParticipant `json:"participants"`
}

// ParsedSessions is the reducer's top-level output.
type ParsedSessions struct {
	Sessions []ParsedSessionData `json:"sessions"`
}
