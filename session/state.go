package session

import "github.com/psybedev/racetel/packet"

// lapInProgress is the in-progress-lap state of the per-driver state
// machine. A nil *lapInProgress on driverState is NoCurrentLap.
type lapInProgress struct {
	lapNum           uint8
	sector1Ms        uint32
	sector2Ms        uint32
	safetyCar        bool
	virtualSafetyCar bool
	formation        bool
	inLap            bool
	outLap           bool
	lapValid         bool
	infringements    []Penalty
}

// driverState is one of a session's 22 driver slots. It becomes "valid"
// only once a FinalClassification entry has populated it; other slots
// are dropped at emission.
type driverState struct {
	valid            bool
	hasParticipant   bool
	aiControlled     bool
	name             string
	nationality      packet.Nationality
	raceNumber       uint8
	team             packet.Team
	sessionHistory   []packet.LapHistoryData
	current          *lapInProgress
	pitting          bool
	laps             []LapRecord

	gridPosition                uint8
	position                    uint8
	numLaps                     uint8
	numPitStops                 uint8
	penaltyTimeS                uint8
	status                      DriverOutcomeStatus
	fastestLapMs                uint32
	totalTimeWithoutPenaltiesMs uint64
	tyreStints                  [8]packet.TyreStint
}

// sessionState is one session-uid's accumulated state. It is
// created on first observation of a session-uid and dropped from the
// reducer's map after emission.
type sessionState struct {
	sessionType     packet.SessionType
	track           packet.Track
	length          uint16
	sessionLinkID   uint32
	safetyCarStatus packet.SafetyCarStatus
	drivers         [22]*driverState
}

func newSessionState() *sessionState {
	s := &sessionState{}
	for i := range s.drivers {
		s.drivers[i] = &driverState{}
	}
	return s
}

func outcomeFromResultStatus(rs packet.ResultStatus) DriverOutcomeStatus {
	switch rs {
	case packet.ResultStatusFinished:
		return DriverOutcomeFinished
	case packet.ResultStatusRetired, packet.ResultStatusDidNotFinish, packet.ResultStatusNotClassified:
		return DriverOutcomeDNF
	case packet.ResultStatusDisqualified:
		return DriverOutcomeDSQ
	default:
		return DriverOutcomeUnknown
	}
}

func saturatingSub(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}
