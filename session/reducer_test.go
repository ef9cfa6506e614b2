package session

import (
	"io"
	"testing"

	"github.com/go-test/deep"
	"github.com/rs/zerolog"

	"github.com/psybedev/racetel/packet"
)

// fakeSource replays a fixed slice of frames, built directly from
// in-memory packet values rather than wire bytes — the reducer
// consumes decoded packets, not raw bytes, so its tests don't need to
// round-trip through the wire codec.
type fakeSource struct {
	frames []packet.Frame
	pos    int
}

func (f *fakeSource) Next() (packet.Frame, error) {
	if f.pos >= len(f.frames) {
		return packet.Frame{}, io.EOF
	}
	fr := f.frames[f.pos]
	f.pos++
	return fr, nil
}

func participantsPacket(uid uint64, names [2]string) packet.ParticipantsPacket {
	p := packet.ParticipantsPacket{Hdr: packet.Header{SessionUID: uid}, NumActiveCars: 2}
	for i, name := range names {
		p.Participants[i] = packet.Participant{
			DriverID:   255, // human
			Name:       name,
			Team:       packet.Team(i),
			RaceNumber: uint8(i + 1),
		}
	}
	return p
}

func sessionPacket(uid uint64, sc packet.SafetyCarStatus) packet.SessionPacket {
	return packet.SessionPacket{Hdr: packet.Header{SessionUID: uid}, SafetyCarStatus: sc}
}

func lapDataPacket(uid uint64, slots map[int]*packet.LapDataSlot) packet.LapDataPacket {
	p := packet.LapDataPacket{Hdr: packet.Header{SessionUID: uid}}
	for i, s := range slots {
		p.Slots[i] = s
	}
	return p
}

func finalClassification(uid uint64, results map[int]packet.ClassificationResult) packet.FinalClassificationPacket {
	p := packet.FinalClassificationPacket{Hdr: packet.Header{SessionUID: uid}, NumCars: uint8(len(results))}
	for i := range p.Results {
		p.Results[i] = packet.ClassificationResult{ResultStatus: packet.ResultStatusInvalid}
	}
	for i, r := range results {
		p.Results[i] = r
	}
	return p
}

func frame(p packet.Packet) packet.Frame { return packet.Frame{Packet: p} }

// TestS1MinimalRaceTwoDriversThreeLaps replays a minimal race with two
// drivers over three laps and checks the emitted per-lap rows.
func TestS1MinimalRaceTwoDriversThreeLaps(t *testing.T) {
	const uid = 1

	var frames []packet.Frame
	frames = append(frames, frame(participantsPacket(uid, [2]string{"ALPHA", "BRAVO"})))
	for i := 0; i < 3; i++ {
		frames = append(frames, frame(sessionPacket(uid, packet.SafetyCarNone)))
	}

	// Drive both drivers through laps 1 -> 4 (three completed laps each).
	for lap := uint8(1); lap <= 4; lap++ {
		slots := map[int]*packet.LapDataSlot{
			0: {CurrentLapNum: lap, Sector1TimeMs: 30000, Sector2TimeMs: 30000, LastLapTimeMs: 90000, CarPosition: 1, PitStatus: packet.PitStatusNone},
			1: {CurrentLapNum: lap, Sector1TimeMs: 31000, Sector2TimeMs: 31000, LastLapTimeMs: 93000, CarPosition: 2, PitStatus: packet.PitStatusNone},
		}
		frames = append(frames, frame(lapDataPacket(uid, slots)))
	}

	frames = append(frames, frame(finalClassification(uid, map[int]packet.ClassificationResult{
		0: {Position: 1, ResultStatus: packet.ResultStatusFinished},
		1: {Position: 2, ResultStatus: packet.ResultStatusFinished},
	})))

	result, err := RunReducer(&fakeSource{frames: frames}, zerolog.Nop())
	if err != nil {
		t.Fatalf("RunReducer() error = %v", err)
	}
	if len(result.Sessions) != 1 {
		t.Fatalf("len(Sessions) = %d, want 1", len(result.Sessions))
	}

	sess := result.Sessions[0]
	if len(sess.Participants) != 2 {
		t.Fatalf("len(Participants) = %d, want 2", len(sess.Participants))
	}
	for _, p := range sess.Participants {
		if len(p.Laps) != 3 {
			t.Errorf("driver %d: len(Laps) = %d, want 3", p.ID, len(p.Laps))
		}
		for _, lap := range p.Laps {
			if lap.SafetyCar || lap.VirtualSafetyCar || lap.Formation {
				t.Errorf("driver %d lap %d: unexpected safety flags %+v", p.ID, lap.LapNumber, lap)
			}
		}
		if p.Status != DriverOutcomeFinished {
			t.Errorf("driver %d: Status = %v, want Finished", p.ID, p.Status)
		}
	}
	if sess.Participants[0].Position != 1 || sess.Participants[1].Position != 2 {
		t.Errorf("positions = %d, %d, want 1, 2", sess.Participants[0].Position, sess.Participants[1].Position)
	}
}

// TestS2PitInLapAndOutLap checks that a pit-status transition is
// reflected as an in-lap/out-lap pair on the surrounding laps.
func TestS2PitInLapAndOutLap(t *testing.T) {
	const uid = 2

	var frames []packet.Frame
	frames = append(frames, frame(participantsPacket(uid, [2]string{"ALPHA", "BRAVO"})))
	frames = append(frames, frame(sessionPacket(uid, packet.SafetyCarNone)))

	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 5, PitStatus: packet.PitStatusNone},
	})))
	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 5, PitStatus: packet.PitStatusPitting},
	})))
	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 5, PitStatus: packet.PitStatusNone},
	})))
	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 6, LastLapTimeMs: 95000, PitStatus: packet.PitStatusNone},
	})))

	frames = append(frames, frame(finalClassification(uid, map[int]packet.ClassificationResult{
		0: {Position: 1, ResultStatus: packet.ResultStatusFinished},
	})))

	result, err := RunReducer(&fakeSource{frames: frames}, zerolog.Nop())
	if err != nil {
		t.Fatalf("RunReducer() error = %v", err)
	}

	laps := result.Sessions[0].Participants[0].Laps
	if len(laps) != 1 {
		t.Fatalf("len(Laps) = %d, want 1 (lap 5, finalised by lap 6's arrival)", len(laps))
	}
	if !laps[0].InLap || laps[0].OutLap {
		t.Errorf("lap 5: InLap=%v OutLap=%v, want InLap=true OutLap=false", laps[0].InLap, laps[0].OutLap)
	}
}

// TestS3SafetyCarEnvelopesWholeLap checks that a safety-car period
// active for any part of a lap marks the whole lap.
func TestS3SafetyCarEnvelopesWholeLap(t *testing.T) {
	const uid = 3

	var frames []packet.Frame
	frames = append(frames, frame(participantsPacket(uid, [2]string{"ALPHA", "BRAVO"})))

	frames = append(frames, frame(sessionPacket(uid, packet.SafetyCarFull)))
	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 2, PitStatus: packet.PitStatusNone},
	})))
	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 2, PitStatus: packet.PitStatusNone},
	})))

	frames = append(frames, frame(sessionPacket(uid, packet.SafetyCarNone)))
	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 3, LastLapTimeMs: 91000, PitStatus: packet.PitStatusNone},
	})))
	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 4, LastLapTimeMs: 89000, PitStatus: packet.PitStatusNone},
	})))

	frames = append(frames, frame(finalClassification(uid, map[int]packet.ClassificationResult{
		0: {Position: 1, ResultStatus: packet.ResultStatusFinished},
	})))

	result, err := RunReducer(&fakeSource{frames: frames}, zerolog.Nop())
	if err != nil {
		t.Fatalf("RunReducer() error = %v", err)
	}

	laps := result.Sessions[0].Participants[0].Laps
	if len(laps) != 2 {
		t.Fatalf("len(Laps) = %d, want 2", len(laps))
	}
	if !laps[0].SafetyCar || laps[0].VirtualSafetyCar || laps[0].Formation {
		t.Errorf("lap 2 = %+v, want safety_car=true only", laps[0])
	}
	if laps[1].SafetyCar {
		t.Errorf("lap 3 = %+v, want safety_car=false once status returned to None", laps[1])
	}
}

// TestS4PenaltyAttachedToCurrentLap checks that a PenaltyIssued event is
// attached to the lap in progress when it arrives.
func TestS4PenaltyAttachedToCurrentLap(t *testing.T) {
	const uid = 4

	var frames []packet.Frame
	frames = append(frames, frame(participantsPacket(uid, [2]string{"ALPHA", "BRAVO"})))
	frames = append(frames, frame(sessionPacket(uid, packet.SafetyCarNone)))
	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 4, PitStatus: packet.PitStatusNone},
	})))

	frames = append(frames, frame(packet.EventPacket{
		Hdr:  packet.Header{SessionUID: uid},
		Code: packet.EventCodePenaltyIssued,
		Detail: packet.PenaltyIssued{
			VehicleIdx:  0,
			PenaltyType: packet.PenaltyTimePenalty,
			Time:        5,
			LapNum:      4,
		},
	}))

	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 5, LastLapTimeMs: 91000, PitStatus: packet.PitStatusNone},
	})))

	frames = append(frames, frame(finalClassification(uid, map[int]packet.ClassificationResult{
		0: {Position: 1, ResultStatus: packet.ResultStatusFinished},
	})))

	result, err := RunReducer(&fakeSource{frames: frames}, zerolog.Nop())
	if err != nil {
		t.Fatalf("RunReducer() error = %v", err)
	}

	laps := result.Sessions[0].Participants[0].Laps
	if len(laps) != 1 {
		t.Fatalf("len(Laps) = %d, want 1", len(laps))
	}
	if len(laps[0].Infringements) != 1 {
		t.Fatalf("len(Infringements) = %d, want 1", len(laps[0].Infringements))
	}
	pen := laps[0].Infringements[0]
	if pen.Time != 5 || pen.PenaltyType != packet.PenaltyTimePenalty {
		t.Errorf("Infringements[0] = %+v, want Time=5 PenaltyType=TimePenalty", pen)
	}
}

// TestS5FlashbackDoesNotDuplicateLaps checks that a lap-number regression
// (a flashback rewind) does not emit a duplicate lap row.
func TestS5FlashbackDoesNotDuplicateLaps(t *testing.T) {
	const uid = 5

	var frames []packet.Frame
	frames = append(frames, frame(participantsPacket(uid, [2]string{"ALPHA", "BRAVO"})))
	frames = append(frames, frame(sessionPacket(uid, packet.SafetyCarNone)))

	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 3, PitStatus: packet.PitStatusNone},
	})))
	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 4, LastLapTimeMs: 91000, PitStatus: packet.PitStatusNone},
	})))
	// Flashback: current_lap_num regresses to 2 momentarily...
	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 2, PitStatus: packet.PitStatusNone},
	})))
	// ...then resumes lap 4.
	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 4, PitStatus: packet.PitStatusNone},
	})))
	frames = append(frames, frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
		0: {CurrentLapNum: 5, LastLapTimeMs: 90000, PitStatus: packet.PitStatusNone},
	})))

	frames = append(frames, frame(finalClassification(uid, map[int]packet.ClassificationResult{
		0: {Position: 1, ResultStatus: packet.ResultStatusFinished},
	})))

	result, err := RunReducer(&fakeSource{frames: frames}, zerolog.Nop())
	if err != nil {
		t.Fatalf("RunReducer() error = %v", err)
	}

	laps := result.Sessions[0].Participants[0].Laps
	if len(laps) != 2 {
		t.Fatalf("len(Laps) = %d, want 2 (laps 3 and 4, no duplicate from the flashback)", len(laps))
	}
	if laps[0].LapNumber != 3 || laps[1].LapNumber != 4 {
		t.Errorf("lap numbers = %d, %d, want 3, 4", laps[0].LapNumber, laps[1].LapNumber)
	}
}

// TestSessionUIDZeroYieldsEmptyOutput checks the placeholder session-uid
// 0 is never emitted as a session.
func TestSessionUIDZeroYieldsEmptyOutput(t *testing.T) {
	frames := []packet.Frame{
		frame(participantsPacket(0, [2]string{"ALPHA", "BRAVO"})),
		frame(finalClassification(0, map[int]packet.ClassificationResult{
			0: {Position: 1, ResultStatus: packet.ResultStatusFinished},
		})),
	}

	result, err := RunReducer(&fakeSource{frames: frames}, zerolog.Nop())
	if err != nil {
		t.Fatalf("RunReducer() error = %v", err)
	}
	if len(result.Sessions) != 0 {
		t.Errorf("len(Sessions) = %d, want 0 for an all-zero session-uid capture", len(result.Sessions))
	}
}

// TestReducerOmitsDriversWithoutValidFinalClassification checks that a
// driver who never gets a valid FinalClassification row is dropped.
func TestReducerOmitsDriversWithoutValidFinalClassification(t *testing.T) {
	const uid = 6

	frames := []packet.Frame{
		frame(participantsPacket(uid, [2]string{"ALPHA", "BRAVO"})),
		frame(finalClassification(uid, map[int]packet.ClassificationResult{
			0: {Position: 1, ResultStatus: packet.ResultStatusFinished},
			// driver 1 never gets a valid classification row.
		})),
	}

	result, err := RunReducer(&fakeSource{frames: frames}, zerolog.Nop())
	if err != nil {
		t.Fatalf("RunReducer() error = %v", err)
	}
	if len(result.Sessions[0].Participants) != 1 {
		t.Fatalf("len(Participants) = %d, want 1 (driver 1 has no valid classification)", len(result.Sessions[0].Participants))
	}
}

// TestReducerIsIdempotent checks that running the reducer twice on the
// same input yields equal ParsedSessions.
func TestReducerIsIdempotent(t *testing.T) {
	const uid = 7

	frames := []packet.Frame{
		frame(participantsPacket(uid, [2]string{"ALPHA", "BRAVO"})),
		frame(sessionPacket(uid, packet.SafetyCarNone)),
		frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
			0: {CurrentLapNum: 1, PitStatus: packet.PitStatusNone},
		})),
		frame(lapDataPacket(uid, map[int]*packet.LapDataSlot{
			0: {CurrentLapNum: 2, LastLapTimeMs: 90000, PitStatus: packet.PitStatusNone},
		})),
		frame(finalClassification(uid, map[int]packet.ClassificationResult{
			0: {Position: 1, ResultStatus: packet.ResultStatusFinished},
		})),
	}

	first, err := RunReducer(&fakeSource{frames: frames}, zerolog.Nop())
	if err != nil {
		t.Fatalf("RunReducer() [1] error = %v", err)
	}
	second, err := RunReducer(&fakeSource{frames: frames}, zerolog.Nop())
	if err != nil {
		t.Fatalf("RunReducer() [2] error = %v", err)
	}

	if diff := deep.Equal(first, second); diff != nil {
		t.Errorf("reducer was not idempotent, diff: %v", diff)
	}
}
