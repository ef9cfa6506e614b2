package capture

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/psybedev/racetel/codec"
	"github.com/psybedev/racetel/packet"
)

// Source replays a framed capture as a sequence of decoded packets. It
// owns the I/O, decodes each record, and logs-and-skips InvalidPacket
// failures at the individual-record granularity rather than surfacing
// them to the reducer.
type Source struct {
	reader *Reader
	Logger zerolog.Logger
}

func NewSource(r io.Reader, logger zerolog.Logger) *Source {
	return &Source{reader: NewReader(r), Logger: logger}
}

// Next returns the next successfully decoded frame. It returns io.EOF,
// unwrapped, once the capture ends cleanly. Any other returned error is
// an IOError and halts replay — decode failures are never returned here,
// they are logged and the loop moves on to the next record.
func (s *Source) Next() (packet.Frame, error) {
	for {
		rec, err := s.reader.Next()
		if err != nil {
			return packet.Frame{}, err
		}

		pkt, decErr := codec.Decode(rec.Payload)
		if decErr != nil {
			s.Logger.Warn().Err(decErr).Msg("skipping undecodable record")
			continue
		}

		if sess, ok := pkt.(packet.SessionPacket); ok {
			for _, fieldErr := range packet.ValidateSession(sess, packet.DefaultValidationLimits()) {
				s.Logger.Warn().Err(fieldErr).Msg("session packet has an implausible field")
			}
		}

		return packet.Frame{Timestamp: rec.Timestamp, Packet: pkt}, nil
	}
}

// All drains the source to a slice, for callers that want the whole
// replay in memory (the CLI's parse/reduce subcommands, and tests).
func (s *Source) All() ([]packet.Frame, error) {
	var frames []packet.Frame
	for {
		f, err := s.Next()
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
}
