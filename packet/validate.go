package packet

import "fmt"

// FieldError reports one decoded field whose value fell outside the
// plausible range for the F1 22/23 telemetry protocol. Unlike
// InvalidPacketError, a FieldError never stops a decode — the packet
// was well-formed on the wire, its content is merely suspicious.
type FieldError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s (value: %v)", e.Field, e.Message, e.Value)
}

// ValidationLimits bounds the ranges ValidateSession checks against.
// The defaults are generous envelopes around real-world F1 car and
// circuit parameters, not strict simulation limits.
type ValidationLimits struct {
	MinAirTemp, MaxAirTemp             int8
	MinTrackTemp, MaxTrackTemp         int8
	MinTrackLength, MaxTrackLength     uint16 // metres
	MinPitSpeedLimit, MaxPitSpeedLimit uint8  // km/h
}

// DefaultValidationLimits returns the envelope used when a caller does
// not supply its own.
func DefaultValidationLimits() ValidationLimits {
	return ValidationLimits{
		MinAirTemp:         -20,
		MaxAirTemp:          60,
		MinTrackTemp:        -10,
		MaxTrackTemp:        80,
		MinTrackLength:      2000,
		MaxTrackLength:      8000,
		MinPitSpeedLimit:    20,
		MaxPitSpeedLimit:    150,
	}
}

// ValidateSession checks a decoded Session packet's scalar fields
// against a plausible envelope. It never rejects a packet the decoder
// already accepted; it only surfaces fields worth a second look.
func ValidateSession(s SessionPacket, limits ValidationLimits) []error {
	var errs []error

	if s.AirTemperature < limits.MinAirTemp || s.AirTemperature > limits.MaxAirTemp {
		errs = append(errs, &FieldError{"AirTemperature", s.AirTemperature,
			fmt.Sprintf("outside plausible range [%d, %d]", limits.MinAirTemp, limits.MaxAirTemp)})
	}
	if s.TrackTemperature < limits.MinTrackTemp || s.TrackTemperature > limits.MaxTrackTemp {
		errs = append(errs, &FieldError{"TrackTemperature", s.TrackTemperature,
			fmt.Sprintf("outside plausible range [%d, %d]", limits.MinTrackTemp, limits.MaxTrackTemp)})
	}
	if s.TrackLength < limits.MinTrackLength || s.TrackLength > limits.MaxTrackLength {
		errs = append(errs, &FieldError{"TrackLength", s.TrackLength,
			fmt.Sprintf("outside plausible range [%d, %d]m", limits.MinTrackLength, limits.MaxTrackLength)})
	}
	if s.PitSpeedLimit < limits.MinPitSpeedLimit || s.PitSpeedLimit > limits.MaxPitSpeedLimit {
		errs = append(errs, &FieldError{"PitSpeedLimit", s.PitSpeedLimit,
			fmt.Sprintf("outside plausible range [%d, %d]km/h", limits.MinPitSpeedLimit, limits.MaxPitSpeedLimit)})
	}

	return errs
}
