package packet

import "time"

// Frame is one decoded item of a replayed capture: a packet paired with
// the timestamp it was recorded at. It lives here, rather than in
// capture or session, so that both of those packages can share one type
// without importing each other.
type Frame struct {
	Timestamp time.Duration
	Packet    Packet
}
