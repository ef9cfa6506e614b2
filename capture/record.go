package capture

import "time"

// Record is one framed entry of the on-disk capture file: a verbatim UDP
// datagram plus the offset into the recording it was captured at.
type Record struct {
	Timestamp time.Duration
	Payload   []byte
}
