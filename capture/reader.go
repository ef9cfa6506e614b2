package capture

import (
	"encoding/binary"
	"io"
	"math"
	"time"
)

// Reader decodes a framed record sequence: a sequence of
// {size u64 BE, time f64 BE, payload} records. A clean
// end-of-file between records is the normal termination signal; a
// truncated trailing record is reported as an IOError.
type Reader struct {
	r io.Reader
}

func NewReader(r io.Reader) *Reader { return &Reader{r: r} }

// Next reads the next framed record. It returns io.EOF, unwrapped, when
// the stream ends cleanly on a record boundary.
func (rd *Reader) Next() (Record, error) {
	var head [16]byte
	if _, err := io.ReadFull(rd.r, head[:]); err != nil {
		if err == io.EOF {
			return Record{}, io.EOF
		}
		return Record{}, ioError(err)
	}

	size := binary.BigEndian.Uint64(head[0:8])
	seconds := math.Float64frombits(binary.BigEndian.Uint64(head[8:16]))

	payload := make([]byte, size)
	if _, err := io.ReadFull(rd.r, payload); err != nil {
		return Record{}, ioError(err)
	}

	return Record{Timestamp: time.Duration(seconds * float64(time.Second)), Payload: payload}, nil
}
