package capture

import (
	"encoding/binary"
	"io"
	"math"
	"time"
)

// Writer frames raw datagrams to disk in recording order, for the
// `record` CLI subcommand.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

func (wr *Writer) WriteRecord(timestamp time.Duration, payload []byte) error {
	var head [16]byte
	binary.BigEndian.PutUint64(head[0:8], uint64(len(payload)))
	binary.BigEndian.PutUint64(head[8:16], math.Float64bits(timestamp.Seconds()))

	if _, err := wr.w.Write(head[:]); err != nil {
		return ioError(err)
	}
	if _, err := wr.w.Write(payload); err != nil {
		return ioError(err)
	}
	return nil
}
