package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/psybedev/racetel/capture"
	"github.com/psybedev/racetel/packet"
)

// frameView is the JSON-rendered shape of one decoded frame.
type frameView struct {
	TimestampSeconds float64       `json:"timestamp_seconds"`
	SessionUID       uint64        `json:"session_uid"`
	PacketID         string        `json:"packet_id"`
	FrameIdentifier  uint32        `json:"frame_identifier"`
	Packet           packet.Packet `json:"packet"`
}

func runParse(args []string, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	inPath := fs.String("in", "", "capture file to read (required)")
	outPath := fs.String("out", "", "output path (stdout if absent)")
	idFilter := fs.String("ids", "", "comma-separated packet-id filter, e.g. Session,LapData")
	limit := fs.Int("limit", 0, "maximum number of records to emit (0 = unlimited)")
	uidFilter := fs.Uint64("uid", 0, "session-uid filter (0 = no filter)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return fmt.Errorf("parse: -in is required")
	}

	allow, err := parsePacketIDFilter(*idFilter)
	if err != nil {
		return err
	}

	in, err := capture.ResilientOpen(context.Background(), *inPath, capture.DefaultRetryConfig(), capture.NewCircuitBreaker())
	if err != nil {
		return fmt.Errorf("parse: opening %s: %w", *inPath, err)
	}
	defer in.Close()

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("parse: creating %s: %w", *outPath, err)
		}
		defer f.Close()
		out = f
	}
	bw := bufio.NewWriter(out)
	defer bw.Flush()

	src := capture.NewSource(in, logger)
	enc := json.NewEncoder(bw)

	var emitted int
	for {
		frame, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}

		h := frame.Packet.Header()
		if *uidFilter != 0 && h.SessionUID != *uidFilter {
			continue
		}
		if allow != nil && !allow[h.PacketID] {
			continue
		}

		if err := enc.Encode(frameView{
			TimestampSeconds: frame.Timestamp.Seconds(),
			SessionUID:       h.SessionUID,
			PacketID:         h.PacketID.String(),
			FrameIdentifier:  h.FrameIdentifier,
			Packet:           frame.Packet,
		}); err != nil {
			return fmt.Errorf("parse: encoding output: %w", err)
		}

		emitted++
		if *limit > 0 && emitted >= *limit {
			break
		}
	}

	return nil
}

// parsePacketIDFilter turns a comma-separated list of packet-id names
// (matching packet.PacketID.String(), case-insensitive) or raw numeric
// codes into an allow-set. An empty filter string means "allow all",
// represented as a nil map.
func parsePacketIDFilter(raw string) (map[packet.PacketID]bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	names := make(map[string]packet.PacketID, 14)
	for id := packet.PacketIDMotion; id <= packet.PacketIDMotionEx; id++ {
		names[strings.ToLower(id.String())] = id
	}

	allow := make(map[packet.PacketID]bool)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, ok := names[strings.ToLower(part)]; ok {
			allow[id] = true
			continue
		}
		if code, err := strconv.ParseUint(part, 10, 8); err == nil {
			allow[packet.PacketID(code)] = true
			continue
		}
		return nil, fmt.Errorf("parse: unrecognised packet-id filter %q", part)
	}
	return allow, nil
}
