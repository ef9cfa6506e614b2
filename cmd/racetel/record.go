package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/psybedev/racetel/capture"
)

// maxDatagramSize is comfortably above the largest F1 23 packet
// (FinalClassification at 1020 bytes) with headroom for future growth.
const maxDatagramSize = 2048

func runRecord(args []string, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("record", flag.ExitOnError)
	listenAddr := fs.String("listen", "0.0.0.0:20777", "UDP address to listen on")
	outPath := fs.String("out", "", "capture file to write (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *outPath == "" {
		return fmt.Errorf("record: -out is required")
	}

	udpAddr, err := net.ResolveUDPAddr("udp", *listenAddr)
	if err != nil {
		return fmt.Errorf("record: resolving %s: %w", *listenAddr, err)
	}

	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return fmt.Errorf("record: listening on %s: %w", *listenAddr, err)
	}
	defer conn.Close()

	out, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("record: creating %s: %w", *outPath, err)
	}
	defer out.Close()

	writer := capture.NewWriter(out)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info().Str("listen", *listenAddr).Str("out", *outPath).Msg("recording, press ctrl-c to stop")

	start := time.Now()
	buf := make([]byte, maxDatagramSize)
	var records uint64

	go func() {
		<-ctx.Done()
		conn.SetReadDeadline(time.Now())
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Uint64("records", records).Msg("recording stopped")
			return nil
		default:
		}

		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info().Uint64("records", records).Msg("recording stopped")
				return nil
			}
			return fmt.Errorf("record: reading UDP: %w", err)
		}

		payload := make([]byte, n)
		copy(payload, buf[:n])

		if err := writer.WriteRecord(time.Since(start), payload); err != nil {
			return fmt.Errorf("record: writing record: %w", err)
		}
		records++
	}
}
