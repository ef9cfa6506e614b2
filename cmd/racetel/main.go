// Command racetel is the CLI collaborator around the packet codec and
// session reducer: it can record a live UDP feed to a capture file,
// replay and filter a capture (parse), or fold a capture into
// per-driver race results (reduce). None of its three subcommands are
// part of the decode/reduce core; they exist so the core is testable
// end-to-end from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "record":
		err = runRecord(os.Args[2:], logger)
	case "parse":
		err = runParse(os.Args[2:], logger)
	case "reduce":
		err = runReduce(os.Args[2:], logger)
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "racetel: unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error().Err(err).Msg("racetel: failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: racetel <subcommand> [flags]

subcommands:
  record   listen for a UDP telemetry feed and write it to a capture file
  parse    replay a capture file, optionally filtering it, and print packets
  reduce   fold a capture file into per-driver session results (JSON)`)
}
