package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gawen/bzlegacy"
	"github.com/goforj/godump"
)

func runMask(log *slog.Logger, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet(CommandMask, stderr)
	n := fs.Int("n", 3000, "number of bytes to walk")
	asJson := fs.Bool("json", false, "print a JSON report")
	dump := fs.Bool("dump", false, "dump the randomizer state reached after n bytes")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *n < 0 {
		return fmt.Errorf("%w: -n must be non-negative, got %d", errUsage, *n)
	}

	report := MaskReport{Bytes: *n, Toggles: make([]int, 0)}
	s := bzlegacy.InitRand()
	for pos := range *n {
		if s.Mask() {
			report.Toggles = append(report.Toggles, pos)
		}
		s = s.Advance()
	}
	log.Debug("mask", "bytes", *n, "toggles", len(report.Toggles), "index", s.Index, "counter", s.Counter)

	if *asJson {
		raw, err := MarshalReportJson(report)
		if err != nil {
			return fmt.Errorf("unable to encode report: %w", err)
		}
		fmt.Fprintf(stdout, "%s\n", raw)
	} else {
		for _, pos := range report.Toggles {
			fmt.Fprintf(stdout, "%d\n", pos)
		}
	}

	if *dump {
		fmt.Fprintln(stderr, godump.DumpStr(s))
	}

	return nil
}
