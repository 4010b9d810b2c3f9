package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gawen/bzlegacy"
	"github.com/schollz/progressbar/v3"
)

func runDerand(log *slog.Logger, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := newFlagSet(CommandDerand, stderr)
	quiet := fs.Bool("q", false, "hide progress")
	outPath := fs.String("o", "", "output file (stdout if empty)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("%w: expected at most one input, got %d", errUsage, fs.NArg())
	}

	inPath := fs.Arg(0)
	r := stdin
	size := int64(-1)
	var inInfo os.FileInfo
	if inPath != "" && inPath != "-" {
		fh, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer fh.Close()

		if inInfo, err = fh.Stat(); err == nil {
			size = inInfo.Size()
		}
		r = fh
	} else {
		inPath = "-"
	}

	w := stdout
	var outFile *os.File
	if *outPath != "" {
		if inInfo != nil {
			if outInfo, err := os.Stat(*outPath); err == nil && os.SameFile(inInfo, outInfo) {
				return fmt.Errorf("%w: output '%s' is the input file", errUsage, *outPath)
			}
		}

		fh, err := os.Create(*outPath)
		if err != nil {
			return err
		}
		defer fh.Close()
		outFile = fh
		w = fh
	}

	bar := newBar(size, "derandomize "+inPath, *quiet)
	defer bar.Close()
	barReader := progressbar.NewReader(r, bar)

	n, s, err := derandomizeStream(w, &barReader)
	if err != nil {
		return fmt.Errorf("unable to derandomize '%s': %w", inPath, err)
	}

	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return fmt.Errorf("unable to close '%s': %w", *outPath, err)
		}
	}

	log.Debug("derandomized", "path", inPath, "size", n, "index", s.Index, "counter", s.Counter)
	return nil
}

func derandomizeStream(w io.Writer, r io.Reader) (int64, bzlegacy.RandState, error) {
	s := bzlegacy.InitRand()
	buf := make([]byte, 32*1024)

	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			s = bzlegacy.Derandomize(s, buf[:n])
			if _, werr := w.Write(buf[:n]); werr != nil {
				return total, s, werr
			}
			total += int64(n)
		}
		if errors.Is(err, io.EOF) {
			return total, s, nil
		} else if err != nil {
			return total, s, err
		}
	}
}
