package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gawen/bzlegacy"
	"github.com/schollz/progressbar/v3"
)

func runSum(log *slog.Logger, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := newFlagSet(CommandSum, stderr)
	asJson := fs.Bool("json", false, "print a JSON report")
	quiet := fs.Bool("q", false, "hide progress")
	combine := fs.Bool("combine", false, "also print the stream checksum of all inputs, in order")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	stdinSeen := false
	for _, path := range paths {
		if path != "-" {
			continue
		}
		if stdinSeen {
			return fmt.Errorf("%w: stdin ('-') given more than once", errUsage)
		}
		stdinSeen = true
	}

	report := SumReport{}
	var combined uint32
	for _, path := range paths {
		fileSum, err := sumPath(log, path, stdin, *quiet)
		if err != nil {
			return err
		}

		combined = bzlegacy.CombineCRC(combined, fileSum.crc)
		report.Files = append(report.Files, fileSum)
	}

	if *combine {
		report.Combined = formatCRC(combined)
	}

	if *asJson {
		raw, err := MarshalReportJson(report)
		if err != nil {
			return fmt.Errorf("unable to encode report: %w", err)
		}
		fmt.Fprintf(stdout, "%s\n", raw)
		return nil
	}

	for _, fileSum := range report.Files {
		fmt.Fprintf(stdout, "%s  %s\n", fileSum.CRC, fileSum.Path)
	}
	if *combine {
		fmt.Fprintf(stdout, "%s  (combined)\n", report.Combined)
	}

	return nil
}

func sumPath(log *slog.Logger, path string, stdin io.Reader, quiet bool) (FileSum, error) {
	r := stdin
	size := int64(-1)
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return FileSum{}, err
		}
		defer fh.Close()

		fi, err := fh.Stat()
		if err != nil {
			return FileSum{}, err
		}
		if fi.IsDir() {
			return FileSum{}, fmt.Errorf("'%s' is a directory", path)
		}

		r = fh
		size = fi.Size()
	}

	bar := newBar(size, "checksum "+path, quiet)
	defer bar.Close()
	barReader := progressbar.NewReader(r, bar)

	h := bzlegacy.New()
	n, err := io.Copy(h, &barReader)
	if err != nil {
		return FileSum{}, fmt.Errorf("unable to read '%s': %w", path, err)
	}

	crc := h.Sum32()
	log.Debug("checksum", "path", path, "size", n, "crc", fmt.Sprintf("%.8x", crc))

	return FileSum{
		Path: path,
		Size: n,
		CRC:  formatCRC(crc),
		crc:  crc,
	}, nil
}

func newBar(size int64, desc string, quiet bool) *progressbar.ProgressBar {
	if quiet {
		return progressbar.DefaultBytesSilent(size, desc)
	}
	return progressbar.DefaultBytes(size, desc)
}

func formatCRC(crc uint32) string {
	return fmt.Sprintf("%.8x", crc)
}
