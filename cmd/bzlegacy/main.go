package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

var errUsage = errors.New("invalid usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bzlegacy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: bzlegacy [-v] <command> [args]\n\ncommands:\n")
		for _, cmd := range commandOrder {
			fmt.Fprintf(stderr, "  %s\n", commandUsage[cmd])
		}
	}
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	log.Debug("start", "command", cmd, "args", cmdArgs)

	var err error
	switch cmd {
	case CommandSum:
		err = runSum(log, cmdArgs, stdin, stdout, stderr)
	case CommandMask:
		err = runMask(log, cmdArgs, stdout, stderr)
	case CommandDerand:
		err = runDerand(log, cmdArgs, stdin, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command '%s'\n", cmd)
		fs.Usage()
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return 2
	default:
		log.Error("command failed", "command", cmd, "err", err)
		return 1
	}
}

func newFlagSet(cmd Command, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: bzlegacy %s\n", commandUsage[cmd])
		fs.PrintDefaults()
	}
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}
