package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vearutop/firepal"
	"github.com/vearutop/firepal/internal/termview"
)

// usageError marks invalid command-line input, already reported on stderr.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil {
		return
	}
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	var uerr usageError
	if errors.As(err, &uerr) {
		os.Exit(2)
	}
	fail(err)
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("firepal", flag.ContinueOnError)
	size := fs.Int("size", firepal.DefaultSize, "number of palette entries (e.g. 36-48)")
	gamma := firepal.SRGB()
	fs.Var(&gamma, "gamma", "'srgb' or a power gamma like 2.2")
	format := firepal.FormatFASM
	fs.Var(&format, "format", "output format: fasm, hex or raw")
	label := fs.String("label", firepal.DefaultLabel, "label name for fasm format")
	outFile := fs.String("outfile", "", "output file; stdout if omitted")
	previewOut := fs.String("preview", "", "write PNG preview strip")
	cell := fs.Int("cell", 16, "preview swatch width in pixels")
	show := fs.Bool("show", false, "show the palette in the terminal, any key to quit")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: firepal [-size 37] [-gamma srgb|2.2] [-format fasm|hex|raw] [-label FirePalette] [-outfile path]")
		fmt.Fprintln(stderr, "               [-preview palette.png] [-cell 16] [-show] [-v]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{err: err}
	}

	invalid := func(msg string, a ...any) error {
		err := fmt.Errorf(msg, a...)
		fmt.Fprintln(stderr, "error:", err)
		fs.Usage()
		return usageError{err: err}
	}
	switch {
	case fs.NArg() > 0:
		return invalid("unexpected arguments: %q", fs.Args())
	case *size <= 0:
		return invalid("invalid size %d: must be a positive integer", *size)
	case *cell <= 0:
		return invalid("invalid cell %d: must be a positive integer", *cell)
	case format == firepal.FormatFASM && *label == "":
		return invalid("empty label for fasm format")
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	firepal.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	logger := firepal.Logger()

	pal := firepal.Build(*size, gamma)
	logger.Debug("palette built", "size", len(pal), "gamma", gamma.String(), "format", format.String())

	if *outFile == "" {
		if err := firepal.Encode(stdout, pal, format, *label); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
	} else {
		err := firepal.WriteFile(*outFile, pal, func(o *firepal.WriteOptions) {
			o.Format = format
			o.Label = *label
		})
		if err != nil {
			return err
		}
	}

	if *previewOut != "" {
		err := firepal.WritePreviewFile(*previewOut, pal, func(o *firepal.PreviewOptions) {
			o.Cell = *cell
		})
		if err != nil {
			return err
		}
	}

	if *show {
		caption := fmt.Sprintf("%s: %d entries, gamma %s", *label, len(pal), gamma)
		return termview.Show(pal, caption)
	}
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
