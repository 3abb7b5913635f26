package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jacoelho/opendrive"
	odrerrors "github.com/jacoelho/opendrive/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("odrlint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outPath := fs.String("o", "", "re-emit the parsed document to file")
	sumoColor := fs.Bool("allow-missing-roadmark-color", false, "accept roadMark elements without a color attribute")
	strict := fs.Bool("strict", false, "reject unknown extension elements instead of preserving them")
	cpuProfilePath := fs.String("cpuprofile", "", "write CPU profile to file")
	memProfilePath := fs.String("memprofile", "", "write memory profile to file")
	fs.Usage = func() {
		_ = writef(stderr, "Usage: %s [options] <document.xodr>\n\n", os.Args[0])
		_ = writeln(stderr, "Parses an ASAM OpenDRIVE document and reports errors.")
		_ = writeln(stderr)
		_ = writeln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		if err := writeln(stderr, "error: exactly one OpenDRIVE file argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		return 2
	}
	docPath := remaining[0]

	if *cpuProfilePath != "" {
		stopCPUProfile, err := startCPUProfile(*cpuProfilePath)
		if err != nil {
			_ = writef(stderr, "error starting CPU profile: %v\n", err)
			return 1
		}
		defer func() {
			if err := stopCPUProfile(); err != nil {
				_ = writef(stderr, "error stopping CPU profile: %v\n", err)
			}
		}()
	}

	if *memProfilePath != "" {
		defer func() {
			if err := writeMemProfile(*memProfilePath); err != nil {
				_ = writef(stderr, "error writing memory profile: %v\n", err)
			}
		}()
	}

	f, err := os.Open(docPath)
	if err != nil {
		_ = writef(stderr, "error opening document: %v\n", err)
		return 1
	}
	defer func() {
		_ = f.Close()
	}()

	drive, err := opendrive.FromReaderWithOptions(f, opendrive.Options{
		AllowMissingRoadMarkColor:   *sumoColor,
		RejectUnknownAdditionalData: *strict,
	})
	if err != nil {
		if codecErr, ok := odrerrors.AsError(err); ok {
			if writeErr := writeln(stderr, codecErr.Error()); writeErr != nil {
				return 1
			}
			if writeErr := writef(stderr, "%s fails to parse\n", docPath); writeErr != nil {
				return 1
			}
			return 1
		}
		_ = writef(stderr, "error parsing: %v\n", err)
		return 1
	}

	if *outPath != "" {
		out, err := os.Create(*outPath)
		if err != nil {
			_ = writef(stderr, "error creating output: %v\n", err)
			return 1
		}
		if err := drive.WriteXML(out); err != nil {
			_ = out.Close()
			_ = writef(stderr, "error writing document: %v\n", err)
			return 1
		}
		if err := out.Close(); err != nil {
			_ = writef(stderr, "error closing output: %v\n", err)
			return 1
		}
	}

	if err := writef(stdout, "%s: %d roads, %d junctions\n", docPath, len(drive.Roads), len(drive.Junctions)); err != nil {
		return 1
	}
	return 0
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}

func startCPUProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return nil, fmt.Errorf("start cpu profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return nil, fmt.Errorf("start cpu profile %s: %w", path, err)
	}
	return func() error {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			return fmt.Errorf("close cpu profile %s: %w", path, err)
		}
		return nil
	}, nil
}

func writeMemProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mem profile %s: %w", path, err)
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return fmt.Errorf("write mem profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return fmt.Errorf("write mem profile %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close mem profile %s: %w", path, err)
	}
	return nil
}
