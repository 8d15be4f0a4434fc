package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	bibleorgsys "github.com/alerque/BibleOrgSys"
	"github.com/alerque/BibleOrgSys/bookorder"
	boserrors "github.com/alerque/BibleOrgSys/errors"
	"github.com/alerque/BibleOrgSys/iso639"
	"github.com/alerque/BibleOrgSys/usfm"
)

// validatable is the shared surface of the catalog wrappers.
type validatable interface {
	Validate(opts ...bibleorgsys.Option) (*bibleorgsys.Report, error)
}

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("catalogcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	entity := fs.String("entity", "", "catalog entity name of the table")
	format := fs.String("report", "text", "report format: text, json, or yaml")
	verbose := fs.Bool("verbose", false, "log load and validation progress")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s --entity <name> [--report text|json|yaml] <table file>\n\n", os.Args[0]),
			writeln(stderr, "Validates a catalog table file against its schema."),
			writeln(stderr),
			writef(stderr, "Entities: %s\n\n", strings.Join(bibleorgsys.Schemas(), ", ")),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *entity == "" {
		if err := writeln(stderr, "error: --entity is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		if err := writeln(stderr, "error: exactly one table file argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}
	tablePath := remaining[0]

	var opts []bibleorgsys.Option
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			if writeErr := writef(stderr, "error building logger: %v\n", err); writeErr != nil {
				return 1
			}
			return 1
		}
		defer func() { _ = logger.Sync() }()
		opts = append(opts, bibleorgsys.WithLogger(logger.Sugar()))
	}

	catalog, err := loadTable(*entity, tablePath, opts)
	if err != nil {
		if writeErr := writef(stderr, "error loading table: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}

	report, err := catalog.Validate(opts...)
	if err != nil {
		if writeErr := writef(stderr, "error validating: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}

	switch *format {
	case "text":
		return reportText(report, tablePath, stdout, stderr)
	case "json":
		if err := report.WriteJSON(stdout); err != nil {
			if writeErr := writef(stderr, "error writing report: %v\n", err); writeErr != nil {
				return 1
			}
			return 1
		}
	case "yaml":
		if err := report.WriteYAML(stdout); err != nil {
			if writeErr := writef(stderr, "error writing report: %v\n", err); writeErr != nil {
				return 1
			}
			return 1
		}
	default:
		if err := writef(stderr, "error: unknown report format %q\n", *format); err != nil {
			return 1
		}
		return 2
	}

	if !report.Ok() {
		return 1
	}
	return 0
}

func loadTable(entity, tablePath string, opts []bibleorgsys.Option) (validatable, error) {
	dir, base := filepath.Split(tablePath)
	if dir == "" {
		dir = "."
	}
	fsys := os.DirFS(dir)

	switch entity {
	case iso639.EntityName:
		return iso639.Load(fsys, base, opts...)
	case bookorder.EntityName:
		return bookorder.LoadSystem(fsys, base, systemName(base), opts...)
	case usfm.EntityName:
		return usfm.Load(fsys, base, opts...)
	default:
		return nil, fmt.Errorf("unknown entity %q (known: %s)", entity, strings.Join(bibleorgsys.Schemas(), ", "))
	}
}

func systemName(base string) string {
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimPrefix(name, "BibleBookOrder_")
}

func reportText(report *bibleorgsys.Report, tablePath string, stdout, stderr io.Writer) int {
	if err := report.Err(); err != nil {
		if violations, ok := boserrors.AsViolations(err); ok {
			for i := range violations {
				if writeErr := writeln(stderr, violations[i].Error()); writeErr != nil {
					return 1
				}
			}
			if writeErr := writef(stderr, "%s fails to validate\n", tablePath); writeErr != nil {
				return 1
			}
			return 1
		}
		if writeErr := writef(stderr, "error validating: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}

	if err := writef(stdout, "%s validates\n", tablePath); err != nil {
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
