// Package main provides the org table formatter command-line tool.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"orglite/internal/config"
	"orglite/internal/formatter"
	"orglite/internal/logger"
	"orglite/internal/validator"
)

// defaultConfigPaths are tried in order when -config is not given.
var defaultConfigPaths = []string{"orglite.yaml", "configs/orglite.yaml"}

type options struct {
	configFile string
	targetPath string
	write      bool
	check      bool
	diff       bool
	logLevel   string
	initConfig string
}

type summary struct {
	scanned int
	changed int
	linted  int
	errors  int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("formatter", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options

	fs.StringVar(&opts.configFile, "config", "", "Path to YAML configuration file")
	fs.StringVar(&opts.targetPath, "path", ".", "Path to file or directory to format")
	fs.BoolVar(&opts.write, "write", false, "Write changes to file (default: false, dry-run)")
	fs.BoolVar(&opts.check, "check", false, "Lint tables and report structural problems")
	fs.BoolVar(&opts.diff, "diff", false, "Print a line diff for every file that would change")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	fs.StringVar(&opts.initConfig, "init-config", "", "Write the effective configuration to this path and exit")
	help := fs.Bool("help", false, "Show usage information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	if *help {
		printUsage(fs, stdout)
		return 0
	}

	cfg, used, err := config.LoadOrDefault(opts.configFile, defaultConfigPaths...)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Failed to load config: %v\n", err)
		return 1
	}

	log := logger.New(stderr, cfg.Logging.Level)

	if opts.logLevel != "" {
		if _, ok := logger.ParseLevel(opts.logLevel); !ok {
			fmt.Fprintf(stderr, "❌ Invalid -log-level %q\n", opts.logLevel)
			return 2
		}

		log.SetLevel(opts.logLevel)
	}

	if used != "" {
		fmt.Fprintf(stdout, "⚙️  Loaded configuration from: %s\n", used)
	}

	if log.Enabled(slog.LevelDebug) {
		log.Debug("configuration", "config", cfg.String())
	}

	if opts.initConfig != "" {
		if err := cfg.SaveConfig(opts.initConfig); err != nil {
			log.Error("failed to write configuration", "path", opts.initConfig, "error", err)
			return 1
		}

		fmt.Fprintf(stdout, "✅ Configuration written to: %s\n", opts.initConfig)

		return 0
	}

	fmt.Fprintf(stdout, "📂 Scanning path: %s\n", opts.targetPath)

	if opts.write {
		fmt.Fprintln(stdout, "✍️  Write mode ENABLED (files will be modified)")
	} else {
		fmt.Fprintln(stdout, "👀 Dry-run mode (no changes will be written)")
	}

	fmt.Fprintln(stdout)

	var sum summary

	v := validator.NewTableValidator(cfg)

	err = filepath.Walk(opts.targetPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Error("error accessing path", "path", path, "error", err)

			sum.errors++

			return nil
		}

		if info.IsDir() {
			if cfg.Formatter.SkipHidden && path != opts.targetPath && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}

			return nil
		}

		if !cfg.HasExtension(path) {
			return nil
		}

		sum.scanned++

		wasChanged, lintOK, procErr := processFile(path, opts, cfg, v, stdout, log)
		if procErr != nil {
			fmt.Fprintf(stdout, "❌ Failed to process %s: %v\n", path, procErr)

			sum.errors++

			return nil
		}

		if !lintOK {
			sum.linted++
		}

		if wasChanged {
			sum.changed++

			if opts.write {
				fmt.Fprintf(stdout, "✅ Formatted: %s\n", path)
			} else {
				fmt.Fprintf(stdout, "📝 Would format: %s\n", path)
			}
		}

		return nil
	})
	if err != nil {
		log.Error("error walking path", "path", opts.targetPath, "error", err)
		return 1
	}

	fmt.Fprintln(stdout, "\n----------------------------------------------------------------")
	fmt.Fprintf(stdout, "📈 Summary:\n")
	fmt.Fprintf(stdout, "  Scanned: %d files\n", sum.scanned)
	fmt.Fprintf(stdout, "  Changed: %d files\n", sum.changed)

	if opts.check {
		fmt.Fprintf(stdout, "  Lint:    %d files with problems\n", sum.linted)
	}

	fmt.Fprintf(stdout, "  Errors:  %d\n", sum.errors)

	if sum.errors > 0 || sum.linted > 0 {
		return 1
	}

	if sum.changed > 0 && !opts.write {
		fmt.Fprintln(stdout, "\n💡 Run with -write to apply changes.")
		return 1
	}

	return 0
}

// processFile formats one file and, with -check, lints the content left on
// disk. It reports whether the file changed (or would change) and whether it
// passed the lint.
func processFile(
	path string,
	opts options,
	cfg *config.Config,
	v *validator.TableValidator,
	stdout io.Writer,
	log *logger.Logger,
) (bool, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, false, err
	}

	original := string(content)

	formatted, stats := formatter.FormatDocument(original, formatter.Options{
		DefaultWidths: cfg.Table.DefaultWidths,
	})

	log.Debug("formatted file", "path", path, "stats", formatter.Summary(stats))

	lintOK := true

	if opts.check {
		onDisk := original
		if opts.write {
			onDisk = formatted
		}

		res := v.Validate(onDisk)
		lintOK = res.IsValid

		if !lintOK || len(res.Warnings) > 0 {
			fmt.Fprintf(stdout, "🔍 %s: %s\n", path, res.String())
			res.PrintErrors(stdout)
			res.PrintWarnings(stdout)
		}
	}

	if !stats.Changed() {
		return false, lintOK, nil
	}

	if opts.diff {
		fmt.Fprint(stdout, formatter.Diff(original, formatted, !color.NoColor))
	}

	if opts.write {
		if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
			return false, lintOK, err
		}
	}

	return true, lintOK, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Usage: ./bin/formatter [OPTIONS]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  ./bin/formatter -path notes")
	fmt.Fprintln(w, "  ./bin/formatter -path todo.org -diff")
	fmt.Fprintln(w, "  ./bin/formatter -path notes -check -write")
	fmt.Fprintln(w, "  ./bin/formatter -init-config orglite.yaml")
}
