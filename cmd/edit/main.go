// Package main provides the edit command-line tool. It applies one table or
// heading command to a file at a cursor position and reports the resulting
// edit as JSON, so that an editor can drive it as an external process.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"orglite/internal/command"
	"orglite/internal/config"
	"orglite/internal/logger"
	"orglite/internal/table"
)

var defaultConfigPaths = []string{"orglite.yaml", "configs/orglite.yaml"}

// result is the JSON document written to stdout.
type result struct {
	Command string        `json:"command"`
	Changed bool          `json:"changed"`
	Edit    *command.Edit `json:"edit,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	file := fs.String("file", "", "Path to the org file to edit (required)")
	name := fs.String("cmd", "", "Command to run: "+strings.Join(command.Names, ", "))
	line := fs.Int("line", 1, "Cursor line, 1-based")
	col := fs.Int("col", 1, "Cursor column in bytes, 1-based")
	write := fs.Bool("write", false, "Write the edited file back instead of printing the edit")
	configFile := fs.String("config", "", "Path to YAML configuration file")
	logLevel := fs.String("log-level", "", "Log level override (debug, info, warn, error)")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: ./bin/edit -file FILE -cmd COMMAND [-line N] [-col N] [-write]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	if *file == "" || *name == "" {
		fs.Usage()
		return 2
	}

	cfg, _, err := config.LoadOrDefault(*configFile, defaultConfigPaths...)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Failed to load config: %v\n", err)
		return 1
	}

	log := logger.New(stderr, cfg.Logging.Level)

	if *logLevel != "" {
		if _, ok := logger.ParseLevel(*logLevel); !ok {
			fmt.Fprintf(stderr, "❌ Invalid -log-level %q\n", *logLevel)
			return 2
		}

		log.SetLevel(*logLevel)
	}

	if err := cfg.CheckExtension(*file); err != nil {
		log.Warn("editing file with unexpected extension", "error", err)
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		log.Error("failed to read file", "file", *file, "error", err)
		return 1
	}

	sep := "\n"
	if strings.Contains(string(content), "\r\n") {
		sep = "\r\n"
	}

	doc := command.Document{
		Lines:  strings.Split(string(content), sep),
		Cursor: table.Position{Line: *line - 1, Offset: *col - 1},
	}

	h := command.New(log, command.Options{DefaultWidths: cfg.Table.DefaultWidths})

	edit, err := h.Run(*name, doc)

	switch {
	case errors.Is(err, command.ErrNoChange):
		log.Info("nothing to change", "command", *name)
		return writeResult(stdout, stderr, result{Command: *name})
	case err != nil:
		log.Error("command failed", "command", *name, "file", *file, "error", err)
		return 1
	}

	if *write {
		edited := command.Apply(doc, edit)

		if err := os.WriteFile(*file, []byte(strings.Join(edited.Lines, sep)), 0644); err != nil {
			log.Error("failed to write file", "file", *file, "error", err)
			return 1
		}

		log.Info("file updated", "file", *file, "command", *name,
			"line", edit.Cursor.Line+1, "col", edit.Cursor.Offset+1)
	}

	return writeResult(stdout, stderr, result{Command: *name, Changed: true, Edit: &edit})
}

// writeResult encodes res to w, reporting failures on stderr.
func writeResult(w, stderr io.Writer, res result) int {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(res); err != nil {
		fmt.Fprintf(stderr, "❌ Failed to encode result: %v\n", err)
		return 1
	}

	return 0
}
