// Command matdemo builds a few 3x3 and 4x4 matrices and prints their sums
// and products.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/seqsense/glmath/internal/table"
)

//go:embed demo.yaml
var demoYAML []byte

func main() {
	file := flag.String("file", "", "YAML document with matrices and jobs (default: built-in demo)")
	debug := flag.Bool("debug", false, "Enable debug log")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *file, os.Stdout); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, path string, w io.Writer) error {
	logger.Info("application started")

	var (
		doc *table.Document
		err error
	)
	if path == "" {
		doc, err = table.Load(bytes.NewReader(demoYAML))
	} else {
		doc, err = table.LoadFile(path)
	}
	if err != nil {
		return err
	}
	logger.Debug("document loaded",
		"path", path, "mat3", len(doc.Mat3), "mat4", len(doc.Mat4), "jobs", len(doc.Jobs),
	)

	if err := doc.Run(w); err != nil {
		return err
	}
	logger.Info("success")
	return nil
}
