package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docserve"
	"github.com/fwojciec/docserve/fs"
	"github.com/fwojciec/docserve/goldmark"
	"github.com/fwojciec/docserve/mem"
	docslog "github.com/fwojciec/docserve/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services exposed for end-to-end testing.
	Documents docserve.DocumentService
	Searcher  docserve.Searcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docserve"),
		kong.Description("Browse and search a directory of documentation files."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docserve --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	scanner, err := fs.NewScanner(fs.Config{
		Root:            cli.Root,
		Extensions:      cli.Ext,
		ExcludeDirs:     cli.ExcludeDir,
		ExcludePrefixes: cli.ExcludePrefix,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSERVE_ROOT or pass --root to choose the directory to serve\n")
		return err
	}

	docs, err := docslog.NewLoggingScanner(scanner, logger).Scan(ctx)
	if err != nil {
		return fmt.Errorf("failed to scan %q: %w", scanner.Root(), err)
	}

	// Wire core services into dependencies
	m.Documents = mem.NewDocumentStore(docs)
	m.Searcher = docslog.NewLoggingSearcher(mem.NewIndex(docs), logger)
	deps.Documents = m.Documents
	deps.Searcher = m.Searcher
	deps.Tree = docserve.BuildTree(docs)
	deps.Renderer = goldmark.NewRenderer()

	return kongCtx.Run(deps)
}
