package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docserve"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Documents docserve.DocumentService
	Searcher  docserve.Searcher
	Renderer  docserve.Renderer
	Tree      *docserve.TreeNode
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root          string   `help:"Documentation root directory" env:"DOCSERVE_ROOT" default:"."`
	Ext           []string `help:"File extensions to include (repeatable)" placeholder:".md"`
	ExcludeDir    []string `help:"Directory names to prune anywhere in the tree (repeatable)"`
	ExcludePrefix []string `help:"Absolute path prefixes to prune (repeatable)"`
	Verbose       bool     `short:"v" help:"Enable debug logging"`

	Serve  ServeCmd  `cmd:"" help:"Serve the documentation browser over HTTP"`
	List   ListCmd   `cmd:"" help:"List scanned documents"`
	Search SearchCmd `cmd:"" help:"Search documents from the command line"`
	Tree   TreeCmd   `cmd:"" help:"Print the document tree"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"HTTP listen address" env:"DOCSERVE_ADDR" default:":8000"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `default:"50" help:"Maximum number of results"`
}

// TreeCmd is the "tree" subcommand.
type TreeCmd struct{}
