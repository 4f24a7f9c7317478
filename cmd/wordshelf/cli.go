package main

import (
	"context"
	"io"

	"github.com/fwojciec/wordshelf"
	"github.com/fwojciec/wordshelf/ingest"
	"github.com/fwojciec/wordshelf/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Books    wordshelf.BookService
	Ingestor *ingest.Ingestor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch  FetchCmd  `cmd:"" help:"Fetch a book from a URL and save its word ranking"`
	Search SearchCmd `cmd:"" help:"Look up the saved ranking for a book title"`
	List   ListCmd   `cmd:"" help:"List all saved books"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved book"`

	Verbose bool `short:"v" help:"Log operations to stderr"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URLs    []string `arg:"" name:"url" help:"Document URLs (Project Gutenberg plain text or HTML)"`
	Title   string   `short:"t" help:"Book title to save under (single URL only)"`
	Timeout int      `default:"10" help:"Fetch timeout in seconds"`
	RPS     float64  `default:"1" help:"Max requests per second per domain"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Title string `arg:"" help:"Book title"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Title string `arg:"" help:"Book title"`
	Force bool   `help:"Confirm deletion"`
}
