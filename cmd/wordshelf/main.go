package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/fwojciec/wordshelf"
	shelfhttp "github.com/fwojciec/wordshelf/http"
	"github.com/fwojciec/wordshelf/ingest"
	shelfslog "github.com/fwojciec/wordshelf/slog"
	"github.com/fwojciec/wordshelf/sqlite"
)

func main() {
	ctx := context.Background()

	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Book service for end-to-end testing.
	BookService wordshelf.BookService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wordshelf"),
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
		return fmt.Errorf("no command specified. Run 'wordshelf --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command, _, _ := strings.Cut(kongCtx.Command(), " ")

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WORDSHELF_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.BookService = sqlite.NewBookService(m.DB)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		m.BookService = shelfslog.NewLoggingBookService(m.BookService, logger)
	}
	deps.DB = m.DB
	deps.Books = m.BookService

	// The fetch command needs the HTTP fetcher and rate limiter
	if command == "fetch" {
		var fetcher wordshelf.Fetcher = shelfhttp.NewFetcher(
			shelfhttp.WithTimeout(time.Duration(cli.Fetch.Timeout) * time.Second),
		)
		if cli.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			fetcher = shelfslog.NewLoggingFetcher(fetcher, logger)
		}
		defer fetcher.Close()

		deps.Ingestor = &ingest.Ingestor{
			Fetcher: fetcher,
			Books:   m.BookService,
			Limiter: ingest.NewDomainLimiter(cli.Fetch.RPS),
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("WORDSHELF_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "wordshelf.db"
	}
	dir := filepath.Join(home, ".wordshelf")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "wordshelf.db")
}
