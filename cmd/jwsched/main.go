// Command jwsched parses a meeting workbook or watchtower study publication
// file and prints its extracted weekly schedule as JSON.
package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/jwsched/parser/internal/fetch"
	"github.com/jwsched/parser/internal/logging"
	"github.com/jwsched/parser/internal/parse"
	"github.com/jwsched/parser/internal/resultjson"
)

const version = "0.1.0"

// CLI defines the command-line interface for jwsched.
var CLI struct {
	LogLevel  string `name:"log-level" default:"info" help:"Log level: debug, info, warn, error"`
	LogFormat string `name:"log-format" default:"text" help:"Log format: text, json"`

	Parse   ParseCmd   `cmd:"" help:"Parse a local publication file and print its schedule as JSON"`
	Fetch   FetchCmd   `cmd:"" help:"Fetch a publication file by URL, then parse and print its schedule as JSON"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ParseCmd parses a file already present on disk.
type ParseCmd struct {
	Path string `arg:"" help:"Path to a mwb_/w_ .jwpub or .epub file" type:"existingfile"`
}

func (c *ParseCmd) Run() error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Path, err)
	}
	return parseAndPrint(filepathBase(c.Path), data)
}

// FetchCmd fetches a file over HTTP before parsing it.
type FetchCmd struct {
	URL string `arg:"" help:"URL of a mwb_/w_ .jwpub or .epub file"`
}

func (c *FetchCmd) Run() error {
	data, err := fetch.Get(context.Background(), c.URL, fetch.DefaultLimits())
	if err != nil {
		return fmt.Errorf("fetching %s: %w", c.URL, err)
	}
	return parseAndPrint(urlBase(c.URL), data)
}

func parseAndPrint(filename string, data []byte) error {
	issue, err := parse.Parse(context.Background(), filename, data, parse.DefaultConfig())
	if err != nil {
		return err
	}
	out, err := resultjson.MarshalIndent(issue)
	if err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// VersionCmd prints the build version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("jwsched version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("jwsched"),
		kong.Description("Extracts weekly meeting schedules from JW publication files"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.Init(parseLevel(CLI.LogLevel), format)

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}

func filepathBase(path string) string { return filepath.Base(path) }

func urlBase(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return filepath.Base(u.Path)
}

func parseLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}
