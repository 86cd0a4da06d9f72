// Command tabletok reads a delimited table file and prints each column's
// tokenized fields, the way the teacher's examples/main.go demonstrates its
// own parser against a sample file.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/shapestone/tabletok/internal/buildinfo"
)

var cli struct {
	Version kong.VersionFlag `help:"Show version information."`

	File                  string `arg:"" help:"Path to the delimited table file." type:"existingfile"`
	Delimiter             string `help:"Field delimiter." default:","`
	Comment               string `help:"Comment-line prefix character, empty to disable." default:""`
	Quote                 string `help:"Quote character, empty to disable." default:"\""`
	SkipRows              int    `help:"Number of data rows to skip after the header." default:"0"`
	FillExtraCols         bool   `help:"Pad short rows with empty fields instead of erroring."`
	StripWhitespaceFields bool   `help:"Trim leading/trailing space and tab from each field."`
	NoColor               bool   `help:"Disable colored/styled output."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Vars{"version": buildinfo.Version()},
		kong.Name("tabletok"),
		kong.Description("A table-text tokenizer CLI."),
		kong.UsageOnError(),
	)

	err := run()
	ctx.FatalIfErrorf(err)
}

func run() error {
	data, err := os.ReadFile(cli.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cli.File, err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	p := newPrinter(cli.NoColor)
	return tokenizeAndPrint(p, data)
}
