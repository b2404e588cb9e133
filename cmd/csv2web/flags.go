package main

import (
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-csv2web/internal/config"
)

// commonFlags holds flags controlling the CLI itself.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds template rendering flags.
type renderFlags struct {
	collection string
	escape     string
	partials   string
	title      string
}

// convertFlags holds every flag of a run.
type convertFlags struct {
	common     commonFlags
	dataType   string
	inputData  string
	template   string
	htmlOutput string
	encoding   string
	prefix     string
	sanitize   bool
	render     renderFlags
	help       bool

	// changed records the flags set on the command line. Only those
	// override the environment and the config file.
	changed map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addRenderFlags adds template rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.collection, "collection", config.DefaultCollection, "template key holding the rows")
	fs.StringVar(&f.escape, "escape", config.DefaultEscape, "escaping of {{name}}: markup, all, none")
	fs.StringVar(&f.partials, "partials", "", "extra directory searched for partials")
	fs.StringVar(&f.title, "title", "", "page title (default: input file name)")
}

// parseConvertFlags parses run flags and returns positional args.
// Usage errors are reported by the caller, not by pflag.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("csv2web", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}
	f := &convertFlags{}

	// I/O flags, names kept compatible with csv2web 1.x
	fs.StringVarP(&f.dataType, "dataType", "d", config.DefaultDataType, "input format: csv, tsv, auto")
	fs.StringVarP(&f.inputData, "inputData", "i", config.DefaultInputData, "delimited input file")
	fs.StringVarP(&f.template, "template", "t", config.DefaultTemplate, "mustache template file or built-in name")
	fs.StringVarP(&f.htmlOutput, "htmlOutput", "o", config.DefaultHTMLOutput, "output HTML file")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	fs.StringVar(&f.encoding, "encoding", config.DefaultEncoding, "input charset (IANA name)")
	fs.StringVar(&f.prefix, "markup-prefix", config.DefaultPrefix, "prefix of Markdown columns")
	fs.BoolVar(&f.sanitize, "sanitize", false, "sanitize converted Markdown")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.changed = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })

	return f, fs.Args(), nil
}
