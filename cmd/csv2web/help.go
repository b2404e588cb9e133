package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-csv2web/internal/assets"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: csv2web [flags]")
	fmt.Fprintln(w, "       csv2web <command>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a CSV or TSV file into an HTML page with a mustache template.")
	fmt.Fprintln(w, "Columns whose name starts with md_ are converted from Markdown.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a topic")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -d, --dataType <s>        Input format: csv, tsv, auto (default: auto)")
	fmt.Fprintln(w, "  -i, --inputData <path>    Delimited input file (default: data.csv)")
	fmt.Fprintln(w, "  -t, --template <s>        Template file or built-in name (default: template.mustache)")
	fmt.Fprintln(w, "  -o, --htmlOutput <path>   Output HTML file (default: index.html)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --encoding <s>        Input charset, e.g. windows-1252 (default: utf-8)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --markup-prefix <s>   Prefix of Markdown columns (default: md_)")
	fmt.Fprintln(w, "      --sanitize            Sanitize converted Markdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --collection <s>      Template key holding the rows (default: rows)")
	fmt.Fprintln(w, "      --escape <s>          Escaping of {{name}}: markup, all, none (default: markup)")
	fmt.Fprintln(w, "      --partials <dir>      Extra directory searched for partials")
	fmt.Fprintln(w, "      --title <s>           Page title (default: input file name)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'csv2web help templates' for the template context.")
}

// printTemplatesHelp describes the values available to templates.
func printTemplatesHelp(w io.Writer) {
	fmt.Fprintln(w, "Template context:")
	fmt.Fprintln(w, "  rows       One entry per data row, keyed by column name (see --collection)")
	fmt.Fprintln(w, "  columns    Header names in file order")
	fmt.Fprintln(w, "  count      Number of rows")
	fmt.Fprintln(w, "  title      Page title")
	fmt.Fprintln(w, "  table      Rows as cells {column, value, markup}, for generic layouts")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Partials ({{> name}}) are read from name.mustache next to the template,")
	fmt.Fprintln(w, "then from --partials, then from the built-ins.")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Built-in templates and partials: %s\n", strings.Join(assets.BuiltinNames(), ", "))
}

// runHelp prints help for a specific topic.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "templates":
		printTemplatesHelp(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: csv2web version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: csv2web help [topic]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a topic: templates, version.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown help topic: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
