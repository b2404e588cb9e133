// Package csv2web renders delimited text files into HTML pages.
//
// # Quick Start
//
// Build a Config and run the pipeline:
//
//	cfg := csv2web.DefaultConfig()
//	cfg.InputPath = "people.csv"
//	cfg.TemplatePath = "people.mustache"
//	cfg.OutputPath = "people.html"
//
//	result, err := csv2web.Run(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d records written to %s\n", result.Records, result.OutputPath)
//
// # Pipeline
//
// A run goes through four stages:
//
//  1. Delimiter resolution (csv, tsv, or auto from the file extension)
//  2. Ingestion: the header row names the columns, each non-blank data row
//     becomes a Record. Columns whose name starts with the markup prefix
//     ("md_" by default) are converted from Markdown to HTML as rows are read.
//  3. Rendering through a mustache template. Records are exposed under the
//     collection key ("rows" by default):
//
//     {{#rows}}<h2>{{name}}</h2>{{md_bio}}{{/rows}}
//
//  4. Writing the output file, atomically.
//
// Any error aborts the run and no output is written. Errors wrap one of
// ErrConfig, ErrFile, ErrIngest or ErrTemplate.
//
// # Templates
//
// TemplatePath is either a file or the name of a built-in template ("table",
// "list"). Partials ({{> name}}) are looked up as name.mustache next to the
// template file, then in Config.PartialsDir, then among the built-ins.
//
// By default {{name}} is HTML-escaped for plain columns and emitted as-is
// for markup columns. See EscapeMode for the alternatives.
package csv2web
