package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alnah/go-csv2web"
	"github.com/alnah/go-csv2web/internal/assets"
	"github.com/alnah/go-csv2web/internal/config"
	"github.com/alnah/go-csv2web/internal/hints"
)

// resolveConfig layers the config file, the environment and the command
// line, then validates the result.
// Precedence: CLI flags > env vars > config file > defaults.
func resolveConfig(flags *convertFlags) (csv2web.Config, error) {
	env := loadEnvConfig()

	configName := flags.common.config
	if configName == "" {
		configName = env.ConfigPath
	}

	cfg := &config.Config{}
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return csv2web.Config{}, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return csv2web.Config{}, err
	}
	cfg.ApplyDefaults()

	return toRunConfig(cfg), nil
}

// mergeFlags merges CLI flags into config. Only flags given on the command
// line override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	set := func(name string, field *string, value string) {
		if flags.changed[name] {
			*field = value
		}
	}

	set("dataType", &cfg.DataType, flags.dataType)
	set("inputData", &cfg.InputData, flags.inputData)
	set("template", &cfg.Template, flags.template)
	set("htmlOutput", &cfg.HTMLOutput, flags.htmlOutput)
	set("encoding", &cfg.Input.Encoding, flags.encoding)
	set("markup-prefix", &cfg.Markup.Prefix, flags.prefix)
	set("collection", &cfg.Render.Collection, flags.render.collection)
	set("escape", &cfg.Render.Escape, flags.render.escape)
	set("partials", &cfg.Render.Partials, flags.render.partials)
	set("title", &cfg.Render.Title, flags.render.title)

	if flags.changed["sanitize"] {
		cfg.Markup.Sanitize = flags.sanitize
	}
}

// toRunConfig converts a validated, defaulted file config into a run config.
func toRunConfig(cfg *config.Config) csv2web.Config {
	return csv2web.Config{
		DataType:     csv2web.DataType(cfg.DataType),
		InputPath:    cfg.InputData,
		TemplatePath: cfg.Template,
		OutputPath:   cfg.HTMLOutput,
		Encoding:     cfg.Input.Encoding,
		MarkupPrefix: cfg.Markup.Prefix,
		Sanitize:     cfg.Markup.Sanitize,
		Collection:   cfg.Render.Collection,
		Escape:       csv2web.EscapeMode(cfg.Render.Escape),
		PartialsDir:  cfg.Render.Partials,
		Title:        cfg.Render.Title,
	}
}

// progressPrinter prints operator-facing progress lines and remembers the
// stage a failed run stopped at.
type progressPrinter struct {
	w        io.Writer
	cfg      csv2web.Config
	quiet    bool
	verbose  bool
	last     csv2web.Stage
	failedAt csv2web.Stage
}

func (p *progressPrinter) onStage(stage csv2web.Stage, elapsed time.Duration) {
	if stage == csv2web.StageFailed {
		p.failedAt = p.last
	}
	p.last = stage

	if p.quiet {
		return
	}

	var line string
	switch stage {
	case csv2web.StageStart:
		fmt.Fprintln(p.w, "CSV2WEB")
		fmt.Fprintf(p.w, "Execution Info | %s MODE | I: %s T: %s O: %s\n",
			strings.ToUpper(string(p.cfg.DataType)), p.cfg.InputPath, p.cfg.TemplatePath, p.cfg.OutputPath)
		return
	case csv2web.StageIngested:
		line = "- Data parsed."
	case csv2web.StageRendered:
		line = "- Template prepared."
	case csv2web.StageDone:
		line = fmt.Sprintf("- HTML file '%s' is ready.", p.cfg.OutputPath)
	default:
		if p.verbose {
			fmt.Fprintf(p.w, "  %s (%v)\n", stage, elapsed.Round(time.Millisecond))
		}
		return
	}

	if p.verbose {
		line = fmt.Sprintf("%s (%v)", line, elapsed.Round(time.Millisecond))
	}
	fmt.Fprintln(p.w, line)
}

// runConvert executes one run and prints progress to env.Stdout.
// Returns the run error and the hint to print with it.
func runConvert(ctx context.Context, cfg csv2web.Config, common commonFlags, env *Environment) (string, error) {
	printer := &progressPrinter{
		w:        env.Stdout,
		cfg:      cfg,
		quiet:    common.quiet,
		verbose:  common.verbose,
		failedAt: -1,
	}

	res, err := csv2web.Run(ctx, cfg,
		csv2web.WithProgress(printer.onStage),
		csv2web.WithClock(env.Now),
	)
	if err != nil {
		return hintFor(err, cfg, printer.failedAt), err
	}

	if common.verbose {
		fmt.Fprintf(env.Stdout, "%d row(s), %d column(s)\n", res.Records, len(res.Columns))
	}
	return "", nil
}

// hintFor picks an actionable hint for a failed run.
func hintFor(err error, cfg csv2web.Config, failedAt csv2web.Stage) string {
	switch {
	case errors.Is(err, csv2web.ErrFieldCount):
		return hints.ForFieldCount(cfg.InputPath, string(cfg.DataType))
	case errors.Is(err, csv2web.ErrInvalidText):
		return hints.ForInvalidText()
	case errors.Is(err, csv2web.ErrTemplate):
		return hints.ForTemplateSyntax()
	case !errors.Is(err, csv2web.ErrFile):
		return ""
	}

	switch failedAt {
	case csv2web.StageIngesting:
		return hints.ForInputNotFound(cfg.InputPath)
	case csv2web.StageRendering:
		return hints.ForTemplateNotFound([]string{assets.TemplateList, assets.TemplateTable})
	case csv2web.StageWriting:
		return hints.ForOutputDirectory()
	}
	return ""
}
