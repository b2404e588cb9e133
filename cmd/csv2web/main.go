package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches the command line and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	rest := args[1:]

	if len(rest) > 0 {
		switch rest[0] {
		case "version":
			fmt.Fprintf(env.Stdout, "csv2web %s\n", Version)
			return ExitSuccess
		case "help":
			return runHelp(rest[1:], env)
		}
	}

	flags, positional, err := parseConvertFlags(rest, env.Stderr)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}
	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if len(positional) > 0 {
		fmt.Fprintf(env.Stderr, "error: unexpected argument %q\n", positional[0])
		printUsage(env.Stderr)
		return ExitUsage
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	warnUnknownEnvVars(env.Stderr)

	cfg, err := resolveConfig(flags)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}

	if hint, err := runConvert(ctx, cfg, flags.common, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hint)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
