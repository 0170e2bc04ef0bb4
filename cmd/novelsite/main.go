package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-novelsite/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command in args and returns the process exit code.
// A first argument that is a flag or an existing directory runs build.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "build":
		return report(runBuildArgs(ctx, rest, env), env)
	case "config":
		return report(runConfigArgs(rest, env), env)
	case "version":
		fmt.Fprintf(env.Stdout, "novelsite %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	}

	if strings.HasPrefix(cmd, "-") || fileutil.DirExists(cmd) {
		return report(runBuildArgs(ctx, args[1:], env), env)
	}

	fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
	printUsage(env.Stderr)
	return ExitUsage
}

// report prints err to stderr and maps it to an exit code.
func report(err error, env *Environment) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return exitCodeFor(err)
}
