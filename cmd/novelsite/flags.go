package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags override site settings from the config.
type siteFlags struct {
	name    string
	year    int
	yearSet bool // --year was given; 0 is a valid year
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	output string
	links  string
	index  bool
	intro  string
	style  bool
	css    string
	site   siteFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show skipped files and timing")
}

// addSiteFlags adds site override flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.name, "site-name", "", "site name shown in titles, nav and footer")
	fs.IntVar(&f.year, "year", 0, "copyright year")
}

// parseBuildFlags parses build command flags and returns positional args.
// Errors and usage go to w.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (must exist)")
	fs.StringVar(&f.links, "links", "", "prev/next policy: ordinal, position")
	fs.BoolVar(&f.index, "index", false, "also write index.html")
	fs.StringVar(&f.intro, "intro", "", "markdown file shown above the index chapter list")
	fs.BoolVar(&f.style, "style", false, "also write the site stylesheet")
	fs.StringVar(&f.css, "css", "", "custom CSS file for the stylesheet (implies --style)")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	fs.Usage = func() { printBuildUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}
	f.site.yearSet = fs.Changed("year")

	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, w io.Writer) (*commonFlags, []string, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &commonFlags{}

	addCommonFlags(fs, f)

	fs.Usage = func() { printConfigUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}

	return f, fs.Args(), nil
}

// wrapFlagError tags parse failures so they map to ExitUsage.
// flag.ErrHelp passes through untouched.
func wrapFlagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
}
