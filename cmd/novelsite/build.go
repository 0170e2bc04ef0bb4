package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-novelsite"
	"github.com/alnah/go-novelsite/internal/assets"
	"github.com/alnah/go-novelsite/internal/config"
	"github.com/alnah/go-novelsite/internal/fileutil"
	"github.com/alnah/go-novelsite/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no input directory specified")
	ErrNoOutput     = errors.New("no output directory specified")
	ErrInvalidFlags = errors.New("invalid arguments")
	ErrReadCSS      = errors.New("failed to read CSS file")
)

// runBuildArgs parses args and runs the build command.
func runBuildArgs(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	return runBuild(ctx, positional, flags, env)
}

// runBuild loads config, applies flags and generates the site.
func runBuild(ctx context.Context, positional []string, flags *buildFlags, env *Environment) error {
	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}

	inputDir, err := resolveInputDir(positional, cfg)
	if err != nil {
		return err
	}
	outputDir, err := resolveOutputDir(cfg)
	if err != nil {
		return err
	}

	opts, err := generatorOptions(cfg, flags.common, env)
	if err != nil {
		return err
	}

	gen, err := novelsite.NewGenerator(buildSite(cfg), opts...)
	if err != nil {
		return err
	}

	start := env.Now()
	result, err := gen.Generate(ctx, inputDir, outputDir)
	if err != nil {
		return withHint(err, inputDir, outputDir)
	}

	if !flags.common.quiet {
		for _, p := range []string{result.IndexPath, result.StylePath} {
			if p != "" {
				fmt.Fprintf(env.Stdout, "Generated: %s\n", filepath.Base(p))
			}
		}
		fmt.Fprintln(env.Stdout, "Done!")
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "%d chapter(s), %d skipped in %v\n",
			len(result.Pages), len(result.Skipped), env.Now().Sub(start).Round(time.Millisecond))
	}

	return nil
}

// loadConfig returns the defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) error {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.links != "" {
		if !config.IsLinkPolicy(flags.links) {
			return fmt.Errorf("%w: --links %q%s", ErrInvalidFlags, flags.links, hints.ForLinkPolicy(config.LinkPolicies))
		}
		cfg.Navigation.Links = flags.links
	}
	if flags.index {
		cfg.Index.Enabled = true
	}
	if flags.intro != "" {
		cfg.Index.Enabled = true
		cfg.Index.Intro = flags.intro
	}
	if flags.style {
		cfg.Style.Write = true
	}
	if flags.css != "" {
		cfg.Style.Write = true
		cfg.Style.Path = flags.css
	}
	if flags.site.name != "" {
		cfg.Site.Name = flags.site.name
	}
	if flags.site.yearSet {
		cfg.Site.CopyrightYear = flags.site.year
	}

	return cfg.Validate()
}

// resolveInputDir picks the chapters directory: argument first, then config.
func resolveInputDir(positional []string, cfg *config.Config) (string, error) {
	switch {
	case len(positional) > 1:
		return "", fmt.Errorf("%w: expected one input directory, got %d", ErrInvalidFlags, len(positional))
	case len(positional) == 1:
		return positional[0], nil
	case cfg.Input.Dir != "":
		return cfg.Input.Dir, nil
	}
	return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForInputDirectory(""))
}

// resolveOutputDir returns the configured output directory (flags already merged).
func resolveOutputDir(cfg *config.Config) (string, error) {
	if cfg.Output.Dir == "" {
		return "", fmt.Errorf("%w: use -o or set output.dir in the config", ErrNoOutput)
	}
	return cfg.Output.Dir, nil
}

// buildSite maps config site settings to the library type.
func buildSite(cfg *config.Config) novelsite.Site {
	s := cfg.Site
	fonts := make([]novelsite.FontFamily, 0, len(s.Fonts))
	for _, f := range s.Fonts {
		fonts = append(fonts, novelsite.FontFamily{Family: f.Family, Axes: f.Axes})
	}

	return novelsite.Site{
		Name:            s.Name,
		Lang:            s.Lang,
		CopyrightYear:   s.CopyrightYear,
		CopyrightHolder: s.CopyrightHolder,
		FontBaseURL:     s.FontBaseURL,
		FontStaticURL:   s.FontStaticURL,
		Fonts:           fonts,
		Stylesheet:      s.Stylesheet,
		HomeHref:        s.HomeHref,
		TOCHref:         s.TOCHref,
		Labels: novelsite.Labels{
			Prev: s.Labels.Prev,
			Next: s.Labels.Next,
			TOC:  s.Labels.TOC,
		},
	}
}

// generatorOptions translates config and output flags into generator options.
func generatorOptions(cfg *config.Config, common commonFlags, env *Environment) ([]novelsite.Option, error) {
	// Validate already rejected unknown names.
	policy, _ := novelsite.LinkPolicyByName(cfg.Navigation.Links)
	opts := []novelsite.Option{novelsite.WithLinkPolicy(policy)}

	if !common.quiet {
		opts = append(opts, novelsite.WithProgress(func(p novelsite.Page) {
			fmt.Fprintf(env.Stdout, "Generated: %s\n", filepath.Base(p.Path))
			if common.verbose {
				fmt.Fprintf(env.Stderr, "  %s (%d/%d)\n", p.Chapter.Filename, p.Position+1, p.Total)
			}
		}))
	}
	if common.verbose {
		opts = append(opts, novelsite.WithSkipHook(func(name string) {
			fmt.Fprintf(env.Stderr, "Skipped: %s (not NN-title.md)\n", name)
		}))
	}

	if cfg.Index.Enabled {
		opts = append(opts, novelsite.WithIndex(novelsite.IndexOptions{
			Title:     cfg.Index.Title,
			IntroPath: cfg.Index.Intro,
		}))
	}

	if cfg.Style.Write {
		css, err := resolveCSS(cfg.Style.Path, env.StyleLoader)
		if err != nil {
			return nil, err
		}
		opts = append(opts, novelsite.WithStylesheet(css))
	}

	return opts, nil
}

// resolveCSS reads a custom stylesheet or falls back to the embedded default.
func resolveCSS(path string, loader assets.StyleLoader) (string, error) {
	if path == "" {
		return loader.LoadStyle(assets.DefaultStyleName)
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided CSS path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadCSS, err)
	}
	return string(data), nil
}

// withHint appends an actionable hint to generation errors.
func withHint(err error, inputDir, outputDir string) error {
	switch {
	case errors.Is(err, novelsite.ErrReadInputDir):
		return fmt.Errorf("%w%s", err, hints.ForInputDirectory(inputDir))
	case errors.Is(err, novelsite.ErrWritePage):
		return fmt.Errorf("%w%s", err, hints.ForOutputDirectory(outputDir))
	}
	return err
}
