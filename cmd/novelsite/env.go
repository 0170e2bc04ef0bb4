package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-novelsite/internal/assets"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	StyleLoader assets.StyleLoader
}

// DefaultEnv returns the production environment with embedded styles.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		StyleLoader: assets.NewEmbeddedLoader(),
	}
}
