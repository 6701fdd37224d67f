package main

import (
	"errors"

	"github.com/san-kum/lyapfrac/internal/config"
	"github.com/san-kum/lyapfrac/internal/export"
)

const (
	exitUsage  = 1
	exitConfig = 2
	exitOutput = 3
)

func exitCode(err error) int {
	var cerr *config.Error
	switch {
	case errors.As(err, &cerr):
		return exitConfig
	case errors.Is(err, export.ErrOutput):
		return exitOutput
	default:
		return exitUsage
	}
}
