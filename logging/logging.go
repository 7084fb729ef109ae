// SPDX-License-Identifier: MIT

// Package logging builds logrus loggers for library components and the CLI.
// Library packages never touch the global logrus instance: they receive a
// logrus.FieldLogger through an option and fall back to Discard.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrUnknownFormat indicates a log format other than "text" or "json".
var ErrUnknownFormat = errors.New("logging: unknown format")

// Discard returns a logger that drops everything.
func Discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// New returns a logger writing to w at the given level ("debug", "info", ...)
// in the given format ("text" or "json").
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(w)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	l.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return l, nil
}

// OrDiscard returns l, or Discard when l is nil.
func OrDiscard(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return Discard()
	}

	return l
}
