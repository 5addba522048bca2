// logger.go: ready-made structured logger built on charmbracelet/log
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// charmLogger adapts a charmbracelet logger to the Logger interface.
// The adaptation is needed only because charm accepts any message type
// where Logger requires a string.
type charmLogger struct {
	l *charmlog.Logger
}

func (c charmLogger) Debug(msg string, keyvals ...interface{}) { c.l.Debug(msg, keyvals...) }
func (c charmLogger) Info(msg string, keyvals ...interface{})  { c.l.Info(msg, keyvals...) }
func (c charmLogger) Warn(msg string, keyvals ...interface{})  { c.l.Warn(msg, keyvals...) }
func (c charmLogger) Error(msg string, keyvals ...interface{}) { c.l.Error(msg, keyvals...) }

// DefaultLogger returns a structured terminal logger writing to stderr.
// Use it in Config.Logger when you want engine diagnostics without
// wiring your own logging stack:
//
//	sh, err := xanthos.New(keyOf, xanthos.Config{
//	    Logger: xanthos.DefaultLogger(),
//	})
func DefaultLogger() Logger {
	return NewLogger(os.Stderr)
}

// NewLogger returns a structured logger writing to w.
func NewLogger(w io.Writer) Logger {
	return charmLogger{l: charmlog.NewWithOptions(w, charmlog.Options{
		Prefix:          "xanthos",
		ReportTimestamp: true,
	})}
}
