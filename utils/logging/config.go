// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"
)

var nopCloser io.WriteCloser = nopWriteCloser{os.Stdout}

// Config defines the configuration of a logger
type Config struct {
	DisplayLevel Level  `json:"displayLevel"`
	LogFormat    Format `json:"logFormat"`
	MsgPrefix    string `json:"-"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		DisplayLevel: Info,
		LogFormat:    Plain,
	}
}

// NewLoggerFromConfig returns a logger that writes to [w] according to
// [config]. If [w] is nil, the logger writes to stdout and is never closed.
func NewLoggerFromConfig(config Config, w io.WriteCloser) Logger {
	if w == nil {
		w = nopCloser
	}
	return NewLogger(
		config.LogFormat.WrapPrefix(config.MsgPrefix),
		NewWrappedCore(config.DisplayLevel, w, config.LogFormat.ConsoleEncoder()),
	)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
