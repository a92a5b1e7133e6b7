// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error {
	return nil
}

func TestLogLevels(t *testing.T) {
	require := require.New(t)

	w := &bufferCloser{}
	log := NewLoggerFromConfig(Config{
		DisplayLevel: Info,
		LogFormat:    JSON,
	}, w)

	log.Debug("hidden")
	require.Zero(w.Len())

	log.Info("shown", zap.Uint64("amount", 5))
	require.Contains(w.String(), `"msg":"shown"`)
	require.Contains(w.String(), `"amount":5`)

	require.False(log.Enabled(Debug))
	log.SetLevel(Debug)
	require.True(log.Enabled(Debug))
}

func TestLogWith(t *testing.T) {
	require := require.New(t)

	w := &bufferCloser{}
	log := NewLoggerFromConfig(Config{
		DisplayLevel: Verbo,
		LogFormat:    JSON,
	}, w).With(zap.String("component", "builder"))

	log.Verbo("message")
	require.Contains(w.String(), `"component":"builder"`)
}

func TestFormat(t *testing.T) {
	require := require.New(t)

	f, err := ToFormat("json", 0)
	require.NoError(err)
	require.Equal(JSON, f)

	_, err = ToFormat("fancy", 0)
	require.ErrorIs(err, errUnknownFormat)

	require.Equal("<p>", Plain.WrapPrefix("p"))
	require.Equal("p", JSON.WrapPrefix("p"))
	require.Empty(Colors.WrapPrefix(""))
}
