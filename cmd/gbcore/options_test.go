package main

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestReadArguments(t *testing.T) {
	var out bytes.Buffer
	options, err := readArguments([]string{"-frames", "10", "-png", "out.png", "-scale", "2", "-q", "rom.gb"}, &out)
	assert.NoError(t, err)
	assert.Equal(t, "rom.gb", options.input)
	assert.Equal(t, 10, options.frames)
	assert.Equal(t, "out.png", options.png)
	assert.Equal(t, 2, options.scale)
	assert.True(t, options.quiet)
	assert.False(t, options.debug)
}

func TestReadArgumentsDefaults(t *testing.T) {
	t.Setenv("GBCORE_TRACE", "")
	var out bytes.Buffer
	options, err := readArguments([]string{"rom.gb"}, &out)
	assert.NoError(t, err)
	assert.Equal(t, 60, options.frames)
	assert.Equal(t, 4, options.scale)
	assert.False(t, options.trace)
	assert.False(t, options.headless)
}

func TestReadArgumentsTraceEnv(t *testing.T) {
	t.Setenv("GBCORE_TRACE", "1")
	options, err := readArguments([]string{"rom.gb"}, &bytes.Buffer{})
	assert.NoError(t, err)
	assert.True(t, options.trace)
}

func TestReadArgumentsScaleClamped(t *testing.T) {
	options, err := readArguments([]string{"-scale", "0", "rom.gb"}, &bytes.Buffer{})
	assert.NoError(t, err)
	assert.Equal(t, 1, options.scale)
}

func TestReadArgumentsMissingROM(t *testing.T) {
	var out bytes.Buffer
	_, err := readArguments(nil, &out)
	assert.True(t, errors.Is(err, errUsage))
	assert.True(t, strings.Contains(out.String(), "usage: gbcore"))
}

func TestReadArgumentsVersion(t *testing.T) {
	options, err := readArguments([]string{"-version"}, &bytes.Buffer{})
	assert.NoError(t, err)
	assert.True(t, options.version)
	assert.Equal(t, "", options.input)
}

func TestReadArgumentsHelp(t *testing.T) {
	_, err := readArguments([]string{"-h"}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}
