// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/searchtrees/benchmark"
	"github.com/bitmark-inc/searchtrees/configuration"
	"github.com/bitmark-inc/searchtrees/fault"
	"github.com/bitmark-inc/searchtrees/report"
	"github.com/bitmark-inc/searchtrees/searchtree"
	"github.com/bitmark-inc/searchtrees/workload"
)

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "treebench.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0600), "write")
	return dir, fileName
}

const full = `
local repeats = 1 + 2
return {
    start_value = 500,
    interval = 250,
    iterations = 4,
    repeats = repeats,
    seed = 42,
    variants = { "AVL", "aa" },
    tests = { "B", "f" },
    verify = true,
    format = "json",
    logging = {
        directory = "logs",
        file = "bench.log",
        size = 4096,
        count = 2,
        console = true,
        levels = {
            DEFAULT = "info",
            benchmark = "debug",
        },
    },
}
`

func TestReadFull(t *testing.T) {
	dir, fileName := writeConfiguration(t, full)

	c, err := configuration.Read(fileName)
	require.NoError(t, err, "read")

	assert.Equal(t, 500, c.StartValue, "start value")
	assert.Equal(t, 250, c.Interval, "interval")
	assert.Equal(t, 4, c.Iterations, "iterations")
	assert.Equal(t, 3, c.Repeats, "repeats")
	assert.Equal(t, int64(42), c.Seed, "seed")
	assert.Equal(t, []string{"AVL", "aa"}, c.Variants, "variants")
	assert.Equal(t, []string{"B", "f"}, c.Tests, "tests")
	assert.True(t, c.Verify, "verify")
	assert.Equal(t, "json", c.Format, "format")

	assert.Equal(t, filepath.Join(dir, "logs"), c.Logging.Directory, "log directory")
	assert.Equal(t, "bench.log", c.Logging.File, "log file")
	assert.Equal(t, 4096, c.Logging.Size, "log size")
	assert.Equal(t, 2, c.Logging.Count, "log count")
	assert.True(t, c.Logging.Console, "console")
	assert.Equal(t, "info", c.Logging.Levels[logger.DefaultTag], "default level")
	assert.Equal(t, "debug", c.Logging.Levels["benchmark"], "benchmark level")

	bc, err := c.Benchmark()
	require.NoError(t, err, "benchmark")
	assert.Equal(t, []searchtree.Variant{searchtree.AVL, searchtree.AA}, bc.Variants, "variants")
	require.Len(t, bc.Tests, 2, "tests")
	assert.Equal(t, "B", bc.Tests[0].Name, "first test")
	assert.Equal(t, "F", bc.Tests[1].Name, "second test")
	assert.Equal(t, 3, bc.Repeats, "repeats")
	assert.True(t, bc.Verify, "verify")

	format, err := c.OutputFormat()
	require.NoError(t, err, "format")
	assert.Equal(t, report.JSON, format, "format")
}

func TestReadDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, "return {}")

	c, err := configuration.Read(fileName)
	require.NoError(t, err, "read")

	expected := configuration.Default(filepath.Join(dir, "log"))
	assert.Equal(t, expected, c, "defaults")
	assert.Equal(t, "critical", c.Logging.Levels[logger.DefaultTag], "default level")

	bc, err := c.Benchmark()
	require.NoError(t, err, "benchmark")
	assert.Empty(t, bc.Variants, "variants left for the runner to fill")
	assert.Len(t, bc.Tests, 6, "all tests")
}

func TestReadArgGlobal(t *testing.T) {
	_, fileName := writeConfiguration(t, "return { format = arg[0] }")
	c, err := configuration.Read(fileName)
	require.NoError(t, err, "read")
	assert.Equal(t, fileName, c.Format, "arg[0]")
}

const custom = `
return {
    tests = { "A" },
    custom_tests = {
        { name = "R", insert = "reversed", delete = "Ordered", bst = true },
        { name = "S", insert = "uniform", delete = "reversed" },
    },
}
`

func TestCustomTests(t *testing.T) {
	_, fileName := writeConfiguration(t, custom)

	c, err := configuration.Read(fileName)
	require.NoError(t, err, "read")
	require.Len(t, c.CustomTests, 2, "custom tests")

	bc, err := c.Benchmark()
	require.NoError(t, err, "benchmark")
	require.Len(t, bc.Tests, 3, "standard plus custom")
	assert.Equal(t, "A", bc.Tests[0].Name, "standard test")

	r := bc.Tests[1]
	assert.Equal(t, "R", r.Name, "first custom")
	assert.Equal(t, workload.Reversed, r.Insert, "first insert order")
	assert.Equal(t, workload.Ordered, r.Delete, "first delete order")
	assert.True(t, r.BST, "first bst")

	s := bc.Tests[2]
	assert.Equal(t, "S", s.Name, "second custom")
	assert.Equal(t, workload.Uniform, s.Insert, "second insert order")
	assert.Equal(t, workload.Reversed, s.Delete, "second delete order")
	assert.False(t, s.BST, "second bst")

	// the standard list itself is untouched
	assert.Len(t, benchmark.Tests, 6, "standard tests")
}

func TestCustomTestErrors(t *testing.T) {
	c := configuration.Default(t.TempDir())

	c.CustomTests = []configuration.CustomTest{{Name: "X", Insert: "sideways", Delete: "ordered"}}
	_, err := c.Benchmark()
	assert.Equal(t, fault.ErrUnknownOrder, err, "unknown insert order")

	c.CustomTests = []configuration.CustomTest{{Name: "X", Insert: "ordered", Delete: "upwards"}}
	_, err = c.Benchmark()
	assert.Equal(t, fault.ErrUnknownOrder, err, "unknown delete order")

	c.CustomTests = []configuration.CustomTest{{Name: " ", Insert: "ordered", Delete: "ordered"}}
	_, err = c.Benchmark()
	assert.Equal(t, fault.ErrMissingTestName, err, "missing name")

	// custom tests add to the full list when no tests are named
	c.CustomTests = []configuration.CustomTest{{Name: "G", Insert: "nearlyOrdered", Delete: "uniform"}}
	bc, err := c.Benchmark()
	require.NoError(t, err, "benchmark")
	require.Len(t, bc.Tests, 7, "all standard plus one")
	assert.Equal(t, workload.NearlyOrdered, bc.Tests[6].Insert, "insert order")
}

func TestReadErrors(t *testing.T) {
	_, notTable := writeConfiguration(t, "return 5")
	_, err := configuration.Read(notTable)
	assert.Equal(t, fault.ErrNotATable, err, "not a table")

	_, broken := writeConfiguration(t, "return {")
	_, err = configuration.Read(broken)
	assert.Error(t, err, "syntax")

	_, err = configuration.Read(filepath.Join(t.TempDir(), "missing.conf"))
	assert.Equal(t, fault.ErrConfigurationFile, err, "missing file")
}

func TestSetSizes(t *testing.T) {
	c := configuration.Default("log")
	require.NoError(t, c.SetSizes([]string{"10", "20", "3", "2"}), "set")
	assert.Equal(t, 10, c.StartValue, "start value")
	assert.Equal(t, 20, c.Interval, "interval")
	assert.Equal(t, 3, c.Iterations, "iterations")
	assert.Equal(t, 2, c.Repeats, "repeats")

	assert.Equal(t, fault.ErrWrongArgumentCount, c.SetSizes([]string{"1", "2"}), "count")
	assert.Equal(t, fault.ErrInvalidStartValue, c.SetSizes([]string{"x", "2", "3", "4"}), "start")
	assert.Equal(t, fault.ErrInvalidInterval, c.SetSizes([]string{"1", "", "3", "4"}), "interval")
	assert.Equal(t, fault.ErrInvalidIterations, c.SetSizes([]string{"1", "2", "3.5", "4"}), "iterations")
	assert.Equal(t, fault.ErrInvalidRepeats, c.SetSizes([]string{"1", "2", "3", "many"}), "repeats")
}

func TestBenchmarkErrors(t *testing.T) {
	c := configuration.Default("log")
	c.Variants = []string{"AVL", "splay"}
	_, err := c.Benchmark()
	assert.Equal(t, fault.ErrUnknownVariant, err, "variant")

	c = configuration.Default("log")
	c.Tests = []string{"Q"}
	_, err = c.Benchmark()
	assert.Equal(t, fault.ErrUnknownTest, err, "test")

	c = configuration.Default("log")
	c.Repeats = 0
	_, err = c.Benchmark()
	assert.Equal(t, fault.ErrInvalidRepeats, err, "repeats")

	c = configuration.Default("log")
	c.Format = "yaml"
	_, err = c.OutputFormat()
	assert.Equal(t, fault.ErrUnknownFormat, err, "format")
}
