// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/searchtrees/benchmark"
	"github.com/bitmark-inc/searchtrees/fault"
	"github.com/bitmark-inc/searchtrees/report"
	"github.com/bitmark-inc/searchtrees/searchtree"
	"github.com/bitmark-inc/searchtrees/util"
	"github.com/bitmark-inc/searchtrees/workload"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultStartValue = 1000
	defaultInterval   = 1000
	defaultIterations = 1
	defaultRepeats    = 1
	defaultFormat     = "table"

	defaultLogDirectory = "log"
	defaultLogFile      = "treebench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// CustomTest - an extra test with its own key orders
type CustomTest struct {
	Name   string `gluamapper:"name" json:"name"`
	Insert string `gluamapper:"insert" json:"insert"`
	Delete string `gluamapper:"delete" json:"delete"`
	BST    bool   `gluamapper:"bst" json:"bst"`
}

// Configuration - everything a benchmark run can be told
type Configuration struct {
	StartValue  int                  `gluamapper:"start_value" json:"start_value"`
	Interval    int                  `gluamapper:"interval" json:"interval"`
	Iterations  int                  `gluamapper:"iterations" json:"iterations"`
	Repeats     int                  `gluamapper:"repeats" json:"repeats"`
	Seed        int64                `gluamapper:"seed" json:"seed"`
	Variants    []string             `gluamapper:"variants" json:"variants"`
	Tests       []string             `gluamapper:"tests" json:"tests"`
	CustomTests []CustomTest         `gluamapper:"custom_tests" json:"custom_tests"`
	Verify      bool                 `gluamapper:"verify" json:"verify"`
	Format      string               `gluamapper:"format" json:"format"`
	Logging     logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration used without a file, logs go to directory
func Default(directory string) *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}
	return &Configuration{
		StartValue: defaultStartValue,
		Interval:   defaultInterval,
		Iterations: defaultIterations,
		Repeats:    defaultRepeats,
		Seed:       0,
		Verify:     false,
		Format:     defaultFormat,
		Logging: logger.Configuration{
			Directory: directory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// Read - defaults overridden by a Lua file; a relative log
// directory is taken relative to the file
func Read(configurationFileName string) (*Configuration, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if !util.EnsureFileExists(configurationFileName) {
		return nil, fault.ErrConfigurationFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default(defaultLogDirectory)
	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	options.Logging.Directory = util.EnsureAbsolute(dataDirectory, options.Logging.Directory)
	return options, nil
}

// SetSizes - take START_VALUE INTERVAL ITERATIONS REPEATS from
// command arguments
func (c *Configuration) SetSizes(arguments []string) error {
	if 4 != len(arguments) {
		return fault.ErrWrongArgumentCount
	}
	targets := []struct {
		value *int
		err   error
	}{
		{&c.StartValue, fault.ErrInvalidStartValue},
		{&c.Interval, fault.ErrInvalidInterval},
		{&c.Iterations, fault.ErrInvalidIterations},
		{&c.Repeats, fault.ErrInvalidRepeats},
	}
	for i, t := range targets {
		n, err := strconv.Atoi(arguments[i])
		if nil != err {
			return t.err
		}
		*t.value = n
	}
	return nil
}

// Benchmark - resolve names and check ranges
func (c *Configuration) Benchmark() (benchmark.Configuration, error) {
	variants := make([]searchtree.Variant, 0, len(c.Variants))
	for _, name := range c.Variants {
		v, err := searchtree.ParseVariant(name)
		if nil != err {
			return benchmark.Configuration{}, err
		}
		variants = append(variants, v)
	}

	tests, err := benchmark.LookupTests(c.Tests)
	if nil != err {
		return benchmark.Configuration{}, err
	}
	if len(c.CustomTests) > 0 {
		tests = append([]benchmark.Test(nil), tests...)
	}
	for _, custom := range c.CustomTests {
		test, err := custom.test()
		if nil != err {
			return benchmark.Configuration{}, err
		}
		tests = append(tests, test)
	}

	bc := benchmark.Configuration{
		StartValue: c.StartValue,
		Interval:   c.Interval,
		Iterations: c.Iterations,
		Repeats:    c.Repeats,
		Seed:       c.Seed,
		Variants:   variants,
		Tests:      tests,
		Verify:     c.Verify,
	}
	if err := bc.Validate(); nil != err {
		return benchmark.Configuration{}, err
	}
	return bc, nil
}

// a custom test needs a name and two known orders
func (ct CustomTest) test() (benchmark.Test, error) {
	if "" == strings.TrimSpace(ct.Name) {
		return benchmark.Test{}, fault.ErrMissingTestName
	}
	insert, err := workload.ParseOrder(ct.Insert)
	if nil != err {
		return benchmark.Test{}, err
	}
	erase, err := workload.ParseOrder(ct.Delete)
	if nil != err {
		return benchmark.Test{}, err
	}
	return benchmark.Test{
		Name:   strings.TrimSpace(ct.Name),
		BST:    ct.BST,
		Insert: insert,
		Delete: erase,
	}, nil
}

// OutputFormat - the report format named by the configuration
func (c *Configuration) OutputFormat() (report.Format, error) {
	return report.ParseFormat(c.Format)
}
