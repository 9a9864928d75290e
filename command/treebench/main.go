// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/searchtrees/benchmark"
	"github.com/bitmark-inc/searchtrees/configuration"
	"github.com/bitmark-inc/searchtrees/fault"
	"github.com/bitmark-inc/searchtrees/report"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
		{Long: "verify", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "show", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		usage(program)
		return
	}

	// read options and parse the configuration file
	var theConfiguration *configuration.Configuration
	switch len(options["config-file"]) {
	case 0:
		theConfiguration = configuration.Default(filepath.Join(os.TempDir(), "treebench"))
	case 1:
		configurationFile := options["config-file"][0]
		theConfiguration, err = configuration.Read(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	shows := options["show"]
	if 0 == len(shows) {
		if len(arguments) > 0 || 0 == len(options["config-file"]) {
			if err := theConfiguration.SetSizes(arguments); nil != err {
				usage(program)
				exitwithstatus.Message("%s: arguments: %q  error: %s", program, arguments, err)
			}
		}
	}

	if len(options["json"]) > 0 {
		theConfiguration.Format = "json"
	}
	if len(options["verify"]) > 0 {
		theConfiguration.Verify = true
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Levels["main"] = "debug"
		theConfiguration.Logging.Levels["benchmark"] = "debug"
	}

	// start logging
	if err = os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	if len(shows) > 0 {
		for _, s := range shows {
			if err := showTree(log, s, theConfiguration.Seed); nil != err {
				exitwithstatus.Message("%s: show: %q  error: %s", program, s, err)
			}
		}
		return
	}

	format, err := theConfiguration.OutputFormat()
	if nil != err {
		exitwithstatus.Message("%s: format: %q  error: %s", program, theConfiguration.Format, err)
	}

	benchmarkConfiguration, err := theConfiguration.Benchmark()
	if nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	runner, err := benchmark.New(benchmarkConfiguration)
	if nil != err {
		exitwithstatus.Message("%s: benchmark setup error: %s", program, err)
	}

	results, err := runner.Run()
	if nil != err {
		fault.Criticalf("benchmark error: %s", err)
		exitwithstatus.Message("%s: benchmark error: %s", program, err)
	}
	log.Infof("results: %d", len(results))

	if err := report.Write(os.Stdout, format, "", results); nil != err {
		exitwithstatus.Message("%s: report error: %s", program, err)
	}

	if benchmarkConfiguration.Repeats > 1 {
		fmt.Println()
		if err := report.Write(os.Stdout, format, "averages", benchmark.Averages(results)); nil != err {
			exitwithstatus.Message("%s: report error: %s", program, err)
		}
	}
}

func usage(program string) {
	fmt.Printf("usage: %s [options] [START_VALUE INTERVAL ITERATIONS REPEATS]\n", program)
	fmt.Printf("       --help                -h            this message\n")
	fmt.Printf("       --version             -V            display version\n")
	fmt.Printf("       --verbose             -v            debug level logging\n")
	fmt.Printf("       --config-file=FILE    -c FILE       Lua configuration file\n")
	fmt.Printf("       --json                -j            JSON output\n")
	fmt.Printf("       --verify              -k            check tree invariants after each phase\n")
	fmt.Printf("       --show=VARIANT:N      -s VARIANT:N  draw a tree of 1..N inserted in random order\n")
	fmt.Printf("\n")
	fmt.Printf("tree sizes: START_VALUE, START_VALUE+INTERVAL, ... ITERATIONS values, each repeated REPEATS times\n")
	fmt.Printf("variants:   %s\n", "RBT AVL AA BST")
}
