// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package report - print benchmark results as a fixed width table
// or as JSON
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bitmark-inc/searchtrees/benchmark"
	"github.com/bitmark-inc/searchtrees/fault"
)

// Format - output style
type Format int

// output styles
const (
	Table Format = iota
	JSON
)

// ParseFormat - "table" or "json", case is ignored
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table", "text":
		return Table, nil
	case "json":
		return JSON, nil
	}
	return Table, fault.ErrUnknownFormat
}

// Write - output results in the selected format, a title precedes
// the results if not empty
func Write(w io.Writer, format Format, title string, results []benchmark.Result) error {
	switch format {
	case Table:
		if "" != title {
			fmt.Fprintf(w, "%s:\n", title)
		}
		PrintHeader(w)
		for i := range results {
			PrintResult(w, &results[i])
		}
		return nil
	case JSON:
		return printJson(w, title, results)
	}
	return fault.ErrUnknownFormat
}

var columns = []string{"h1", "h2", "h3", "it1", "st1a", "st1b", "dt1", "st2a", "st2b", "it2", "st3a", "st3b", "dt2", "total"}

const ruleWidth = 5 + 7 + 5 + 7*14

// PrintHeader - column titles and a rule
func PrintHeader(w io.Writer) {
	fmt.Fprintf(w, "%-5s%-7s%-5s", "tree", "  n", "test")
	for _, c := range columns {
		fmt.Fprintf(w, "%7s", c)
	}
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("-", ruleWidth))
}

// PrintResult - one table row, durations in whole milliseconds
func PrintResult(w io.Writer, r *benchmark.Result) {
	fmt.Fprintf(w, "%-5s%-9s%-3s", r.Tree+":", fmt.Sprintf("%d:", r.N), r.Test+":")
	fmt.Fprintf(w, "%7d%7d%7d", r.Height1, r.Height2, r.Height3)
	for _, d := range []time.Duration{
		r.Insert1, r.Search1a, r.Search1b, r.Delete1,
		r.Search2a, r.Search2b, r.Insert2,
		r.Search3a, r.Search3b, r.Delete2,
		r.Total,
	} {
		fmt.Fprintf(w, "%7d", d.Milliseconds())
	}
	fmt.Fprintln(w)
}

// record - JSON form of a result, durations in fractional
// milliseconds
type record struct {
	Tree     string  `json:"tree"`
	N        int     `json:"n"`
	Test     string  `json:"test"`
	Height1  int     `json:"h1"`
	Height2  int     `json:"h2"`
	Height3  int     `json:"h3"`
	Insert1  float64 `json:"it1"`
	Search1a float64 `json:"st1a"`
	Search1b float64 `json:"st1b"`
	Delete1  float64 `json:"dt1"`
	Search2a float64 `json:"st2a"`
	Search2b float64 `json:"st2b"`
	Insert2  float64 `json:"it2"`
	Search3a float64 `json:"st3a"`
	Search3b float64 `json:"st3b"`
	Delete2  float64 `json:"dt2"`
	Total    float64 `json:"total"`
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func printJson(w io.Writer, title string, results []benchmark.Result) error {
	records := make([]record, len(results))
	for i, r := range results {
		records[i] = record{
			Tree:     r.Tree,
			N:        r.N,
			Test:     r.Test,
			Height1:  r.Height1,
			Height2:  r.Height2,
			Height3:  r.Height3,
			Insert1:  ms(r.Insert1),
			Search1a: ms(r.Search1a),
			Search1b: ms(r.Search1b),
			Delete1:  ms(r.Delete1),
			Search2a: ms(r.Search2a),
			Search2b: ms(r.Search2b),
			Insert2:  ms(r.Insert2),
			Search3a: ms(r.Search3a),
			Search3b: ms(r.Search3b),
			Delete2:  ms(r.Delete2),
			Total:    ms(r.Total),
		}
	}

	var message interface{} = records
	if "" != title {
		message = map[string]interface{}{title: records}
	}
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(w, "%s\n", b)
	return nil
}
