package otlearn

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kho/stream"
)

// jsonFeatureTable is the on-disk JSON form of a feature table:
//
//	{"feature": [{"label": str, "values": [str,...]}, ...],
//	 "feature_table": {symbol: [value, ...], ...}}
type jsonFeatureTable struct {
	Feature []struct {
		Label  string   `json:"label"`
		Values []string `json:"values"`
	} `json:"feature"`
	FeatureTable map[string][]string `json:"feature_table"`
}

// LoadFeatureTable loads a FeatureTable from path. The on-disk format
// (JSON or CSV) is chosen by file extension, matching the two forms
// documented for the feature-table file.
func LoadFeatureTable(path string) (*FeatureTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FeatureTableError{Reason: err.Error()}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseFeatureTableJSON(data)
	case ".csv":
		return ParseFeatureTableCSV(data)
	default:
		return nil, &FeatureTableError{Reason: "unrecognized feature table extension: " + path}
	}
}

// ParseFeatureTableJSON parses the JSON feature-table form.
func ParseFeatureTableJSON(data []byte) (*FeatureTable, error) {
	var raw jsonFeatureTable
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FeatureTableError{Reason: err.Error()}
	}
	labels := make([]string, len(raw.Feature))
	allowed := make(map[string][]string, len(raw.Feature))
	for i, f := range raw.Feature {
		labels[i] = f.Label
		allowed[f.Label] = f.Values
	}
	return NewFeatureTable(labels, allowed, raw.FeatureTable)
}

// ParseFeatureTableCSV parses the CSV feature-table form: the first
// row is ",label1,label2,...", subsequent rows are
// "symbol,val1,val2,...". Conventional values default to {"+", "-"}
// when not otherwise declared.
//
// Parsing is driven by the same line-oriented iteratee pattern the
// teacher uses for ARPA files: a small state machine that consumes
// one line at a time and reports malformed input with full context
// instead of silently truncating it.
func ParseFeatureTableCSV(data []byte) (*FeatureTable, error) {
	top := &csvTop{}
	if err := stream.Run(stream.EnumRead(bytes.NewReader(data), csvLineSplit), top); err != nil {
		return nil, &FeatureTableError{Reason: err.Error()}
	}
	allowed := make(map[string][]string, len(top.labels))
	for _, l := range top.labels {
		allowed[l] = []string{"+", "-"}
	}
	bySymbol := make(map[string][]string, len(top.rows))
	for sym, vals := range top.rows {
		bySymbol[sym] = vals
		for i, v := range vals {
			if !contains(allowed[top.labels[i]], v) {
				allowed[top.labels[i]] = append(allowed[top.labels[i]], v)
			}
		}
	}
	return NewFeatureTable(top.labels, allowed, bySymbol)
}

// csvTop is the top-level iteratee: the header line followed by zero
// or more data lines.
type csvTop struct {
	labels []string
	rows   map[string][]string
}

func (it *csvTop) Final() error { return nil }
func (it *csvTop) Next(line []byte) (stream.Iteratee, bool, error) {
	fields := csvSplit(string(line))
	if it.labels == nil {
		if len(fields) < 2 || fields[0] != "" {
			return nil, false, stream.ErrExpect(`header row ",label1,label2,..."`)
		}
		it.labels = fields[1:]
		it.rows = make(map[string][]string)
		return it, true, nil
	}
	if len(fields) != len(it.labels)+1 {
		return nil, false, stream.ErrExpect(strconv.Itoa(len(it.labels)+1) + " comma-separated fields")
	}
	it.rows[fields[0]] = fields[1:]
	return it, true, nil
}

// csvLineSplit is a bufio.SplitFunc: it trims blank lines and strips
// the trailing newline, leaving comma-splitting to csvSplit.
func csvLineSplit(data []byte, atEOF bool) (advance int, token []byte, err error) {
	for len(data) > 0 && data[0] == '\n' {
		data = data[1:]
		advance++
	}
	if len(data) == 0 {
		if atEOF {
			return advance, nil, nil
		}
		return advance, nil, nil
	}
	for i, b := range data {
		if b == '\n' {
			return advance + i + 1, data[:i], nil
		}
	}
	if atEOF {
		return advance + len(data), data, nil
	}
	return advance, nil, nil
}

func csvSplit(line string) []string {
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return nil
	}
	return strings.Split(line, ",")
}
