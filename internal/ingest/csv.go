// Package ingest parses the delimited catalog source into tool records
// and keeps the store in sync with the source file.
package ingest

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ocastel/tooldex/internal/models"
	"github.com/ocastel/tooldex/internal/slug"
)

// DefaultDelimiter separates fields in the catalog source. Sub-lists
// inside a field (tags, features, use cases, audiences) use ','.
const DefaultDelimiter = ";"

// Column order of the source, fixed by the export format. The first
// line is a header carrying these names and is skipped.
const numColumns = 10

// Report summarises one ingestion run. Malformed rows never abort the
// run; they are skipped and counted here.
type Report struct {
	Lines     int `json:"lines"`     // data lines seen (header excluded)
	Imported  int `json:"imported"`  // records produced
	Skipped   int `json:"skipped"`   // rows without a name
	Conflicts int `json:"conflicts"` // rows whose slug duplicates an earlier row
}

// Parse reads semicolon-delimited lines from r and returns the parsed
// tool records in source order. The split is a naive per-line split on
// the delimiter: the format has no quoting, so a field can never
// contain the delimiter itself. Rows with an empty name are dropped
// silently (counted in the report); a row whose derived slug collides
// with an earlier row is a conflict and is dropped rather than
// shadowing the first record.
func Parse(r io.Reader, delim string) ([]models.Tool, Report, error) {
	if delim == "" {
		delim = DefaultDelimiter
	}

	var (
		rep   Report
		tools []models.Tool
		seen  = make(map[string]struct{})
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	header := true
	for sc.Scan() {
		line := sc.Text()
		if header {
			header = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rep.Lines++

		t := parseLine(line, delim)
		if t.Name == "" {
			rep.Skipped++
			continue
		}

		sl := slug.Make(t.Name)
		if _, dup := seen[sl]; dup {
			rep.Conflicts++
			continue
		}
		seen[sl] = struct{}{}
		tools = append(tools, t)
	}
	if err := sc.Err(); err != nil {
		return nil, rep, err
	}

	rep.Imported = len(tools)
	return tools, rep, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path, delim string) ([]models.Tool, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, err
	}
	defer f.Close()
	return Parse(f, delim)
}

// parseLine maps one data line onto a Tool by column position. Missing
// trailing columns become empty fields.
func parseLine(line, delim string) models.Tool {
	cols := strings.Split(line, delim)
	for len(cols) < numColumns {
		cols = append(cols, "")
	}
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return models.Tool{
		Name:        cols[0],
		Category:    cols[1],
		Link:        cols[2],
		Overview:    cols[3],
		Description: cols[4],
		Audience:    cols[5],
		Features:    cols[6],
		UseCases:    cols[7],
		Tags:        cols[8],
		ImageURL:    cols[9],
	}
}
