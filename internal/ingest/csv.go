package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// stripBOM removes a UTF-8 byte order mark if present. Sheet exports from
// Windows tooling routinely carry one.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		br.Discard(3)
	}
	return br
}

// parseCSVRows reads a delimited-text payload into header-keyed rows. Blank
// lines are skipped and ragged rows are tolerated; a payload with no data
// rows is an error so the loader cascades to the next source.
func parseCSVRows(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(stripBOM(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var rows []RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		empty := true
		row := make(RawRow, len(header))
		for i, h := range header {
			if i >= len(record) {
				break
			}
			v := strings.TrimSpace(record[i])
			if v != "" {
				empty = false
			}
			row[h] = v
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("csv payload contains no data rows")
	}
	return rows, nil
}
