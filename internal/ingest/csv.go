/*
Package ingest loads facility master data and monthly availability CSVs into
the stores.

The city publishes availability as three CSV files per month (accept,
waiting, enrolled), keyed by facility number, with Japanese headers whose
exact names drift between publications. Master data is a maintained CSV with
stable ASCII headers. Both arrive in either UTF-8 (optionally with BOM) or
CP932/Shift_JIS depending on the source, so decoding sniffs the encoding
before parsing.
*/
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// row is one CSV record keyed by header name.
type row map[string]string

// get returns the first non-blank value among the given header names.
// Header naming drifts across the city's publications, so every lookup
// carries its known aliases.
func (r row) get(names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(r[name]); v != "" {
			return v
		}
	}
	return ""
}

// readRows decodes and parses a whole CSV document into header-keyed rows.
func readRows(reader io.Reader) ([]row, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("ingest: read csv: %w", err)
	}

	data, err = decodeToUTF8(data)
	if err != nil {
		return nil, err
	}

	csvReader := csv.NewReader(bytes.NewReader(data))
	csvReader.FieldsPerRecord = -1 // the city's files have ragged rows

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("ingest: csv has no header row")
	}

	header := records[0]
	rows := make([]row, 0, len(records)-1)
	for _, record := range records[1:] {
		r := make(row, len(header))
		for i, name := range header {
			if i < len(record) {
				r[strings.TrimSpace(name)] = record[i]
			}
		}
		rows = append(rows, r)
	}

	return rows, nil
}

// decodeToUTF8 strips a UTF-8 BOM or transcodes from CP932.
func decodeToUTF8(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(data) {
		return data, nil
	}

	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("ingest: csv is neither UTF-8 nor CP932: %w", err)
	}
	return decoded, nil
}

// parseCount parses one availability cell. Blank, "nan" and unparseable
// cells are unknown, not zero. The city occasionally publishes counts as
// floats ("3.0"); those truncate.
func parseCount(raw string) *int {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	n := int(v)
	return &n
}

// parseCoordinate parses a latitude/longitude cell, keeping the fraction.
func parseCoordinate(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
