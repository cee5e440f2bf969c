// internal/app/system/xlsxsrc/xlsxsrc.go
package xlsxsrc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/acervodigital/oedhub/internal/app/system/rowmap"
	"github.com/xuri/excelize/v2"
)

// ErrSourceNotFound is returned when no workbook exists at any candidate
// path.
var ErrSourceNotFound = errors.New("workbook not found")

// Locate returns the first candidate path that exists on disk.
func Locate(candidates ...string) (string, error) {
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrSourceNotFound, strings.Join(candidates, ", "))
}

// Load reads the first worksheet of the workbook at path.
func Load(path string) ([]rowmap.Row, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return sheetRows(f)
}

// Read reads the first worksheet of a workbook streamed from r (an HTTP
// upload).
func Read(r io.Reader) ([]rowmap.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return sheetRows(f)
}

// sheetRows converts the first sheet's cell grid into Row maps keyed by
// the header row. Header cells are trimmed and BOM-stripped; rows with no
// non-empty cell are dropped. Cells beyond the header width are ignored.
func sheetRows(f *excelize.File) ([]rowmap.Row, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(grid) == 0 {
		return nil, nil
	}

	headers := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var rows []rowmap.Row
	for _, rec := range grid[1:] {
		row := make(rowmap.Row, len(headers))
		empty := true
		for i, h := range headers {
			if h == "" || i >= len(rec) {
				continue
			}
			row[h] = rec[i]
			if strings.TrimSpace(rec[i]) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
