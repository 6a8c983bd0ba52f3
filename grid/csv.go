package grid

import (
	"encoding/csv"
	"io"
	"os"
)

// ReadCSV parses a headerless CSV stream into a Grid. Blank fields
// become empty cells. Short records are padded with empty cells to the
// widest record, so CSV input never produces ErrNonRectangular; the
// uniqueness check of New still applies.
// Complexity: O(R×C).
func ReadCSV(r io.Reader) (Grid, error) {
	cr := csv.NewReader(r)
	// Seating exports from spreadsheets routinely drop trailing commas.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Grid{}, err
	}

	cols := 0
	for _, rec := range records {
		if len(rec) > cols {
			cols = len(rec)
		}
	}
	cells := make([][]Label, len(records))
	for i, rec := range records {
		row := make([]Label, cols)
		copy(row, rec)
		cells[i] = row
	}

	return New(cells)
}

// ReadCSVFile reads a Grid from the CSV file at path.
func ReadCSVFile(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return Grid{}, err
	}
	defer f.Close()

	return ReadCSV(f)
}

// WriteCSV writes g as headerless CSV; empty cells become blank fields.
// Complexity: O(R×C).
func WriteCSV(w io.Writer, g Grid) error {
	cw := csv.NewWriter(w)
	for _, row := range g.Cells() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteCSVFile writes g to the CSV file at path, truncating any
// existing content.
func WriteCSVFile(path string, g Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteCSV(f, g); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
