package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nutriscan/backend/internal/domain"
)

// requiredColumns are the exact dataset column names — a contract with the
// data file.
var requiredColumns = []string{
	"Food_Ingredient",
	"Nutrition_Score",
	"Health_Label",
	"Remarks",
	"Category",
}

// Load reads the reference dataset and builds the catalog. Fatal at startup:
// any failure wraps domain.ErrDataLoad.
func Load(path string) (*Catalog, error) {
	entries, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}
	return New(entries)
}

// LoadCSV parses the dataset file into reference entries. Missing or blank
// cells become empty strings, never nulls; rows without an ingredient name
// are skipped. Unparseable scores default to 0.
func LoadCSV(path string) ([]domain.ReferenceEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataLoad, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read header: %v", domain.ErrDataLoad, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", domain.ErrDataLoad, required)
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataLoad, err)
	}

	entries := make([]domain.ReferenceEntry, 0, len(records))
	for _, record := range records {
		name := strings.TrimSpace(field(record, cols["Food_Ingredient"]))
		if name == "" {
			continue
		}

		entries = append(entries, domain.ReferenceEntry{
			Name:     name,
			Score:    parseScore(field(record, cols["Nutrition_Score"])),
			Label:    strings.TrimSpace(field(record, cols["Health_Label"])),
			Remark:   strings.TrimSpace(field(record, cols["Remarks"])),
			Category: strings.TrimSpace(field(record, cols["Category"])),
		})
	}

	return entries, nil
}

// field returns the cell at idx, or "" when the row is shorter than the header.
func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return record[idx]
}

func parseScore(s string) float64 {
	score, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return score
}
