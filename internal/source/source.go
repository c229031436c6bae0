package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"tablesel/internal/domain"
)

// Format identifies a row file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ErrUnsupportedFormat is returned for unknown file extensions or formats
var ErrUnsupportedFormat = errors.New("unsupported row source format")

// Table is the column and row data loaded from a source
type Table struct {
	Columns []string
	Rows    []domain.Row
}

// file is the on-disk shape shared by the structured formats
type file struct {
	Columns []string  `yaml:"columns" toml:"columns" json:"columns"`
	Rows    []fileRow `yaml:"rows" toml:"rows" json:"rows"`
}

type fileRow struct {
	ID       string   `yaml:"id" toml:"id" json:"id"`
	Cells    []string `yaml:"cells" toml:"cells" json:"cells"`
	Selected bool     `yaml:"selected" toml:"selected" json:"selected"`
}

// FormatForPath picks a format from the file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads a row file, choosing the decoder from its extension
func Load(path string) (*Table, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read row file: %w", err)
	}

	table, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return table, nil
}

// Parse decodes row data in the given format
func Parse(data []byte, format Format) (*Table, error) {
	var f file
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	case FormatCSV:
		f, err = parseCSV(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return f.table()
}

// parseCSV treats the first record as the header. A column named "id" holds
// row ids; a column named "selected" holds initial selection.
func parseCSV(data []byte) (file, error) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return file{}, err
	}
	if len(records) == 0 {
		return file{}, nil
	}

	idCol, selCol := -1, -1
	var f file
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "id":
			idCol = i
		case "selected":
			selCol = i
		default:
			f.Columns = append(f.Columns, name)
		}
	}

	for _, rec := range records[1:] {
		var row fileRow
		for i, value := range rec {
			switch i {
			case idCol:
				row.ID = value
			case selCol:
				row.Selected = parseBool(value)
			default:
				row.Cells = append(row.Cells, value)
			}
		}
		f.Rows = append(f.Rows, row)
	}
	return f, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "x":
		return true
	default:
		return false
	}
}

func (f file) table() (*Table, error) {
	t := &Table{
		Columns: f.Columns,
		Rows:    make([]domain.Row, 0, len(f.Rows)),
	}

	seen := make(map[string]int, len(f.Rows))
	for i, r := range f.Rows {
		if len(f.Columns) > 0 && len(r.Cells) > len(f.Columns) {
			return nil, fmt.Errorf("row %d has %d cells, table has %d columns", i, len(r.Cells), len(f.Columns))
		}
		if r.ID != "" {
			if prev, dup := seen[r.ID]; dup {
				return nil, fmt.Errorf("rows %d and %d share id %q", prev, i, r.ID)
			}
			seen[r.ID] = i
		}
		t.Rows = append(t.Rows, domain.Row{
			ID:       r.ID,
			Cells:    r.Cells,
			Selected: r.Selected,
		})
	}
	return t, nil
}
