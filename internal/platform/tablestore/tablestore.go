// Package tablestore persists named tabular snapshots as CSV files and
// small JSON state blobs under a single data directory. Writes go through
// a temp file and rename so readers never observe a half-written table.
package tablestore

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var ErrNotFound = errors.New("tablestore: table not found")

type Store struct {
	dir string
}

// New returns a store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) csvPath(name string) string {
	return filepath.Join(s.dir, name+".csv")
}

func (s *Store) jsonPath(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// WriteTable writes header plus rows to <name>.csv atomically.
func (s *Store) WriteTable(name string, header []string, rows [][]string) error {
	tmp, err := os.CreateTemp(s.dir, name+"-*.csv.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header for %s: %w", name, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write row for %s: %w", name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp for %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.csvPath(name)); err != nil {
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

// ReadTable returns the header row and data rows of <name>.csv.
func (s *Store) ReadTable(name string) ([]string, [][]string, error) {
	f, err := os.Open(s.csvPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: empty table", name)
	}
	return records[0], records[1:], nil
}

// HasTable reports whether <name>.csv exists.
func (s *Store) HasTable(name string) bool {
	_, err := os.Stat(s.csvPath(name))
	return err == nil
}

// WriteState marshals v to <name>.json atomically.
func (s *Store) WriteState(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write state %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp for %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.jsonPath(name)); err != nil {
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

// ReadState unmarshals <name>.json into v. Returns ErrNotFound when the
// state file has never been written.
func (s *Store) ReadState(name string, v any) error {
	data, err := os.ReadFile(s.jsonPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("read state %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal state %s: %w", name, err)
	}
	return nil
}
