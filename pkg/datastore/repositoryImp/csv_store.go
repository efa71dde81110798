package repositoryImp

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"jagung/entities"
	"jagung/pkg/datastore/repository"
	"jagung/pkg/tabular"
)

// csvStore keeps each table in <dataDir>/<name>.csv, except the users
// table which lives at usersFile. Reads go through a per-table cache
// invalidated by Save; a generation counter per table bumps on every
// save.
type csvStore struct {
	dataDir   string
	usersFile string

	mu    sync.Mutex
	cache map[string]tabular.Table
	gens  map[string]uint64
}

func New(dataDir, usersFile string) repository.TableStore {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Printf("[store] mkdir %s: %v", dataDir, err)
	}
	return &csvStore{
		dataDir:   dataDir,
		usersFile: usersFile,
		cache:     map[string]tabular.Table{},
		gens:      map[string]uint64{},
	}
}

func (s *csvStore) path(name string) string {
	if name == entities.TableUsers {
		return s.usersFile
	}
	return filepath.Join(s.dataDir, name+".csv")
}

func (s *csvStore) Load(name string) (tabular.Table, error) {
	schema, ok := entities.SchemaFor(name)
	if !ok {
		return tabular.Table{}, fmt.Errorf("unknown table %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.cache[name]; ok {
		return t.Clone(), nil
	}

	path := s.path(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		empty := tabular.New(schema...)
		if err := writeCSV(path, empty); err != nil {
			return tabular.Table{}, fmt.Errorf("create %s: %w", path, err)
		}
		s.cache[name] = empty
		return empty.Clone(), nil
	}

	t, err := readCSV(path)
	if err != nil {
		// Corrupt file: hand the caller an empty columnless table and
		// leave the file alone for manual repair.
		log.Printf("[store] read %s: %v", path, err)
		return tabular.Table{}, nil
	}
	t = tabular.Align(t, schema)
	s.cache[name] = t
	return t.Clone(), nil
}

func (s *csvStore) Save(name string, t tabular.Table) error {
	schema, ok := entities.SchemaFor(name)
	if !ok {
		return fmt.Errorf("unknown table %q", name)
	}
	t = tabular.Align(t, schema)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeCSV(s.path(name), t); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	delete(s.cache, name)
	s.gens[name]++
	return nil
}

func (s *csvStore) Generation(name string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[name]
}

// SeedDefaultUsers writes the stock admin and worker accounts when the
// users file does not exist yet. Called once from main before serving.
func SeedDefaultUsers(store repository.TableStore) error {
	st, ok := store.(*csvStore)
	if !ok {
		return nil
	}
	if _, err := os.Stat(st.usersFile); err == nil {
		return nil
	}
	t := tabular.New(entities.Schemas[entities.TableUsers]...)
	for _, u := range entities.DefaultUsers {
		t.Append([]string{u.Username, u.Password, string(u.Role)})
	}
	return store.Save(entities.TableUsers, t)
}

func readCSV(path string) (tabular.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return tabular.Table{}, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return tabular.Table{}, err
	}
	if len(records) == 0 {
		return tabular.Table{}, nil
	}

	head := records[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\uFEFF")
	}
	t := tabular.New(head...)
	for _, rec := range records[1:] {
		t.Append(rec)
	}
	return t, nil
}

func writeCSV(path string, t tabular.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(f)
	if err := cw.Write(t.Columns); err != nil {
		f.Close()
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
