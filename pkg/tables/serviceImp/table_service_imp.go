package serviceImp

import (
	"jagung/entities"
	"jagung/pkg/datastore/repository"
	"jagung/pkg/tables/service"
	"jagung/pkg/tabular"
)

type tableSvc struct{ store repository.TableStore }

func New(store repository.TableStore) service.TableService { return &tableSvc{store} }

// domainSchema hides the users table from the generic endpoints; it is
// managed through the admin surface only.
func domainSchema(name string) ([]string, bool) {
	if name == entities.TableUsers {
		return nil, false
	}
	return entities.SchemaFor(name)
}

func (s *tableSvc) Get(name string) (tabular.Table, error) {
	schema, ok := domainSchema(name)
	if !ok {
		return tabular.Table{}, service.ErrUnknownTable
	}
	t, err := s.store.Load(name)
	if err != nil {
		return tabular.Table{}, err
	}
	return tabular.Align(t, schema), nil
}

func (s *tableSvc) Save(name string, t tabular.Table) (tabular.Table, error) {
	if _, ok := domainSchema(name); !ok {
		return tabular.Table{}, service.ErrUnknownTable
	}
	if err := s.store.Save(name, t); err != nil {
		return tabular.Table{}, err
	}
	return s.Get(name)
}

func (s *tableSvc) DeleteRows(name string, ids []string) (tabular.Table, int, error) {
	cur, err := s.Get(name)
	if err != nil {
		return tabular.Table{}, 0, err
	}
	idCol := entities.IdentityColumns[name]
	idx := cur.ColumnIndex(idCol)
	if idx < 0 {
		return cur, 0, nil
	}
	doomed := map[string]bool{}
	for _, id := range ids {
		doomed[id] = true
	}
	kept := cur.Filter(func(row []string) bool { return !doomed[row[idx]] })
	removed := cur.Len() - kept.Len()
	if removed == 0 {
		return cur, 0, nil
	}
	out, err := s.Save(name, kept)
	return out, removed, err
}

func (s *tableSvc) Import(name string, incoming tabular.Table, mode service.ImportMode) (tabular.Table, error) {
	schema, ok := domainSchema(name)
	if !ok {
		return tabular.Table{}, service.ErrUnknownTable
	}
	if mode != service.ModeReplace && mode != service.ModeAppend {
		return tabular.Table{}, service.ErrBadMode
	}
	existing, err := s.Get(name)
	if err != nil {
		return tabular.Table{}, err
	}
	merged := Merge(existing, incoming, schema, mode, entities.IdentityColumns[name])
	return s.Save(name, merged)
}

// Merge combines stored and uploaded rows. Replace keeps only the
// upload. Append concatenates existing rows then incoming rows; with a
// usable identity column, the last row per identity value survives, so
// incoming rows supersede stored ones and later uploads supersede
// earlier lines of the same file. No identity column, no dedup.
func Merge(existing, incoming tabular.Table, schema []string, mode service.ImportMode, idCol string) tabular.Table {
	incoming = tabular.Align(incoming, schema)
	if mode == service.ModeReplace {
		return incoming
	}

	combined := tabular.Align(existing, schema)
	combined.Rows = append(combined.Rows, incoming.Rows...)

	idx := combined.ColumnIndex(idCol)
	if idCol == "" || idx < 0 {
		return combined
	}

	lastFor := map[string]int{}
	for i, row := range combined.Rows {
		lastFor[row[idx]] = i
	}
	out := tabular.New(schema...)
	for i, row := range combined.Rows {
		if lastFor[row[idx]] == i {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
