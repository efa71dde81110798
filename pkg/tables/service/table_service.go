package service

import (
	"errors"

	"jagung/pkg/tabular"
)

// ImportMode selects how uploaded rows combine with stored rows.
type ImportMode string

const (
	// ModeReplace discards the stored table and keeps the upload.
	ModeReplace ImportMode = "replace"
	// ModeAppend concatenates and, when the table has an identity
	// column, keeps the last row per identity value.
	ModeAppend ImportMode = "append"
)

var (
	ErrUnknownTable = errors.New("unknown table")
	ErrBadMode      = errors.New("mode must be replace or append")
)

// TableService is the generic management surface behind each of the six
// table pages. Every mutation returns the fresh post-mutation state so
// the caller re-renders from it, never from what it held before.
type TableService interface {
	Get(name string) (tabular.Table, error)
	Save(name string, t tabular.Table) (tabular.Table, error)
	DeleteRows(name string, ids []string) (tabular.Table, int, error)
	Import(name string, incoming tabular.Table, mode ImportMode) (tabular.Table, error)
}
