// Package model contains the row shapes that flow from storage to the HTTP layer.
// I keep it lean and focused on data shapes without behavior.
package model

// Column names, in the order the materials query selects them.
const (
	ColumnTitle = "titulo"
	ColumnPages = "num_paginas"
)

// MaterialRow is one raw record of the library-materials query.
// Title is nil for SQL NULL; Pages holds whatever the driver decoded and is
// coerced to an integer further up.
type MaterialRow struct {
	Title *string
	Pages any
}

// Material is a row after page-count coercion.
type Material struct {
	Title *string
	Pages int64
}

// Row is one element of the response table.
type Row []any

// Table is the JSON payload: a header row followed by one row per material.
type Table []Row

// Header returns a fresh copy of the fixed header row.
func Header() Row {
	return Row{ColumnTitle, ColumnPages}
}

// NewTable prepends the header to the given materials.
func NewTable(items []Material) Table {
	t := make(Table, 0, len(items)+1)
	t = append(t, Header())
	for _, m := range items {
		var title any
		if m.Title != nil {
			title = *m.Title
		}
		t = append(t, Row{title, m.Pages})
	}
	return t
}
