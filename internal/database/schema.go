package database

import (
	"context"
	"fmt"
	"strings"
)

// Field describes one field of a table.
//
// Required fields are declared with their plain type; optional fields
// without a default are wrapped in option<T>. Required string fields also
// reject the empty string.
type Field struct {
	Name     string
	Type     string
	Required bool
	Flexible bool
	ReadOnly bool
	Default  string // SurrealQL expression used when the field is absent
	Value    string // SurrealQL expression recomputed on every write
	Assert   string // extra SurrealQL assertion on $value
}

// Index describes an index over one or more fields.
type Index struct {
	Name   string
	Fields []string
	Unique bool
}

// Schema is the shape of a single table. Values are built fresh by their
// constructors and passed to ApplySchema at startup.
type Schema struct {
	Table   string
	Fields  []Field
	Indexes []Index
}

// RequiredFields returns the names of required top-level fields in declaration order
func (s Schema) RequiredFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required && !strings.Contains(f.Name, ".") {
			names = append(names, f.Name)
		}
	}
	return names
}

// Statements renders the schema as SurrealQL DEFINE statements
func (s Schema) Statements() []string {
	stmts := make([]string, 0, 1+len(s.Fields)+len(s.Indexes))
	stmts = append(stmts, fmt.Sprintf("DEFINE TABLE OVERWRITE %s SCHEMAFULL", s.Table))

	for _, f := range s.Fields {
		stmts = append(stmts, f.statement(s.Table))
	}

	for _, idx := range s.Indexes {
		stmt := fmt.Sprintf("DEFINE INDEX OVERWRITE %s ON TABLE %s FIELDS %s", idx.Name, s.Table, strings.Join(idx.Fields, ", "))
		if idx.Unique {
			stmt += " UNIQUE"
		}
		stmts = append(stmts, stmt)
	}

	return stmts
}

func (f Field) statement(table string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DEFINE FIELD OVERWRITE %s ON TABLE %s", f.Name, table)

	if f.Flexible {
		sb.WriteString(" FLEXIBLE")
	}

	typ := f.Type
	if !f.Required && f.Default == "" && f.Value == "" {
		typ = "option<" + typ + ">"
	}
	sb.WriteString(" TYPE " + typ)

	if f.Default != "" {
		sb.WriteString(" DEFAULT " + f.Default)
	}
	if f.Value != "" {
		sb.WriteString(" VALUE " + f.Value)
	}
	if f.ReadOnly {
		sb.WriteString(" READONLY")
	}

	var asserts []string
	if f.Required && f.Type == "string" {
		asserts = append(asserts, `$value != ""`)
	}
	if f.Assert != "" {
		asserts = append(asserts, f.Assert)
	}
	if len(asserts) > 0 {
		sb.WriteString(" ASSERT " + strings.Join(asserts, " AND "))
	}

	return sb.String()
}

// ApplySchema defines every table, field and index in one transaction.
// Statements use OVERWRITE so applying the same schema again is a no-op.
func ApplySchema(ctx context.Context, db Database, schemas ...Schema) error {
	batch := NewAtomicBatch()
	for _, s := range schemas {
		for _, stmt := range s.Statements() {
			batch.Add(stmt, nil)
		}
	}

	if err := batch.Execute(ctx, db); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
