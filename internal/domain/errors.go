package domain

import "fmt"

// ParseError reports a malformed or incomplete input file. Load failures are
// fatal at startup; the fields carry enough context to find the bad input.
type ParseError struct {
	File  string // path of the offending file
	Row   int    // 1-based row or feature index, 0 when file-level
	Field string // column or property name, "" when row-level
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Row > 0 && e.Field != "":
		return fmt.Sprintf("parse %s: row %d, field %q: %s", e.File, e.Row, e.Field, e.Msg)
	case e.Row > 0:
		return fmt.Sprintf("parse %s: row %d: %s", e.File, e.Row, e.Msg)
	case e.Field != "":
		return fmt.Sprintf("parse %s: field %q: %s", e.File, e.Field, e.Msg)
	default:
		return fmt.Sprintf("parse %s: %s", e.File, e.Msg)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// SelectionError reports a year or region outside the observed data. Callers
// populate selection widgets from observed values, so hitting this is a
// contract violation rather than a normal runtime path.
type SelectionError struct {
	Kind  string // "year" or "region"
	Value string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selection %s %q is not present in the loaded data", e.Kind, e.Value)
}
