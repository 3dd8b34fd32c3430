package sheets

import "fmt"

// CellString reads one cell of a values row as a string. The API omits
// trailing empty cells and may return non-string values for formatted
// columns, so both cases collapse to a plain string here.
func CellString(row []interface{}, idx int) string {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return ""
	}
	if s, ok := row[idx].(string); ok {
		return s
	}
	return fmt.Sprint(row[idx])
}
