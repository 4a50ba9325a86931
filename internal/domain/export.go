package domain

// ExportRow is a single row in the full-collection export: one row per item,
// every field flattened to a representation that fits both JSON and CSV.
//
// Value is the decimal formatted with two fraction digits, or "" when the
// item has no value. Metadata is the JSON encoding of the metadata map.
// Timestamps are RFC 3339 in UTC.
type ExportRow struct {
	ID          int64
	Name        string
	Description string
	IsActive    bool
	Value       string
	Category    string
	Tags        []string
	Metadata    string
	CreatedAt   string
	UpdatedAt   string
}
