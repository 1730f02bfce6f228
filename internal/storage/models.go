package storage

// IndexRow is one keyword record for an (entity, site, attribute or field) tuple.
type IndexRow struct {
	EntityID  int64
	SiteID    int64
	Attribute string // built-in attribute name, or "field" for custom fields
	FieldID   int64  // 0 unless Attribute is "field"
	Keywords  string // normalized and boundary-padded: " red car "
}

// IsField reports whether the row holds a custom field's keywords.
func (r IndexRow) IsField() bool {
	return r.FieldID != 0
}
