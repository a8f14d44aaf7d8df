package model

// ListFilter narrows document listings. Nil fields are ignored. When Template
// points at true, Status is ignored entirely: templates are a separate axis
// and are returned regardless of their status.
type ListFilter struct {
	Status   *DocumentStatus
	Type     *DocumentType
	Template *bool
}

func (f ListFilter) StatusApplies() bool {
	return f.Status != nil && (f.Template == nil || !*f.Template)
}

// Match reports whether a document passes the filter; it implements the same
// rule set the store-backed listing applies in SQL.
func (f ListFilter) Match(doc Document) bool {
	if f.Template != nil && doc.IsTemplate != *f.Template {
		return false
	}
	if f.StatusApplies() && doc.Status != *f.Status {
		return false
	}
	if f.Type != nil && doc.Type != *f.Type {
		return false
	}
	return true
}
