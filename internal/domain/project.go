package domain

// EntityProject is the entity name used in project errors.
const EntityProject = "project"

// Project is a single write-up shown on the blog.
// Records are fixed at build time and never change while the process runs.
type Project struct {
	// ID is the routing key; it appears verbatim as a path segment.
	ID string

	// Title is the display title.
	Title string

	// Date is the publication date exactly as it should be displayed.
	// It is never parsed.
	Date string

	// Description is free-form text. Line breaks are significant.
	Description string

	// Tags are shown in this order. Duplicates are allowed.
	Tags []string
}

// Clone returns a copy that shares no memory with p.
func (p Project) Clone() Project {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}

	return p
}
