package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// DefaultLimit is the default number of items per page.
const DefaultLimit = 20

// MaxLimit is the maximum allowed items per page.
const MaxLimit = 100

var (
	// ErrInvalidCursor is returned when a cursor cannot be decoded or no
	// longer points at an item.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrNoCursor signals a first-page request.
	ErrNoCursor = errors.New("no cursor provided")
)

// PaginationRequest holds the pagination query parameters.
type PaginationRequest struct {
	// Cursor is an opaque string from a previous response's nextCursor.
	Cursor string `form:"cursor" json:"cursor"`

	Limit int `form:"limit" json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	if p.Limit > MaxLimit {
		return MaxLimit
	}

	return p.Limit
}

// Validate rejects a cursor that does not decode, before any listing work.
func (p *PaginationRequest) Validate() error {
	if p.Cursor == "" {
		return nil
	}

	_, err := DecodeCursor(p.Cursor)

	return err
}

// DecodeCursor returns ErrNoCursor on a first-page request.
func (p *PaginationRequest) DecodeCursor() (*CursorData, error) {
	return DecodeCursor(p.Cursor)
}

// PaginatedResponse is one page of items.
type PaginatedResponse[T any] struct {
	Items []T `json:"items"`

	// NextCursor is empty on the last page.
	NextCursor string `json:"nextCursor,omitempty"`

	HasMore bool `json:"hasMore"`
}

// NewPaginatedResponse builds a page from up to limit+1 items; the extra
// item only signals that another page exists.
func NewPaginatedResponse[T any](items []T, limit int, cursorBuilder func(T) *CursorData) *PaginatedResponse[T] {
	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	if items == nil {
		items = []T{}
	}

	var nextCursor string
	if hasMore && len(items) > 0 && cursorBuilder != nil {
		nextCursor = EncodeCursor(cursorBuilder(items[len(items)-1]))
	}

	return &PaginatedResponse[T]{
		Items:      items,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	}
}

// Paginate returns the page of items following the cursor in req. Items
// keep their order; key returns the identifier the cursor refers to.
func Paginate[T any](items []T, req *PaginationRequest, key func(T) string) (*PaginatedResponse[T], error) {
	if len(items) == 0 && req.Cursor == "" {
		return EmptyPaginatedResponse[T](), nil
	}

	start := 0

	cursor, err := req.DecodeCursor()
	switch {
	case errors.Is(err, ErrNoCursor):
	case err != nil:
		return nil, err
	default:
		start = -1
		for i, item := range items {
			if key(item) == cursor.ID {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, ErrInvalidCursor
		}
	}

	limit := req.GetLimit()
	end := min(start+limit+1, len(items))

	return NewPaginatedResponse(items[start:end], limit, func(item T) *CursorData {
		return NewCursor(key(item))
	}), nil
}

// CursorData is the position encoded in a cursor: the id of the last item
// on the previous page.
type CursorData struct {
	ID string `json:"id"`
}

// NewCursor creates a cursor positioned after id.
func NewCursor(id string) *CursorData {
	return &CursorData{ID: id}
}

// EncodeCursor encodes cursor data as URL-safe base64 JSON.
func EncodeCursor(data *CursorData) string {
	if data == nil {
		return ""
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(jsonBytes)
}

// DecodeCursor returns ErrNoCursor for an empty string and ErrInvalidCursor
// for anything that is not an encoded cursor.
func DecodeCursor(encoded string) (*CursorData, error) {
	if encoded == "" {
		return nil, ErrNoCursor
	}

	jsonBytes, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var data CursorData
	if err := json.Unmarshal(jsonBytes, &data); err != nil || data.ID == "" {
		return nil, ErrInvalidCursor
	}

	return &data, nil
}

// EmptyPaginatedResponse returns an empty page.
func EmptyPaginatedResponse[T any]() *PaginatedResponse[T] {
	return &PaginatedResponse[T]{Items: []T{}}
}
