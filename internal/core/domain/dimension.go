package domain

import "time"

// Dimension is a named axis of creative variation, e.g. "visual_hook". It
// owns an ordered list of Options. Dimensions are never deleted; IsActive
// switches them off.
type Dimension struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	Options     []Option  `json:"options"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Option is a concrete variant within one Dimension. Templates contain
// {named} placeholders rendered during local template assembly.
type Option struct {
	ID          int64     `json:"id"`
	DimensionID int64     `json:"dimension_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords"`
	VisualHints []string  `json:"visual_hints"`
	Templates   []string  `json:"templates"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// DimensionName is filled by lookups that join the owning dimension.
	DimensionName string `json:"-"`
}

// Detail returns the option as embedded in a draft's dimension_details.
func (o Option) Detail() OptionDetail {
	return OptionDetail{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		Keywords:    nonNil(o.Keywords),
		VisualHints: nonNil(o.VisualHints),
	}
}

// OptionDetail is the subset of an Option recorded on a draft.
type OptionDetail struct {
	ID          int64    `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords"`
	VisualHints []string `json:"visual_hints"`
}

// OptionInput carries the fields of a new option.
type OptionInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	VisualHints []string `json:"visual_hints"`
	Templates   []string `json:"templates"`
}

// DimensionPatch enumerates the mutable dimension fields. Nil fields are
// left untouched.
type DimensionPatch struct {
	DisplayName *string `json:"display_name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p DimensionPatch) Empty() bool {
	return p.DisplayName == nil && p.Description == nil && p.IsActive == nil && p.SortOrder == nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
