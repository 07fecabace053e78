package tables

import "github.com/google/uuid"

// Category is a node in the self-referential category tree. Root categories
// have a nil parent.
type Category struct {
	tableName   struct{}   `bun:"table:categories,alias:c"`
	ID          uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name        string     `bun:"name,notnull" json:"name"`
	Slug        string     `bun:"slug,unique,notnull" json:"slug"`
	Description string     `bun:"description" json:"description,omitempty"`
	ParentID    *uuid.UUID `bun:"parent_id,type:uuid" json:"parent_id,omitempty"`
	IsActive    bool       `bun:"is_active,notnull" json:"is_active"`
	SortOrder   int        `bun:"sort_order,notnull" json:"sort_order"`
}

// CategoryNode is a category with its resolved children, used for the
// hierarchical storefront navigation.
type CategoryNode struct {
	Category
	Children []*CategoryNode `json:"children"`
}
