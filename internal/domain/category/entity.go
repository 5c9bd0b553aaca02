// internal/domain/category/entity.go
package category

import (
	"errors"
	"strings"
	"time"
)

// Category is one row of the indicator category tree.
// parent_id is reserved for sub-categories; every seeded category is a root
// (ParentID == nil).
type Category struct {
	ID        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	ParentID  *string   `firestore:"parent_id" json:"parent_id"`
	Order     int       `firestore:"order" json:"order"`
	CreatedAt time.Time `firestore:"created_at,serverTimestamp" json:"created_at"`
}

// Errors (single source)
var (
	ErrNotFound     = errors.New("category: not found")
	ErrInvalidName  = errors.New("category: invalid name")
	ErrInvalidOrder = errors.New("category: invalid order")
)

func (c Category) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidName
	}
	if c.Order <= 0 {
		return ErrInvalidOrder
	}
	return nil
}

// New builds a root category. CreatedAt is left zero so the store assigns
// the server timestamp on write.
func New(name string, order int) (Category, error) {
	c := Category{
		Name:  strings.TrimSpace(name),
		Order: order,
	}
	if err := c.validate(); err != nil {
		return Category{}, err
	}
	return c, nil
}

// MustNew is for static catalogs only.
func MustNew(name string, order int) Category {
	c, err := New(name, order)
	if err != nil {
		panic(err)
	}
	return c
}
