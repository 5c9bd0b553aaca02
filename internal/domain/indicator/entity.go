// internal/domain/indicator/entity.go
package indicator

import (
	"errors"
	"strings"
	"time"
)

// Type classifies an indicator within the institutional QA scheme.
type Type string

const (
	// TypeIKU: Indikator Kinerja Utama (main performance indicator).
	TypeIKU Type = "IKU"
	// TypeIKT: Indikator Kinerja Tambahan (supplementary indicator).
	TypeIKT Type = "IKT"
)

// IsValidType checks if t is within the allowed types.
func IsValidType(t Type) bool {
	switch t {
	case TypeIKU, TypeIKT:
		return true
	default:
		return false
	}
}

// Indicator is one monitored performance indicator.
// CategoryID may be nil when no category existed at seed time; the app
// treats such indicators as uncategorized rather than broken.
type Indicator struct {
	ID            string    `firestore:"-" json:"id"`
	Name          string    `firestore:"name" json:"name"`
	Description   string    `firestore:"description" json:"description"`
	Type          Type      `firestore:"type" json:"type"`
	CategoryID    *string   `firestore:"category_id" json:"category_id"`
	SubCategoryID *string   `firestore:"sub_category_id" json:"sub_category_id"`
	Order         int       `firestore:"order" json:"order"`
	IsActive      bool      `firestore:"is_active" json:"is_active"`
	CreatedAt     time.Time `firestore:"created_at,serverTimestamp" json:"created_at"`
}

// Errors (single source)
var (
	ErrNotFound     = errors.New("indicator: not found")
	ErrInvalidName  = errors.New("indicator: invalid name")
	ErrInvalidType  = errors.New("indicator: invalid type")
	ErrInvalidOrder = errors.New("indicator: invalid order")
)

func (i Indicator) validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrInvalidName
	}
	if !IsValidType(i.Type) {
		return ErrInvalidType
	}
	if i.Order <= 0 {
		return ErrInvalidOrder
	}
	return nil
}

// New builds an active indicator. CreatedAt stays zero so the store assigns
// the server timestamp on write.
func New(name, description string, typ Type, categoryID *string, order int) (Indicator, error) {
	i := Indicator{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Type:        typ,
		CategoryID:  categoryID,
		Order:       order,
		IsActive:    true,
	}
	if err := i.validate(); err != nil {
		return Indicator{}, err
	}
	return i, nil
}

// MustNew is for static catalogs only.
func MustNew(name, description string, typ Type, categoryID *string, order int) Indicator {
	i, err := New(name, description, typ, categoryID, order)
	if err != nil {
		panic(err)
	}
	return i
}
