package domain

import (
	"fmt"
	"time"
)

// ItemStatus is the lifecycle state of a catalog item.
// Status is the single source of truth for loanability.
type ItemStatus string

// Valid item statuses.
const (
	ItemStatusAvailable   ItemStatus = "available"
	ItemStatusLoaned      ItemStatus = "loaned"
	ItemStatusUnderRepair ItemStatus = "under_repair"
	ItemStatusLost        ItemStatus = "lost"
)

// ParseItemStatus converts a stored string into an ItemStatus.
func ParseItemStatus(s string) (ItemStatus, error) {
	switch ItemStatus(s) {
	case ItemStatusAvailable, ItemStatusLoaned, ItemStatusUnderRepair, ItemStatusLost:
		return ItemStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown item status %q", ErrInvalidEnumValue, s)
}

// String returns the stored string form of the status.
func (s ItemStatus) String() string {
	return string(s)
}

// ItemCategory classifies a catalog item.
type ItemCategory string

// Valid item categories.
const (
	ItemCategoryBook      ItemCategory = "book"
	ItemCategoryMagazine  ItemCategory = "magazine"
	ItemCategoryDVD       ItemCategory = "dvd"
	ItemCategoryCD        ItemCategory = "cd"
	ItemCategoryAudiobook ItemCategory = "audiobook"
	ItemCategoryOther     ItemCategory = "other"
)

// ParseItemCategory converts a stored string into an ItemCategory.
func ParseItemCategory(s string) (ItemCategory, error) {
	switch ItemCategory(s) {
	case ItemCategoryBook, ItemCategoryMagazine, ItemCategoryDVD,
		ItemCategoryCD, ItemCategoryAudiobook, ItemCategoryOther:
		return ItemCategory(s), nil
	}
	return "", fmt.Errorf("%w: unknown item category %q", ErrInvalidEnumValue, s)
}

// String returns the stored string form of the category.
func (c ItemCategory) String() string {
	return string(c)
}

// Item represents a catalog entry that can be loaned or reserved.
type Item struct {
	// ID is the unique identifier for the item (auto-generated).
	ID int64

	// Title is the item's title.
	Title string

	// Author is the optional author or creator.
	Author string

	// ISBN is the optional ISBN code (books only).
	ISBN string

	// Category classifies the item.
	Category ItemCategory

	// Status is the current lifecycle state.
	Status ItemStatus

	// Description is an optional free-form description.
	Description string

	// Location is the optional shelf location.
	Location string

	// AcquiredAt is the timestamp when the item entered the catalog.
	AcquiredAt time.Time

	// ReplacementValue is the optional monetary cost of replacing the item.
	ReplacementValue float64
}

// NewItem creates a new available Item acquired now.
func NewItem(title string, category ItemCategory) *Item {
	return &Item{
		Title:      title,
		Category:   category,
		Status:     ItemStatusAvailable,
		AcquiredAt: time.Now().UTC(),
	}
}

// IsAvailable returns true if the item can be loaned right now.
func (i *Item) IsAvailable() bool {
	return i.Status == ItemStatusAvailable
}
