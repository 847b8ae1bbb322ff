// Package item defines Item, the immutable catalogue record that every
// exhibit graph is built from.
//
// An Item is identified solely by its accession key (ID). Equality and
// ordering look at ID only; every other field is an attribute consumed by the
// similarity metrics. Items are plain values: copying one yields an
// independent record, so graphs and results never alias each other.
package item

// Item is a catalogued work.
//
// ID is globally unique; the zero Item (empty ID) is the invalid sentinel.
// Year is a signed year: positive for the current era, negative before it.
type Item struct {
	// ID is the accession key.
	ID string

	// Name is the display title.
	Name string

	// Creator is the artist display name; may be empty.
	Creator string

	// Origin is the country or location of origin; may be empty.
	Origin string

	// Year is the resolved (possibly approximate) year of the work.
	Year float64
}

// New returns an Item with the given attributes.
func New(id, name, creator, origin string, year float64) Item {
	return Item{ID: id, Name: name, Creator: creator, Origin: origin, Year: year}
}

// IsInvalid reports whether it is the sentinel item (empty ID).
func (it Item) IsInvalid() bool { return it.ID == "" }

// Equal reports whether it and other share an accession key.
func (it Item) Equal(other Item) bool { return it.ID == other.ID }

// Less orders items by accession key.
func (it Item) Less(other Item) bool { return it.ID < other.ID }

// BeforeCommonEra reports whether the item's year is negative.
func (it Item) BeforeCommonEra() bool { return it.Year < 0 }

// IDs returns the accession keys of items in order.
func IDs(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}

	return out
}
