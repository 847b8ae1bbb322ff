// Package catalog reads museum collection exports into item.Item values.
//
// The input is a CSV file in the layout of the Metropolitan Museum's Open
// Access dump. Only five header columns are consumed; any others are
// ignored and column order does not matter:
//
//	Object Number        → Item.ID
//	Title                → Item.Name
//	Artist Display Name  → Item.Creator
//	Country              → Item.Origin
//	Object Date          → Item.Year (via dateparse.ParseYear)
//
// Row policy:
//
//   - Empty Object Number: skipped (SkippedID).
//   - Placeholder date ("Date unknown", "n.d." …) or a date with no digits:
//     skipped (SkippedDate).
//   - Repeated Object Number: the first row wins (Duplicates).
//
// Load never fails on a bad row; it fails only on unreadable input or a
// header that lacks one of the required columns (ErrMissingColumn).
// Skipped rows are reported through the optional zap logger at debug level.
package catalog
