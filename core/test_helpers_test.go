package core_test

import "github.com/katalvlaran/exhibit/item"

// mk builds a dated item with a name derived from its id.
func mk(id string, year float64) item.Item {
	return item.New(id, "Work "+id, "", "", year)
}
