package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/exhibit/dateparse"
	"github.com/katalvlaran/exhibit/item"
)

// Column headers consumed by Load.
const (
	ColumnID      = "Object Number"
	ColumnTitle   = "Title"
	ColumnCreator = "Artist Display Name"
	ColumnOrigin  = "Country"
	ColumnDate    = "Object Date"
)

var required = []string{ColumnID, ColumnTitle, ColumnCreator, ColumnOrigin, ColumnDate}

var (
	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("catalog: required column missing")

	// ErrEmptyInput is returned for a reader with no header row at all.
	ErrEmptyInput = errors.New("catalog: input has no header row")
)

// Stats summarises one Load call.
type Stats struct {
	Read        int // data rows read (header excluded)
	Loaded      int // items returned
	SkippedDate int // rows with unknown or unparsable date
	SkippedID   int // rows with empty Object Number
	Duplicates  int // rows whose Object Number was already loaded
}

// Option configures Load.
type Option func(*loader)

// WithLogger routes skip diagnostics to l. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(ld *loader) {
		if l != nil {
			ld.log = l
		}
	}
}

type loader struct {
	log   *zap.Logger
	index map[string]int
	seen  map[string]bool
	stats Stats
}

// LoadFile opens path and calls Load on it.
func LoadFile(path string, opts ...Option) ([]item.Item, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("catalog: open dataset: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Load parses a collection CSV from r and returns the usable items in file
// order together with row statistics.
func Load(r io.Reader, opts ...Option) ([]item.Item, Stats, error) {
	ld := &loader{log: zap.NewNop(), seen: make(map[string]bool)}
	for _, opt := range opts {
		opt(ld)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, Stats{}, ErrEmptyInput
	}
	if err != nil {
		return nil, Stats{}, fmt.Errorf("catalog: read header: %w", err)
	}
	if err = ld.mapHeader(header); err != nil {
		return nil, Stats{}, err
	}

	var items []item.Item
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ld.stats, fmt.Errorf("catalog: row %d: %w", ld.stats.Read+1, err)
		}
		ld.stats.Read++
		if it, ok := ld.row(rec); ok {
			items = append(items, it)
		}
	}
	ld.stats.Loaded = len(items)

	return items, ld.stats, nil
}

// mapHeader records the position of each required column.
func (ld *loader) mapHeader(header []string) error {
	ld.index = make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := ld.index[h]; !dup {
			ld.index[h] = i
		}
	}
	var missing []string
	for _, col := range required {
		if _, ok := ld.index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return nil
}

func (ld *loader) field(rec []string, col string) string {
	i := ld.index[col]
	if i >= len(rec) {
		return ""
	}

	return strings.TrimSpace(rec[i])
}

// row converts one record, updating stats for every rejection.
func (ld *loader) row(rec []string) (item.Item, bool) {
	id := ld.field(rec, ColumnID)
	if id == "" {
		ld.stats.SkippedID++
		ld.log.Debug("skipping row without object number", zap.Int("row", ld.stats.Read))
		return item.Item{}, false
	}

	date := ld.field(rec, ColumnDate)
	if dateparse.IsUnknownDate(date) {
		ld.stats.SkippedDate++
		ld.log.Debug("skipping row with unknown date",
			zap.String("id", id), zap.String("date", date))
		return item.Item{}, false
	}
	year, err := dateparse.ParseYear(date)
	if err != nil {
		ld.stats.SkippedDate++
		ld.log.Debug("skipping row with unparsable date",
			zap.String("id", id), zap.String("date", date), zap.Error(err))
		return item.Item{}, false
	}

	if ld.seen[id] {
		ld.stats.Duplicates++
		ld.log.Debug("skipping duplicate object number", zap.String("id", id))
		return item.Item{}, false
	}
	ld.seen[id] = true

	return item.New(id, ld.field(rec, ColumnTitle), ld.field(rec, ColumnCreator), ld.field(rec, ColumnOrigin), year), true
}
