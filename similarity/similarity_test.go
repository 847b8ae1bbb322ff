package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exhibit/item"
	"github.com/katalvlaran/exhibit/similarity"
)

var fixture = []item.Item{
	item.New("1", "Amphora", "Exekias", "Greece", -540),
	item.New("2", "Kylix", "Exekias", "Greece", -530),
	item.New("3", "Scroll", "", "China", 1450),
	item.New("4", "Print", "Hokusai", "Japan", 1831),
	item.New("5", "Bowl", "", "China", 1450),
}

func TestMetrics_Values(t *testing.T) {
	a, b, c := fixture[0], fixture[1], fixture[2]

	assert.Equal(t, 10.0, similarity.Date{}.Score(a, b))
	assert.Equal(t, 1990.0, similarity.Date{}.Score(a, c))
	assert.Equal(t, 1.0, similarity.Creator{}.Score(a, b))
	assert.Equal(t, 0.0, similarity.Creator{}.Score(a, c))
	assert.Equal(t, 1.0, similarity.Origin{}.Score(a, b))
	assert.Equal(t, 0.0, similarity.Origin{}.Score(b, c))
	// empty creators are equal strings
	assert.Equal(t, 1.0, similarity.Creator{}.Score(c, fixture[4]))
	// case-sensitive
	assert.Equal(t, 0.0, similarity.Origin{}.Score(c, item.New("6", "", "", "china", 0)))
}

func TestMetrics_SymmetricAndNonNegative(t *testing.T) {
	metrics := []similarity.Metric{similarity.Date{}, similarity.Creator{}, similarity.Origin{}}
	for _, m := range metrics {
		for i := range fixture {
			for j := range fixture {
				if i == j {
					continue
				}
				ab := m.Score(fixture[i], fixture[j])
				assert.Equal(t, ab, m.Score(fixture[j], fixture[i]), "%s not symmetric", m.Name())
				assert.GreaterOrEqual(t, ab, 0.0)
			}
		}
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]similarity.Kind{
		"1": similarity.KindDate, "Date": similarity.KindDate, " time ": similarity.KindDate,
		"2": similarity.KindCreator, "artist": similarity.KindCreator,
		"3": similarity.KindOrigin, "LOCATION": similarity.KindOrigin,
	}
	for in, want := range cases {
		got, err := similarity.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := similarity.ParseKind("4")
	assert.ErrorIs(t, err, similarity.ErrUnknownKind)
}

func TestNewAndDefaults(t *testing.T) {
	for _, k := range []similarity.Kind{similarity.KindDate, similarity.KindCreator, similarity.KindOrigin} {
		m, err := similarity.New(k)
		require.NoError(t, err)
		assert.Equal(t, k.String(), m.Name())
		assert.True(t, k.Valid())
	}
	_, err := similarity.New(similarity.Kind(0))
	assert.ErrorIs(t, err, similarity.ErrUnknownKind)
	assert.False(t, similarity.Kind(9).Valid())
	assert.Equal(t, "Kind(9)", similarity.Kind(9).String())

	assert.Equal(t, 100.0, similarity.DefaultThreshold(similarity.KindDate))
	assert.Equal(t, 2.0, similarity.DefaultThreshold(similarity.KindCreator))
	assert.Equal(t, 2.0, similarity.DefaultThreshold(similarity.KindOrigin))
	assert.Zero(t, similarity.DefaultThreshold(similarity.Kind(0)))
}
