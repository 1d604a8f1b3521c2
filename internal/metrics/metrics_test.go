package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/catalog"
)

func TestRecordMove(t *testing.T) {
	before := testutil.ToFloat64(placementMoves.WithLabelValues(ResultShelfMissing))

	RecordMove(ResultShelfMissing)

	assert.Equal(t, before+1, testutil.ToFloat64(placementMoves.WithLabelValues(ResultShelfMissing)))
}

func TestObserve(t *testing.T) {
	store := catalog.SampleData()
	lib := store.Libraries()[0]
	philosophy := lib.Shelves[0]
	it := lib.Shelves[2]

	cancel := Observe(store)
	defer cancel()

	assert.Equal(t, 2.0, testutil.ToFloat64(shelfPlacements.WithLabelValues(philosophy.ID.String(), philosophy.Name)))

	changes := testutil.ToFloat64(storeChanges)
	require.True(t, store.Move(philosophy.Books[0], it.ID, 5))

	assert.Equal(t, changes+1, testutil.ToFloat64(storeChanges))
	assert.Equal(t, 1.0, testutil.ToFloat64(shelfPlacements.WithLabelValues(philosophy.ID.String(), philosophy.Name)))
	assert.Equal(t, 2.0, testutil.ToFloat64(shelfPlacements.WithLabelValues(it.ID.String(), it.Name)))

	cancel()
	store.Move(it.Books[0], philosophy.ID, 9)
	assert.Equal(t, changes+1, testutil.ToFloat64(storeChanges), "no updates after cancel")
}
