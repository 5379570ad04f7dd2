package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidanlsb/tripbook/internal/model"
	"github.com/aidanlsb/tripbook/internal/testutil"
)

func typicalCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := New()
	require.NoError(t, c.AddAttraction(testutil.Alice(t)))
	require.NoError(t, c.AddAttraction(testutil.Benson(t)))
	require.NoError(t, c.AddAttraction(testutil.Carl(t)))
	return c
}

func names(attractions []model.Attraction) []string {
	out := make([]string, len(attractions))
	for i, a := range attractions {
		out[i] = a.Name().String()
	}
	return out
}

func TestAddAttractionRejectsSameName(t *testing.T) {
	c := typicalCatalog(t)
	before := c.Version()

	err := c.AddAttraction(testutil.NewAttraction(t, "Alice").WithPriority("1").Build())
	assert.ErrorIs(t, err, model.ErrDuplicate)
	assert.Equal(t, before, c.Version())

	require.NoError(t, c.AddAttraction(testutil.NewAttraction(t, "Alice Two").Build()))
	assert.Greater(t, c.Version(), before)
	assert.True(t, c.HasAttraction(testutil.NewAttraction(t, "Alice Two").WithPriority("3").Build()))
}

func TestDeleteAttractionReferenced(t *testing.T) {
	c := typicalCatalog(t)
	alice, benson := testutil.Alice(t), testutil.Benson(t)

	require.NoError(t, c.AddLocation(testutil.Location(t, "Jurong", "Alice")))
	require.NoError(t, c.AddItinerary(testutil.Itinerary(t, "Weekend", benson)))

	var refErr *model.ReferentialIntegrityError
	err := c.DeleteAttraction(alice)
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, model.EntityLocation, refErr.ReferencedBy)
	assert.Equal(t, "Jurong", refErr.Referrer)

	err = c.DeleteAttraction(benson)
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, model.EntityItinerary, refErr.ReferencedBy)

	assert.Len(t, c.Attractions(), 3)
	require.NoError(t, c.DeleteAttraction(testutil.Carl(t)))
	assert.Equal(t, []string{"Alice", "Benson"}, names(c.Attractions()))
}

func TestDeleteAttractionNeedsFullEquality(t *testing.T) {
	c := typicalCatalog(t)
	err := c.DeleteAttraction(testutil.NewAttraction(t, "Carl").Build())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSetAttractionWhileReferenced(t *testing.T) {
	c := typicalCatalog(t)
	alice := testutil.Alice(t)
	require.NoError(t, c.AddLocation(testutil.Location(t, "Jurong", "Alice")))
	require.NoError(t, c.AddItinerary(testutil.Itinerary(t, "Weekend", alice)))

	t.Run("identity preserving edit succeeds", func(t *testing.T) {
		edited := testutil.NewAttraction(t, "Alice").WithPriority("2").Build()
		require.NoError(t, c.SetAttraction(alice, edited))

		got, ok := c.Attraction(alice.Name())
		require.True(t, ok)
		assert.Equal(t, "2", got.Priority().String())

		it := c.Itineraries()[0]
		assert.True(t, model.EqualAttractions(edited, it.Attractions()[0]), "itinerary sees the edit")

		require.NoError(t, c.SetAttraction(edited, alice))
	})

	t.Run("rename is refused", func(t *testing.T) {
		renamed := testutil.NewAttraction(t, "Alicia").Build()
		err := c.SetAttraction(alice, renamed)
		assert.ErrorIs(t, err, model.ErrReferenced)
		_, ok := c.Attraction(alice.Name())
		assert.True(t, ok)
	})

	t.Run("rename onto existing name", func(t *testing.T) {
		err := c.SetAttraction(testutil.Carl(t), testutil.NewAttraction(t, "Benson").Build())
		assert.ErrorIs(t, err, model.ErrDuplicate)
	})

	t.Run("rename of unreferenced attraction", func(t *testing.T) {
		require.NoError(t, c.SetAttraction(testutil.Carl(t), testutil.NewAttraction(t, "Carla").Build()))
		assert.Equal(t, []string{"Alice", "Benson", "Carla"}, names(c.Attractions()))
	})
}

func TestAddItineraryRequiresCatalogMembers(t *testing.T) {
	c := typicalCatalog(t)
	stranger := testutil.NewAttraction(t, "Stranger").Build()

	err := c.AddItinerary(testutil.Itinerary(t, "Trip", stranger))
	assert.ErrorIs(t, err, model.ErrNotFound)

	it := testutil.Itinerary(t, "Trip", testutil.Carl(t), testutil.Alice(t))
	require.NoError(t, c.AddItinerary(it))
	assert.ErrorIs(t, c.AddItinerary(testutil.Itinerary(t, "Trip")), model.ErrDuplicate)

	require.NoError(t, c.DeleteItinerary(it))
	assert.Empty(t, c.Itineraries())
	require.NoError(t, c.DeleteAttraction(testutil.Carl(t)), "no longer referenced")
}

func TestLocations(t *testing.T) {
	c := typicalCatalog(t)

	assert.ErrorIs(t, c.AddLocation(testutil.Location(t, "Nowhere", "Ghost")), model.ErrNotFound)
	require.NoError(t, c.AddLocation(testutil.Location(t, "West", "Alice")))
	assert.ErrorIs(t, c.AddLocation(testutil.Location(t, "WEST", "Benson")), model.ErrDuplicate)

	west := testutil.LocationName(t, "west")
	loc, err := c.AddAttractionToLocation(west, testutil.Name(t, "Benson"))
	require.NoError(t, err)
	assert.Len(t, loc.Attractions(), 2)

	_, err = c.AddAttractionToLocation(west, testutil.Name(t, "Ghost"))
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = c.RemoveAttractionFromLocation(west, testutil.Name(t, "Alice"))
	require.NoError(t, err)

	before := c.Version()
	_, err = c.RemoveAttractionFromLocation(west, testutil.Name(t, "Benson"))
	assert.ErrorIs(t, err, model.ErrInvariant)
	assert.Equal(t, before, c.Version())
	got, ok := c.Location(west)
	require.True(t, ok)
	assert.Equal(t, []model.Name{testutil.Name(t, "Benson")}, got.Attractions())

	removed, err := c.DeleteLocation(west)
	require.NoError(t, err)
	assert.Equal(t, "West", removed.Name().String())
	_, err = c.DeleteLocation(west)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestFilteredAndSortedViews(t *testing.T) {
	c := typicalCatalog(t)

	c.UpdateSortedAttractions(ByPriorityDesc)
	assert.Equal(t, []string{"Alice", "Benson", "Carl"}, names(c.FilteredAttractions()))

	c.UpdateSortedAttractions(ByPriceDesc)
	assert.Equal(t, []string{"Carl", "Alice", "Benson"}, names(c.FilteredAttractions()))

	c.UpdateFilteredAttractions(NameContainsAny([]string{"AL", "ben"}))
	assert.Equal(t, []string{"Alice", "Benson"}, names(c.FilteredAttractions()))

	require.NoError(t, c.AddAttraction(testutil.NewAttraction(t, "Bengal Cafe").WithPrice("99").Build()))
	assert.Equal(t, []string{"Bengal Cafe", "Alice", "Benson"}, names(c.FilteredAttractions()), "view follows the catalog")

	c.UpdateSortedAttractions(nil)
	c.UpdateFilteredAttractions(nil)
	assert.Equal(t, []string{"Alice", "Benson", "Carl", "Bengal Cafe"}, names(c.FilteredAttractions()))
}

func TestPrioritySortIsStable(t *testing.T) {
	c := New()
	for _, a := range []model.Attraction{
		testutil.NewAttraction(t, "D").WithPriority("3").Build(),
		testutil.NewAttraction(t, "B").WithPriority("7").Build(),
		testutil.NewAttraction(t, "A").WithPriority("3").Build(),
		testutil.NewAttraction(t, "C").WithPriority("7").Build(),
		testutil.NewAttraction(t, "E").WithPriority("3").Build(),
	} {
		require.NoError(t, c.AddAttraction(a))
	}
	c.UpdateSortedAttractions(ByPriorityDesc)
	assert.Equal(t, []string{"B", "C", "D", "A", "E"}, names(c.FilteredAttractions()))

	c.UpdateSortedAttractions(ByName)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, names(c.FilteredAttractions()))
}

func TestComparatorFor(t *testing.T) {
	for _, key := range SortKeys {
		_, err := ComparatorFor(key)
		assert.NoError(t, err, key)
	}
	none, err := ComparatorFor(SortNone)
	require.NoError(t, err)
	assert.Nil(t, none)
	_, err = ComparatorFor("rating")
	assert.Error(t, err)
}

func TestResetIsAllOrNothing(t *testing.T) {
	c := typicalCatalog(t)
	bad := Snapshot{
		Attractions: []model.Attraction{testutil.Alice(t)},
		Locations:   []model.Location{testutil.Location(t, "West", "Benson")},
	}
	assert.ErrorIs(t, c.Reset(bad), model.ErrNotFound)
	assert.Len(t, c.Attractions(), 3)

	dup := Snapshot{Attractions: []model.Attraction{testutil.Alice(t), testutil.Alice(t)}}
	_, err := FromSnapshot(dup)
	assert.ErrorIs(t, err, model.ErrDuplicate)

	good := Snapshot{
		Attractions: []model.Attraction{testutil.Alice(t), testutil.Benson(t)},
		Itineraries: []model.Itinerary{testutil.Itinerary(t, "Trip", testutil.Benson(t))},
		Locations:   []model.Location{testutil.Location(t, "West", "Alice")},
	}
	fresh, err := FromSnapshot(good)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), fresh.Version())
	assert.Len(t, fresh.Itineraries(), 1)

	fresh.Clear()
	assert.Empty(t, fresh.Snapshot().Attractions)
	assert.Empty(t, fresh.Locations())
}
