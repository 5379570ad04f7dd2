// Package catalog holds the in-memory store of attractions, itineraries and
// locations and enforces the invariants that span them.
//
// A Catalog is not safe for concurrent use. Commands run one at a time and
// readers only look at it between commands.
package catalog

import (
	"slices"

	"github.com/aidanlsb/tripbook/internal/model"
)

// Catalog aggregates the three entity collections plus the active view
// settings: filter and sort for attractions, filter for itineraries.
type Catalog struct {
	attractions *model.UniqueList[model.Attraction]
	itineraries *model.UniqueList[model.Itinerary]
	locations   *model.UniqueList[model.Location]

	attractionFilter Predicate[model.Attraction]
	attractionOrder  Comparator[model.Attraction]
	itineraryFilter  Predicate[model.Itinerary]

	version uint64
}

// Snapshot is a plain copy of a catalog's contents.
type Snapshot struct {
	Attractions []model.Attraction
	Itineraries []model.Itinerary
	Locations   []model.Location
}

// New returns an empty catalog showing everything in insertion order.
func New() *Catalog {
	return &Catalog{
		attractions: model.NewAttractionList(),
		itineraries: model.NewItineraryList(),
		locations:   model.NewLocationList(),
	}
}

// FromSnapshot builds a catalog from s, checking every invariant a live
// catalog maintains.
func FromSnapshot(s Snapshot) (*Catalog, error) {
	c := New()
	if err := c.Reset(s); err != nil {
		return nil, err
	}
	c.version = 0
	return c, nil
}

// Reset replaces the whole contents with s. Nothing changes if s is invalid.
func (c *Catalog) Reset(s Snapshot) error {
	next := New()
	if err := next.attractions.SetAll(s.Attractions); err != nil {
		return err
	}
	if err := next.itineraries.SetAll(s.Itineraries); err != nil {
		return err
	}
	if err := next.locations.SetAll(s.Locations); err != nil {
		return err
	}
	for _, it := range s.Itineraries {
		if err := next.checkMembers(it.Attractions()); err != nil {
			return err
		}
	}
	for _, loc := range s.Locations {
		if err := next.checkNames(loc.Attractions()); err != nil {
			return err
		}
	}
	c.attractions, c.itineraries, c.locations = next.attractions, next.itineraries, next.locations
	c.changed()
	return nil
}

// Clear empties the catalog.
func (c *Catalog) Clear() {
	c.attractions.Clear()
	c.itineraries.Clear()
	c.locations.Clear()
	c.changed()
}

// Snapshot copies the current contents in insertion order.
func (c *Catalog) Snapshot() Snapshot {
	return Snapshot{
		Attractions: c.attractions.All(),
		Itineraries: c.itineraries.All(),
		Locations:   c.locations.All(),
	}
}

// Version increases on every successful mutation. View changes (filter and
// sort) do not count as mutations.
func (c *Catalog) Version() uint64 { return c.version }

func (c *Catalog) changed() { c.version++ }

// ---------- Attractions ----------

// HasAttraction reports whether an attraction with a's name exists.
func (c *Catalog) HasAttraction(a model.Attraction) bool { return c.attractions.Contains(a) }

// Attraction looks an attraction up by name.
func (c *Catalog) Attraction(n model.Name) (model.Attraction, bool) {
	return c.attractions.FindFunc(func(a model.Attraction) bool { return a.Name() == n })
}

// AddAttraction appends a, failing if its name is taken.
func (c *Catalog) AddAttraction(a model.Attraction) error {
	if err := c.attractions.Add(a); err != nil {
		return err
	}
	c.changed()
	return nil
}

// DeleteAttraction removes a. It is refused while a location or itinerary
// still references a's name.
func (c *Catalog) DeleteAttraction(a model.Attraction) error {
	if err := c.checkUnreferenced(a.Name()); err != nil {
		return err
	}
	if err := c.attractions.Remove(a); err != nil {
		return err
	}
	c.changed()
	return nil
}

// SetAttraction replaces target with edited. A rename is refused while target
// is referenced; an edit that keeps the name is always allowed and is copied
// into every itinerary holding target.
func (c *Catalog) SetAttraction(target, edited model.Attraction) error {
	sameIdentity := model.SameAttraction(target, edited)
	if !sameIdentity {
		if err := c.checkUnreferenced(target.Name()); err != nil {
			return err
		}
	}
	if err := c.attractions.Set(target, edited); err != nil {
		return err
	}
	if sameIdentity {
		c.refreshItineraries(edited)
	}
	c.changed()
	return nil
}

func (c *Catalog) refreshItineraries(edited model.Attraction) {
	for _, it := range c.itineraries.All() {
		if !it.References(edited.Name()) {
			continue
		}
		// Same itinerary identity, so Set cannot collide.
		_ = c.itineraries.Set(it, it.WithAttraction(edited))
	}
}

// checkUnreferenced fails with a ReferentialIntegrityError naming the first
// location, then the first itinerary, that references n.
func (c *Catalog) checkUnreferenced(n model.Name) error {
	for _, loc := range c.locations.All() {
		if loc.References(n) {
			return &model.ReferentialIntegrityError{Attraction: n, ReferencedBy: model.EntityLocation, Referrer: loc.Name().String()}
		}
	}
	for _, it := range c.itineraries.All() {
		if it.References(n) {
			return &model.ReferentialIntegrityError{Attraction: n, ReferencedBy: model.EntityItinerary, Referrer: it.Name().String()}
		}
	}
	return nil
}

// Attractions returns every attraction in insertion order.
func (c *Catalog) Attractions() []model.Attraction { return c.attractions.All() }

// FilteredAttractions returns the attractions visible under the current
// filter and sort order. It is recomputed on every call.
func (c *Catalog) FilteredAttractions() []model.Attraction {
	return view(c.attractions.All(), c.attractionFilter, c.attractionOrder)
}

// UpdateFilteredAttractions sets the active filter; nil shows everything.
func (c *Catalog) UpdateFilteredAttractions(p Predicate[model.Attraction]) { c.attractionFilter = p }

// UpdateSortedAttractions sets the active sort order; nil restores insertion order.
func (c *Catalog) UpdateSortedAttractions(cmp Comparator[model.Attraction]) { c.attractionOrder = cmp }

// ---------- Itineraries ----------

// HasItinerary reports whether an itinerary with it's name exists.
func (c *Catalog) HasItinerary(it model.Itinerary) bool { return c.itineraries.Contains(it) }

// AddItinerary appends it. Every attraction it holds must be in the catalog
// exactly as given.
func (c *Catalog) AddItinerary(it model.Itinerary) error {
	if err := c.checkMembers(it.Attractions()); err != nil {
		return err
	}
	if err := c.itineraries.Add(it); err != nil {
		return err
	}
	c.changed()
	return nil
}

// DeleteItinerary removes it.
func (c *Catalog) DeleteItinerary(it model.Itinerary) error {
	if err := c.itineraries.Remove(it); err != nil {
		return err
	}
	c.changed()
	return nil
}

// Itineraries returns every itinerary in insertion order.
func (c *Catalog) Itineraries() []model.Itinerary { return c.itineraries.All() }

// FilteredItineraries returns the itineraries visible under the current view.
func (c *Catalog) FilteredItineraries() []model.Itinerary {
	return view(c.itineraries.All(), c.itineraryFilter, nil)
}

// UpdateFilteredItineraries sets the active filter; nil shows everything.
func (c *Catalog) UpdateFilteredItineraries(p Predicate[model.Itinerary]) { c.itineraryFilter = p }

func (c *Catalog) checkMembers(attractions []model.Attraction) error {
	for _, a := range attractions {
		current, ok := c.Attraction(a.Name())
		if !ok || !model.EqualAttractions(current, a) {
			return &model.NotFoundError{Entity: model.EntityAttraction, Key: a.Name().String()}
		}
	}
	return nil
}

// ---------- Locations ----------

// HasLocation reports whether a location with l's name exists, ignoring case.
func (c *Catalog) HasLocation(l model.Location) bool { return c.locations.Contains(l) }

// Location looks a location up by name, ignoring case.
func (c *Catalog) Location(name model.LocationName) (model.Location, bool) {
	return c.locations.FindFunc(func(l model.Location) bool { return l.Name().SameAs(name) })
}

// AddLocation appends l. Every attraction it names must exist.
func (c *Catalog) AddLocation(l model.Location) error {
	if err := c.checkNames(l.Attractions()); err != nil {
		return err
	}
	if err := c.locations.Add(l); err != nil {
		return err
	}
	c.changed()
	return nil
}

// DeleteLocation removes the location called name and returns it.
func (c *Catalog) DeleteLocation(name model.LocationName) (model.Location, error) {
	loc, ok := c.Location(name)
	if !ok {
		return model.Location{}, &model.NotFoundError{Entity: model.EntityLocation, Key: name.String()}
	}
	if err := c.locations.Remove(loc); err != nil {
		return model.Location{}, err
	}
	c.changed()
	return loc, nil
}

// AddAttractionToLocation makes the location called name reference attraction.
func (c *Catalog) AddAttractionToLocation(name model.LocationName, attraction model.Name) (model.Location, error) {
	return c.editLocation(name, func(l model.Location) (model.Location, error) {
		if err := c.checkNames([]model.Name{attraction}); err != nil {
			return model.Location{}, err
		}
		return l.WithAttraction(attraction)
	})
}

// RemoveAttractionFromLocation drops one reference from the location called
// name. Removing the last reference fails and changes nothing.
func (c *Catalog) RemoveAttractionFromLocation(name model.LocationName, attraction model.Name) (model.Location, error) {
	return c.editLocation(name, func(l model.Location) (model.Location, error) {
		return l.WithoutAttraction(attraction)
	})
}

func (c *Catalog) editLocation(name model.LocationName, edit func(model.Location) (model.Location, error)) (model.Location, error) {
	loc, ok := c.Location(name)
	if !ok {
		return model.Location{}, &model.NotFoundError{Entity: model.EntityLocation, Key: name.String()}
	}
	edited, err := edit(loc)
	if err != nil {
		return model.Location{}, err
	}
	if err := c.locations.Set(loc, edited); err != nil {
		return model.Location{}, err
	}
	c.changed()
	return edited, nil
}

// Locations returns every location in insertion order.
func (c *Catalog) Locations() []model.Location { return c.locations.All() }

func (c *Catalog) checkNames(names []model.Name) error {
	for _, n := range names {
		if _, ok := c.Attraction(n); !ok {
			return &model.NotFoundError{Entity: model.EntityAttraction, Key: n.String()}
		}
	}
	return nil
}

func view[T any](items []T, keep Predicate[T], order Comparator[T]) []T {
	if keep != nil {
		items = slices.DeleteFunc(items, func(x T) bool { return !keep(x) })
	}
	if order != nil {
		slices.SortStableFunc(items, order)
	}
	return items
}
