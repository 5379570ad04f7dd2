package storage

import (
	"fmt"
	"time"

	"github.com/aidanlsb/tripbook/internal/catalog"
	"github.com/aidanlsb/tripbook/internal/model"
)

// document is the persisted shape of a catalog. Itineraries and locations
// refer to attractions by name.
type document struct {
	Attractions []attractionDoc `json:"attractions" yaml:"attractions"`
	Itineraries []itineraryDoc  `json:"itineraries" yaml:"itineraries"`
	Locations   []locationDoc   `json:"locations" yaml:"locations"`
}

type attractionDoc struct {
	Name         string   `json:"name" yaml:"name"`
	Priority     string   `json:"priority" yaml:"priority"`
	Contact      string   `json:"contact" yaml:"contact"`
	Address      string   `json:"address" yaml:"address"`
	Activities   string   `json:"activities,omitempty" yaml:"activities,omitempty"`
	OpeningHours string   `json:"openingHours,omitempty" yaml:"openingHours,omitempty"`
	Price        string   `json:"price,omitempty" yaml:"price,omitempty"`
	Tags         []string `json:"tags" yaml:"tags"`
	Comments     []string `json:"comments" yaml:"comments"`
}

type itineraryDoc struct {
	Name        string   `json:"name" yaml:"name"`
	CreatedAt   string   `json:"createdAt" yaml:"createdAt"`
	Attractions []string `json:"attractions" yaml:"attractions"`
}

type locationDoc struct {
	Name        string   `json:"name" yaml:"name"`
	Attractions []string `json:"attractions" yaml:"attractions"`
}

func stringsOf[T fmt.Stringer](items []T) []string {
	out := make([]string, len(items))
	for i, x := range items {
		out[i] = x.String()
	}
	return out
}

func toDocument(s catalog.Snapshot) document {
	doc := document{
		Attractions: make([]attractionDoc, len(s.Attractions)),
		Itineraries: make([]itineraryDoc, len(s.Itineraries)),
		Locations:   make([]locationDoc, len(s.Locations)),
	}
	for i, a := range s.Attractions {
		doc.Attractions[i] = attractionDoc{
			Name:         a.Name().String(),
			Priority:     a.Priority().String(),
			Contact:      a.Contact().String(),
			Address:      a.Address().String(),
			Activities:   a.Activities().String(),
			OpeningHours: a.OpeningHours().String(),
			Price:        a.Price().String(),
			Tags:         stringsOf(a.Tags()),
			Comments:     stringsOf(a.Comments()),
		}
	}
	for i, it := range s.Itineraries {
		doc.Itineraries[i] = itineraryDoc{
			Name:        it.Name().String(),
			CreatedAt:   it.CreatedAt().Format(time.RFC3339),
			Attractions: stringsOf(it.AttractionNames()),
		}
	}
	for i, loc := range s.Locations {
		doc.Locations[i] = locationDoc{
			Name:        loc.Name().String(),
			Attractions: stringsOf(loc.Attractions()),
		}
	}
	return doc
}

// toSnapshot converts a decoded document into model values. Cross-entity
// invariants are checked later by catalog.FromSnapshot.
func toSnapshot(doc document) (catalog.Snapshot, error) {
	var s catalog.Snapshot
	for i, d := range doc.Attractions {
		a, err := d.toModel()
		if err != nil {
			return catalog.Snapshot{}, fmt.Errorf("attraction %d (%q): %w", i+1, d.Name, err)
		}
		s.Attractions = append(s.Attractions, a)
	}
	for i, d := range doc.Itineraries {
		it, err := d.toModel(s.Attractions)
		if err != nil {
			return catalog.Snapshot{}, fmt.Errorf("itinerary %d (%q): %w", i+1, d.Name, err)
		}
		s.Itineraries = append(s.Itineraries, it)
	}
	for i, d := range doc.Locations {
		loc, err := d.toModel()
		if err != nil {
			return catalog.Snapshot{}, fmt.Errorf("location %d (%q): %w", i+1, d.Name, err)
		}
		s.Locations = append(s.Locations, loc)
	}
	return s, nil
}

func (d attractionDoc) toModel() (model.Attraction, error) {
	var f model.AttractionFields
	var err error
	if f.Name, err = model.NewName(d.Name); err != nil {
		return model.Attraction{}, err
	}
	if f.Priority, err = model.NewPriority(d.Priority); err != nil {
		return model.Attraction{}, err
	}
	if f.Contact, err = model.NewContact(d.Contact); err != nil {
		return model.Attraction{}, err
	}
	if f.Address, err = model.NewAddress(d.Address); err != nil {
		return model.Attraction{}, err
	}
	if d.Activities != "" {
		if f.Activities, err = model.NewActivities(d.Activities); err != nil {
			return model.Attraction{}, err
		}
	}
	if d.OpeningHours != "" {
		if f.OpeningHours, err = model.NewOpeningHours(d.OpeningHours); err != nil {
			return model.Attraction{}, err
		}
	}
	if d.Price != "" {
		if f.Price, err = model.NewPrice(d.Price); err != nil {
			return model.Attraction{}, err
		}
	}
	for _, raw := range d.Tags {
		tag, err := model.NewTag(raw)
		if err != nil {
			return model.Attraction{}, err
		}
		f.Tags = append(f.Tags, tag)
	}
	for _, raw := range d.Comments {
		c, err := model.NewComment(raw)
		if err != nil {
			return model.Attraction{}, err
		}
		f.Comments = append(f.Comments, c)
	}
	return model.NewAttraction(f), nil
}

// toModel resolves attraction names against attractions. With a hand-edited
// file holding two attractions of one name, the first one wins.
func (d itineraryDoc) toModel(attractions []model.Attraction) (model.Itinerary, error) {
	name, err := model.NewItineraryName(d.Name)
	if err != nil {
		return model.Itinerary{}, err
	}
	created, err := time.Parse(time.RFC3339, d.CreatedAt)
	if err != nil {
		return model.Itinerary{}, fmt.Errorf("createdAt %q is not an ISO-8601 timestamp", d.CreatedAt)
	}
	members := make([]model.Attraction, 0, len(d.Attractions))
	for _, raw := range d.Attractions {
		a, ok := firstNamed(attractions, raw)
		if !ok {
			return model.Itinerary{}, &model.NotFoundError{Entity: model.EntityAttraction, Key: raw}
		}
		members = append(members, a)
	}
	return model.NewItinerary(name, created, members)
}

func firstNamed(attractions []model.Attraction, name string) (model.Attraction, bool) {
	for _, a := range attractions {
		if a.Name().String() == name {
			return a, true
		}
	}
	return model.Attraction{}, false
}

func (d locationDoc) toModel() (model.Location, error) {
	name, err := model.NewLocationName(d.Name)
	if err != nil {
		return model.Location{}, err
	}
	names := make([]model.Name, 0, len(d.Attractions))
	seen := make(map[string]bool, len(d.Attractions))
	for _, raw := range d.Attractions {
		n, err := model.NewName(raw)
		if err != nil {
			return model.Location{}, err
		}
		if seen[raw] {
			return model.Location{}, &model.DuplicateIdentityError{Entity: model.EntityAttraction, Key: raw}
		}
		seen[raw] = true
		names = append(names, n)
	}
	return model.NewLocation(name, names)
}
