package commands

import (
	"fmt"
	"time"

	"github.com/aidanlsb/tripbook/internal/catalog"
	"github.com/aidanlsb/tripbook/internal/model"
)

// AddItineraryCommand creates an itinerary from displayed attractions.
type AddItineraryCommand struct {
	Name        model.ItineraryName
	Attractions []Index

	// Now stamps the creation time; time.Now when nil.
	Now func() time.Time
}

func (cmd AddItineraryCommand) Execute(c *catalog.Catalog) (Result, error) {
	attractions, err := attractionsAt(c, cmd.Attractions)
	if err != nil {
		return Result{}, err
	}
	now := time.Now
	if cmd.Now != nil {
		now = cmd.Now
	}
	it, err := model.NewItinerary(cmd.Name, now().UTC().Truncate(time.Second), attractions)
	if err != nil {
		return Result{}, err
	}
	if err := c.AddItinerary(it); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("New itinerary added: %s", it), View: ViewItineraries}, nil
}

// DeleteItineraryCommand removes the displayed itinerary at Index.
type DeleteItineraryCommand struct {
	Index Index
}

func (cmd DeleteItineraryCommand) Execute(c *catalog.Catalog) (Result, error) {
	target, err := itineraryAt(c, cmd.Index)
	if err != nil {
		return Result{}, err
	}
	if err := c.DeleteItinerary(target); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Deleted Itinerary: %s", target), View: ViewItineraries}, nil
}

// ListItinerariesCommand shows every itinerary.
type ListItinerariesCommand struct{}

func (ListItinerariesCommand) Execute(c *catalog.Catalog) (Result, error) {
	c.UpdateFilteredItineraries(nil)
	return Result{Feedback: "Listed all itineraries", View: ViewItineraries}, nil
}

// ExportCommand asks for the displayed itinerary at Index to be written out.
type ExportCommand struct {
	Index Index
}

func (cmd ExportCommand) Execute(c *catalog.Catalog) (Result, error) {
	target, err := itineraryAt(c, cmd.Index)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Exporting itinerary: %s", target.Name()),
		View:     ViewItineraries,
		Export:   &target,
	}, nil
}
