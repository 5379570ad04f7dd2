package commands

import (
	"fmt"

	"github.com/aidanlsb/tripbook/internal/catalog"
	"github.com/aidanlsb/tripbook/internal/model"
)

// LocationAction selects what editlocation does with its attraction.
type LocationAction string

const (
	LocationAdd    LocationAction = "ADD"
	LocationRemove LocationAction = "REMOVE"
)

// AddLocationCommand groups displayed attractions under a new location.
type AddLocationCommand struct {
	Name        model.LocationName
	Attractions []Index
}

func (cmd AddLocationCommand) Execute(c *catalog.Catalog) (Result, error) {
	attractions, err := attractionsAt(c, cmd.Attractions)
	if err != nil {
		return Result{}, err
	}
	names := make([]model.Name, len(attractions))
	for i, a := range attractions {
		names[i] = a.Name()
	}
	loc, err := model.NewLocation(cmd.Name, names)
	if err != nil {
		return Result{}, err
	}
	if err := c.AddLocation(loc); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("New location added: %s", loc), View: ViewLocations}, nil
}

// DeleteLocationCommand removes a location by name, ignoring case.
type DeleteLocationCommand struct {
	Name model.LocationName
}

func (cmd DeleteLocationCommand) Execute(c *catalog.Catalog) (Result, error) {
	removed, err := c.DeleteLocation(cmd.Name)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Deleted Location: %s", removed), View: ViewLocations}, nil
}

// EditLocationCommand adds or removes one attraction reference.
type EditLocationCommand struct {
	Name       model.LocationName
	Action     LocationAction
	Attraction Index
}

func (cmd EditLocationCommand) Execute(c *catalog.Catalog) (Result, error) {
	a, err := attractionAt(c, cmd.Attraction)
	if err != nil {
		return Result{}, err
	}
	var edited model.Location
	switch cmd.Action {
	case LocationAdd:
		edited, err = c.AddAttractionToLocation(cmd.Name, a.Name())
	case LocationRemove:
		edited, err = c.RemoveAttractionFromLocation(cmd.Name, a.Name())
	default:
		return Result{}, errorf("unknown location action %q", cmd.Action)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Edited Location: %s", edited), View: ViewLocations}, nil
}

// ListLocationsCommand shows every location.
type ListLocationsCommand struct{}

func (ListLocationsCommand) Execute(c *catalog.Catalog) (Result, error) {
	return Result{Feedback: fmt.Sprintf("Listed %d locations", len(c.Locations())), View: ViewLocations}, nil
}
