package commands

import (
	"fmt"

	"github.com/aidanlsb/tripbook/internal/catalog"
	"github.com/aidanlsb/tripbook/internal/model"
)

// AddCommand adds one attraction.
type AddCommand struct {
	ToAdd model.Attraction
}

func (cmd AddCommand) Execute(c *catalog.Catalog) (Result, error) {
	if err := c.AddAttraction(cmd.ToAdd); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("New attraction added: %s", cmd.ToAdd), View: ViewAttractions}, nil
}

// EditCommand replaces the displayed attraction at Index with a copy that
// has Edit applied.
type EditCommand struct {
	Index Index
	Edit  model.AttractionEdit
}

func (cmd EditCommand) Execute(c *catalog.Catalog) (Result, error) {
	target, err := attractionAt(c, cmd.Index)
	if err != nil {
		return Result{}, err
	}
	edited := model.ApplyEdits(target, cmd.Edit)
	if err := c.SetAttraction(target, edited); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Edited Attraction: %s", edited), View: ViewAttractions}, nil
}

// DeleteCommand removes the displayed attraction at Index.
type DeleteCommand struct {
	Index Index
}

func (cmd DeleteCommand) Execute(c *catalog.Catalog) (Result, error) {
	target, err := attractionAt(c, cmd.Index)
	if err != nil {
		return Result{}, err
	}
	if err := c.DeleteAttraction(target); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Deleted Address: %s", target), View: ViewAttractions}, nil
}

// CommentCommand merges comments into the displayed attraction at Index.
type CommentCommand struct {
	Index    Index
	Comments []model.Comment
}

func (cmd CommentCommand) Execute(c *catalog.Catalog) (Result, error) {
	target, err := attractionAt(c, cmd.Index)
	if err != nil {
		return Result{}, err
	}
	edited := target.WithComments(cmd.Comments...)
	if err := c.SetAttraction(target, edited); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Added comments to Attraction: %s", edited), View: ViewAttractions}, nil
}

// ListCommand shows every attraction.
type ListCommand struct{}

func (ListCommand) Execute(c *catalog.Catalog) (Result, error) {
	c.UpdateFilteredAttractions(nil)
	return Result{Feedback: "Listed all attractions", View: ViewAttractions}, nil
}

// FindCommand shows attractions whose name contains any keyword.
type FindCommand struct {
	Keywords []string
}

func (cmd FindCommand) Execute(c *catalog.Catalog) (Result, error) {
	c.UpdateFilteredAttractions(catalog.NameContainsAny(cmd.Keywords))
	n := len(c.FilteredAttractions())
	return Result{Feedback: fmt.Sprintf(MessageAttractionsListedOverview, n), View: ViewAttractions}, nil
}

// SortCommand orders the displayed attractions.
type SortCommand struct {
	Key catalog.SortKey
}

func (cmd SortCommand) Execute(c *catalog.Catalog) (Result, error) {
	order, err := catalog.ComparatorFor(cmd.Key)
	if err != nil {
		return Result{}, errorf("%v", err)
	}
	c.UpdateSortedAttractions(order)
	if order == nil {
		return Result{Feedback: "Attractions are back in the order they were added", View: ViewAttractions}, nil
	}
	return Result{Feedback: fmt.Sprintf("Sorted attractions by %s", cmd.Key), View: ViewAttractions}, nil
}

// ViewCommand asks for one attraction to be shown in detail.
type ViewCommand struct {
	Index Index
}

func (cmd ViewCommand) Execute(c *catalog.Catalog) (Result, error) {
	target, err := attractionAt(c, cmd.Index)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Feedback:   fmt.Sprintf("Viewing attraction: %s", target.Name()),
		View:       ViewAttractions,
		ShowDetail: true,
		Detail:     cmd.Index,
	}, nil
}
