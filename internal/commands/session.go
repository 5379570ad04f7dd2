package commands

import "github.com/aidanlsb/tripbook/internal/catalog"

// ClearCommand empties the catalog.
type ClearCommand struct{}

func (ClearCommand) Execute(c *catalog.Catalog) (Result, error) {
	c.Clear()
	c.UpdateFilteredAttractions(nil)
	c.UpdateFilteredItineraries(nil)
	return Result{Feedback: "Catalog has been cleared!", View: ViewAttractions}, nil
}

// HistoryCommand asks for previously entered commands to be shown.
type HistoryCommand struct{}

func (HistoryCommand) Execute(*catalog.Catalog) (Result, error) {
	return Result{Feedback: "Entered commands (earliest first):", ShowHistory: true}, nil
}

// HelpCommand asks for help to be shown.
type HelpCommand struct{}

func (HelpCommand) Execute(*catalog.Catalog) (Result, error) {
	return Result{Feedback: "Showing help.", ShowHelp: true}, nil
}

// ExitCommand ends the session.
type ExitCommand struct{}

func (ExitCommand) Execute(*catalog.Catalog) (Result, error) {
	return Result{Feedback: "Exiting tripbook as requested ...", Exit: true}, nil
}
