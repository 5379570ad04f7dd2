package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aidanlsb/tripbook/internal/commands"
	"github.com/aidanlsb/tripbook/internal/ui"
)

// present prints a command result as text: the feedback line, then whatever
// the result asks to show.
func present(ctx context.Context, w io.Writer, s *session, r commands.Result, display *ui.DisplayContext) error {
	if r.Feedback != "" {
		fmt.Fprintln(w, ui.Success(r.Feedback))
	}

	switch {
	case r.ShowHelp:
		help, err := ui.RenderHelp(display.HelpWidth())
		if err != nil {
			return err
		}
		fmt.Fprint(w, help)
	case r.ShowHistory:
		entries, err := s.logic.History(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(w, ui.History(entries))
	case r.ShowDetail:
		if a, ok := s.logic.Attraction(r.Detail); ok {
			fmt.Fprint(w, ui.AttractionDetail(r.Detail.OneBased(), a, time.Now()))
		}
	case r.Exit:
	default:
		presentView(w, s, r.View, display)
	}
	return nil
}

func presentView(w io.Writer, s *session, view commands.View, display *ui.DisplayContext) {
	switch view {
	case commands.ViewAttractions:
		fmt.Fprint(w, ui.Attractions(display, s.logic.FilteredAttractions()))
	case commands.ViewItineraries:
		fmt.Fprint(w, ui.Itineraries(display, s.logic.FilteredItineraries()))
	case commands.ViewLocations:
		fmt.Fprint(w, ui.Locations(display, s.logic.Locations()))
	}
}
