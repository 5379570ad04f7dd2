package cli

import (
	"context"
	"time"

	"github.com/aidanlsb/tripbook/internal/commands"
	"github.com/aidanlsb/tripbook/internal/model"
	"github.com/aidanlsb/tripbook/internal/ui"
)

// resultData is the JSON form of a command result.
type resultData struct {
	Feedback    string           `json:"feedback"`
	View        string           `json:"view,omitempty"`
	Attractions []attractionView `json:"attractions,omitempty"`
	Itineraries []itineraryView  `json:"itineraries,omitempty"`
	Locations   []locationView   `json:"locations,omitempty"`
	Detail      *attractionView  `json:"detail,omitempty"`
	History     []historyView    `json:"history,omitempty"`
	Help        string           `json:"help,omitempty"`
}

type attractionView struct {
	Index        int      `json:"index"`
	Name         string   `json:"name"`
	Priority     string   `json:"priority"`
	Contact      string   `json:"contact"`
	Address      string   `json:"address"`
	Activities   string   `json:"activities,omitempty"`
	OpeningHours string   `json:"opening_hours,omitempty"`
	OpenNow      *bool    `json:"open_now,omitempty"`
	Price        string   `json:"price,omitempty"`
	PriceAmount  float64  `json:"price_amount,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Comments     []string `json:"comments,omitempty"`
	ContactKind  string   `json:"contact_kind"`
}

type itineraryView struct {
	Index       int       `json:"index"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	Attractions []string  `json:"attractions"`
}

type locationView struct {
	Name        string   `json:"name"`
	Attractions []string `json:"attractions"`
}

type historyView struct {
	EnteredAt time.Time `json:"entered_at"`
	Line      string    `json:"line"`
	OK        bool      `json:"ok"`
}

// buildResultData collects what r asks to show, the same way present does
// for text output.
func buildResultData(ctx context.Context, s *session, r commands.Result) (resultData, int, error) {
	data := resultData{Feedback: r.Feedback, View: string(r.View)}
	now := time.Now()

	switch {
	case r.ShowHelp:
		data.Help = ui.HelpMarkdown()
		return data, 0, nil
	case r.ShowHistory:
		entries, err := s.logic.History(ctx)
		if err != nil {
			return data, 0, err
		}
		for _, e := range entries {
			data.History = append(data.History, historyView{EnteredAt: e.EnteredAt, Line: e.Line, OK: e.OK})
		}
		return data, len(data.History), nil
	case r.ShowDetail:
		if a, ok := s.logic.Attraction(r.Detail); ok {
			v := newAttractionView(r.Detail.OneBased(), a, now)
			data.Detail = &v
		}
		return data, 0, nil
	}

	switch r.View {
	case commands.ViewAttractions:
		for i, a := range s.logic.FilteredAttractions() {
			data.Attractions = append(data.Attractions, newAttractionView(i+1, a, now))
		}
		return data, len(data.Attractions), nil
	case commands.ViewItineraries:
		for i, it := range s.logic.FilteredItineraries() {
			data.Itineraries = append(data.Itineraries, itineraryView{
				Index:       i + 1,
				Name:        it.Name().String(),
				CreatedAt:   it.CreatedAt(),
				Attractions: stringsOf(it.AttractionNames()),
			})
		}
		return data, len(data.Itineraries), nil
	case commands.ViewLocations:
		for _, l := range s.logic.Locations() {
			data.Locations = append(data.Locations, locationView{
				Name:        l.Name().String(),
				Attractions: stringsOf(l.Attractions()),
			})
		}
		return data, len(data.Locations), nil
	}
	return data, 0, nil
}

func newAttractionView(index int, a model.Attraction, now time.Time) attractionView {
	v := attractionView{
		Index:        index,
		Name:         a.Name().String(),
		Priority:     a.Priority().String(),
		Contact:      a.Contact().String(),
		Address:      a.Address().String(),
		Activities:   a.Activities().String(),
		OpeningHours: a.OpeningHours().String(),
		Price:        a.Price().String(),
		PriceAmount:  a.Price().Amount(),
		Currency:     a.Price().Unit(),
		Tags:         stringsOf(a.Tags()),
		Comments:     stringsOf(a.Comments()),
		ContactKind:  "phone",
	}
	if a.Contact().IsEmail() {
		v.ContactKind = "email"
	}
	if h := a.OpeningHours(); h.IsSet() {
		open := h.IsOpenAt(now)
		v.OpenNow = &open
	}
	return v
}

func stringsOf[T interface{ String() string }](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
