package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aidanlsb/tripbook/internal/history"
	"github.com/aidanlsb/tripbook/internal/model"
)

const infoSeparator = " · "

// Attractions renders the displayed attraction list.
func Attractions(d *DisplayContext, list []model.Attraction) string {
	if len(list) == 0 {
		return Hint("No attractions to show.") + "\n"
	}
	t := NewResultsTable(d, d.ListColumns())
	for i, a := range list {
		t.AddRow(FormatRowNum(i+1, len(list)), a.Name().String(), attractionInfo(a), tagList(a.Tags()))
	}
	return listHeader("Attractions", len(list), "attraction", "attractions") + t.Render() + "\n"
}

func attractionInfo(a model.Attraction) string {
	parts := []string{"P" + a.Priority().String(), a.Address().String()}
	if a.OpeningHours().IsSet() {
		parts = append(parts, a.OpeningHours().String())
	}
	if a.Price().IsSet() {
		parts = append(parts, a.Price().String())
	}
	return strings.Join(parts, infoSeparator)
}

func tagList(tags []model.Tag) string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = "#" + t.String()
	}
	return strings.Join(names, " ")
}

// Itineraries renders the displayed itinerary list.
func Itineraries(d *DisplayContext, list []model.Itinerary) string {
	if len(list) == 0 {
		return Hint("No itineraries to show.") + "\n"
	}
	t := NewResultsTable(d, d.ListColumns())
	for i, it := range list {
		names := make([]string, 0, len(it.Attractions()))
		for _, n := range it.AttractionNames() {
			names = append(names, n.String())
		}
		route := strings.Join(names, " → ")
		if route == "" {
			route = "nothing planned"
		}
		info := it.CreatedAt().Local().Format("2 Jan 2006") + infoSeparator + route
		t.AddRow(FormatRowNum(i+1, len(list)), it.Name().String(), info,
			Count(len(names), "stop", "stops"))
	}
	return listHeader("Itineraries", len(list), "itinerary", "itineraries") + t.Render() + "\n"
}

// Locations renders every location with its attractions.
func Locations(d *DisplayContext, list []model.Location) string {
	if len(list) == 0 {
		return Hint("No locations to show.") + "\n"
	}
	t := NewResultsTable(d, d.ListColumns())
	for i, l := range list {
		names := l.Attractions()
		members := make([]string, len(names))
		for j, n := range names {
			members[j] = n.String()
		}
		t.AddRow(FormatRowNum(i+1, len(list)), l.Name().String(), strings.Join(members, ", "),
			Count(len(names), "attraction", "attractions"))
	}
	return listHeader("Locations", len(list), "location", "locations") + t.Render() + "\n"
}

func listHeader(title string, n int, singular, plural string) string {
	return Header(title) + " " + Hint(Count(n, singular, plural)) + "\n"
}

// AttractionDetail renders every field of one attraction. Hours are marked
// open or closed at now.
func AttractionDetail(position int, a model.Attraction, now time.Time) string {
	var sb strings.Builder
	sb.WriteString(Header(fmt.Sprintf("%d. %s", position, a.Name())))
	sb.WriteString("\n")

	t := NewTable(2)
	field := func(label, value string) {
		if value != "" {
			t.AddRow(Hint(label), value)
		}
	}
	field("Priority", a.Priority().String())
	field(contactLabel(a.Contact()), a.Contact().String())
	field("Address", a.Address().String())
	field("Activities", a.Activities().String())
	if h := a.OpeningHours(); h.IsSet() {
		hours := h.String()
		if h.SpansMidnight() {
			hours += " " + Hint("(past midnight)")
		}
		if h.IsOpenAt(now) {
			hours += " " + Hint("(open now)")
		} else {
			hours += " " + Hint("(closed now)")
		}
		field("Hours", hours)
	}
	field("Price", a.Price().String())
	field("Tags", tagList(a.Tags()))
	sb.WriteString(t.String())

	if comments := a.Comments(); len(comments) > 0 {
		sb.WriteString(Hint("Comments") + "\n")
		l := NewList()
		for _, c := range comments {
			l.Add(c.String())
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}

func contactLabel(c model.Contact) string {
	switch {
	case c.IsEmail():
		return "Email"
	case c.IsPhone():
		return "Phone"
	default:
		return "Contact"
	}
}

// History renders entered command lines, oldest first.
func History(entries []history.Entry) string {
	if len(entries) == 0 {
		return Hint("No commands entered yet.") + "\n"
	}
	t := NewTable(3)
	for _, e := range entries {
		mark := SymbolSuccess
		if !e.OK {
			mark = SymbolError
		}
		t.AddRow(Hint(e.EnteredAt.Local().Format("2006-01-02 15:04")), mark, e.Line)
	}
	return t.String()
}
