package dataset

import (
	"errors"
	"reflect"
	"testing"

	"github.com/percal/percal/pkg/calendar"
	"github.com/percal/percal/pkg/catalog"
)

func mustNew(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatalf("builtin dataset failed to build: %v", err)
	}
	return c
}

func TestBuiltinDatasetBuilds(t *testing.T) {
	c := mustNew(t)

	if c.TotalEventCount() == 0 {
		t.Fatal("builtin dataset has no events")
	}
	if got := len(c.AllEvents()); got != c.TotalEventCount() {
		t.Errorf("AllEvents length %d != TotalEventCount %d", got, c.TotalEventCount())
	}

	// Every era contributes at least one category.
	for _, era := range c.Eras() {
		cats, err := c.Categories(era)
		if err != nil {
			t.Fatalf("Categories(%s): %v", era, err)
		}
		if len(cats) == 0 {
			t.Errorf("era %s has no categories", era)
		}
	}
}

func TestEraConcatenationCoversAllEvents(t *testing.T) {
	c := mustNew(t)

	var concat []catalog.Event
	for _, era := range c.Eras() {
		events, err := c.EventsInEra(era)
		if err != nil {
			t.Fatal(err)
		}
		concat = append(concat, events...)
	}
	if !reflect.DeepEqual(concat, c.AllEvents()) {
		t.Error("Past+Present+Future concatenation differs from AllEvents()")
	}
}

func TestSearchMoonLanding(t *testing.T) {
	c := mustNew(t)

	results, err := c.Search("moon")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatal("Search(moon) found nothing")
	}

	found := false
	for _, ev := range results {
		if ev.Title == "Moon Landing" {
			found = true
			if ev.Date != (calendar.Date{Year: 1969, Month: 7, Day: 20}) {
				t.Errorf("Moon Landing dated %s, want 1969-07-20", ev.Date)
			}
			if ev.Era != catalog.EraPast || ev.Category != "Space Exploration" {
				t.Errorf("Moon Landing in %s/%s", ev.Era, ev.Category)
			}
		}
	}
	if !found {
		t.Error("Search(moon) did not return the Moon Landing")
	}

	// Results keep catalogue order.
	all := c.AllEvents()
	pos := 0
	for _, ev := range results {
		for pos < len(all) && all[pos] != ev {
			pos++
		}
		if pos == len(all) {
			t.Fatalf("search result %q out of catalogue order", ev.Title)
		}
		pos++
	}
}

func TestSearchRejectsBlankKeyword(t *testing.T) {
	c := mustNew(t)
	_, err := c.Search("   ")
	var invalid *catalog.InvalidQueryError
	if !errors.As(err, &invalid) {
		t.Errorf("Search(blank) = %v, want *InvalidQueryError", err)
	}
}

func TestEventsOnFamousDates(t *testing.T) {
	c := mustNew(t)

	events := c.EventsOn(calendar.Date{Year: 1969, Month: 7, Day: 20})
	if len(events) != 1 || events[0].Title != "Moon Landing" {
		t.Errorf("EventsOn(1969-07-20) = %v", events)
	}

	if events := c.EventsOn(calendar.Date{Year: 1501, Month: 1, Day: 1}); len(events) != 0 {
		t.Errorf("EventsOn(1501-01-01) = %v, want empty", events)
	}
}

func TestUnknownEraRejected(t *testing.T) {
	c := mustNew(t)
	_, err := c.Categories(catalog.Era("Medieval"))
	var unknown *catalog.UnknownEraError
	if !errors.As(err, &unknown) {
		t.Errorf("Categories(Medieval) = %v, want *UnknownEraError", err)
	}
}

func TestRepeatedConstructionIsIdentical(t *testing.T) {
	a := mustNew(t)
	b := mustNew(t)

	if !reflect.DeepEqual(a.AllEvents(), b.AllEvents()) {
		t.Error("two builds of the builtin dataset answer AllEvents differently")
	}
	if !reflect.DeepEqual(a.Stats(), b.Stats()) {
		t.Error("two builds of the builtin dataset answer Stats differently")
	}
}

func TestStatsAddUp(t *testing.T) {
	c := mustNew(t)
	total := 0
	for _, s := range c.Stats() {
		total += s.Events
	}
	if total != c.TotalEventCount() {
		t.Errorf("per-era event counts sum to %d, TotalEventCount = %d", total, c.TotalEventCount())
	}
}
