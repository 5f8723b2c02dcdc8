// Package export writes one-way snapshots of the event catalogue. None
// of the formats here are read back by percal; the catalogue stays
// immutable and the builtin/loaded data remains the source of truth.
package export

import (
	"fmt"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/percal/percal/pkg/catalog"
)

// ICS renders the whole catalogue as all-day VEVENTs and returns the
// serialized iCalendar payload.
func ICS(c *catalog.Catalog) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//percal//event catalogue//EN")

	for i, ev := range c.AllEvents() {
		uid := fmt.Sprintf("%s-%d@percal", ev.Date, i)
		ve := cal.AddEvent(uid)

		start := time.Date(ev.Date.Year, time.Month(ev.Date.Month), ev.Date.Day, 0, 0, 0, 0, time.UTC)
		ve.SetAllDayStartAt(start)
		ve.SetAllDayEndAt(start.AddDate(0, 0, 1))
		ve.SetSummary(ev.Title)
		ve.SetDescription(ev.Description)
		ve.SetProperty(ics.ComponentProperty(ics.PropertyCategories), string(ev.Era)+"/"+ev.Category)
	}
	return cal.Serialize()
}

// WriteICS writes the iCalendar snapshot to path.
func WriteICS(c *catalog.Catalog, path string) error {
	return os.WriteFile(path, []byte(ICS(c)), 0o644)
}
