// Package catalog holds the immutable event catalogue: a three-level
// era -> category -> event index built once from nested raw data. All
// queries are pure and ordered; because nothing writes to the index
// after construction, a Catalog is safe to share between goroutines
// without locking.
package catalog

import (
	"strings"

	"github.com/percal/percal/pkg/calendar"
)

// Era is one of the three fixed top-level event groupings.
type Era string

const (
	EraPast    Era = "Past"
	EraPresent Era = "Present"
	EraFuture  Era = "Future"
)

// eraOrder fixes the iteration order of eras everywhere, independent
// of the order eras appear in the input data.
var eraOrder = [3]Era{EraPast, EraPresent, EraFuture}

// ParseEra maps a label onto an Era, case-insensitively.
func ParseEra(label string) (Era, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "past":
		return EraPast, nil
	case "present":
		return EraPresent, nil
	case "future":
		return EraFuture, nil
	}
	return "", &UnknownEraError{Era: Era(label)}
}

// Event is a single immutable catalogue entry.
type Event struct {
	Date        calendar.Date `json:"date"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Era         Era           `json:"era"`
	Category    string        `json:"category"`
}

// RawEvent is one (date, title, description) triple as it appears in
// catalogue data files. The date must be zero-padded ISO-8601.
type RawEvent struct {
	Date        string `json:"date" yaml:"date"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// RawCategory is an ordered list of events under one category label.
type RawCategory struct {
	Name   string     `json:"name" yaml:"name"`
	Events []RawEvent `json:"events" yaml:"events"`
}

// RawEra groups categories under one era label.
type RawEra struct {
	Era        string        `json:"era" yaml:"era"`
	Categories []RawCategory `json:"categories" yaml:"categories"`
}

// RawData is the ordered nested structure the constructor consumes.
type RawData struct {
	Eras []RawEra `json:"eras" yaml:"eras"`
}

type categoryBucket struct {
	name   string
	events []Event
}

type eraBucket struct {
	categories []categoryBucket
}

// category finds the bucket for name, appending a new one at the end
// of the declaration order if it does not exist yet. Duplicate
// category names in the input therefore merge into their first
// declared position.
func (b *eraBucket) category(name string) *categoryBucket {
	for i := range b.categories {
		if b.categories[i].name == name {
			return &b.categories[i]
		}
	}
	b.categories = append(b.categories, categoryBucket{name: name})
	return &b.categories[len(b.categories)-1]
}

// Catalog is the derived index. Read-only after New returns.
type Catalog struct {
	eras   map[Era]*eraBucket
	byDate map[calendar.Date][]Event
	all    []Event
}

// New builds the catalogue index from raw data. Any malformed date or
// unknown era label aborts construction. Construction is deterministic:
// the same input always yields a catalogue that answers every query
// identically.
func New(data RawData) (*Catalog, error) {
	c := &Catalog{
		eras:   map[Era]*eraBucket{EraPast: {}, EraPresent: {}, EraFuture: {}},
		byDate: make(map[calendar.Date][]Event),
	}

	for _, re := range data.Eras {
		era, err := ParseEra(re.Era)
		if err != nil {
			return nil, err
		}
		bucket := c.eras[era]
		for _, rc := range re.Categories {
			cat := bucket.category(rc.Name)
			for _, raw := range rc.Events {
				date, err := calendar.ParseDate(raw.Date)
				if err != nil {
					return nil, &MalformedEventError{Era: era, Category: rc.Name, Date: raw.Date, Err: err}
				}
				cat.events = append(cat.events, Event{
					Date:        date,
					Title:       raw.Title,
					Description: raw.Description,
					Era:         era,
					Category:    rc.Name,
				})
			}
		}
	}

	// Flatten in fixed era order, then category declaration order,
	// then source order. Every other query derives its order from
	// this pass.
	for _, era := range eraOrder {
		for _, cat := range c.eras[era].categories {
			for _, ev := range cat.events {
				c.all = append(c.all, ev)
				c.byDate[ev.Date] = append(c.byDate[ev.Date], ev)
			}
		}
	}
	return c, nil
}

// Eras returns the three era labels in fixed order: Past, Present,
// Future. Eras with no loaded events are still listed.
func (c *Catalog) Eras() []Era {
	return []Era{EraPast, EraPresent, EraFuture}
}

func (c *Catalog) era(label Era) (*eraBucket, error) {
	b, ok := c.eras[label]
	if !ok {
		return nil, &UnknownEraError{Era: label}
	}
	return b, nil
}

// Categories returns the category labels of an era in declaration
// order.
func (c *Catalog) Categories(era Era) ([]string, error) {
	b, err := c.era(era)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(b.categories))
	for i, cat := range b.categories {
		out[i] = cat.name
	}
	return out, nil
}

// EventsIn returns the events of one era/category pair in source
// order.
func (c *Catalog) EventsIn(era Era, category string) ([]Event, error) {
	b, err := c.era(era)
	if err != nil {
		return nil, err
	}
	for i := range b.categories {
		if b.categories[i].name == category {
			return append([]Event(nil), b.categories[i].events...), nil
		}
	}
	return nil, &UnknownCategoryError{Era: era, Category: category}
}

// EventsInEra concatenates every category of the era in declaration
// order.
func (c *Catalog) EventsInEra(era Era) ([]Event, error) {
	b, err := c.era(era)
	if err != nil {
		return nil, err
	}
	var out []Event
	for _, cat := range b.categories {
		out = append(out, cat.events...)
	}
	return out, nil
}

// AllEvents returns every event, eras in fixed order.
func (c *Catalog) AllEvents() []Event {
	return append([]Event(nil), c.all...)
}

// Search returns the events whose title or description contains the
// trimmed keyword, case-insensitively, in AllEvents order. Results are
// deliberately never relevance-ranked.
func (c *Catalog) Search(keyword string) ([]Event, error) {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil, &InvalidQueryError{Keyword: keyword}
	}
	var out []Event
	for _, ev := range c.all {
		if strings.Contains(strings.ToLower(ev.Title), needle) ||
			strings.Contains(strings.ToLower(ev.Description), needle) {
			out = append(out, ev)
		}
	}
	return out, nil
}

// EventsOn returns every event dated d. A date with no events yields
// an empty result, not an error.
func (c *Catalog) EventsOn(d calendar.Date) []Event {
	return append([]Event(nil), c.byDate[d]...)
}

// TotalEventCount reports the catalogue size.
func (c *Catalog) TotalEventCount() int {
	return len(c.all)
}

// EraStats summarizes one era for the stats views.
type EraStats struct {
	Era        Era `json:"era"`
	Categories int `json:"categories"`
	Events     int `json:"events"`
}

// Stats returns per-era category and event counts in fixed era order.
func (c *Catalog) Stats() []EraStats {
	out := make([]EraStats, 0, len(eraOrder))
	for _, era := range eraOrder {
		b := c.eras[era]
		s := EraStats{Era: era, Categories: len(b.categories)}
		for _, cat := range b.categories {
			s.Events += len(cat.events)
		}
		out = append(out, s)
	}
	return out
}
