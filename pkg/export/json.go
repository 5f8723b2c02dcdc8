package export

import (
	"encoding/json"
	"os"

	"github.com/percal/percal/pkg/catalog"
)

// JSON re-serializes the catalogue into the loader's data-file shape,
// so the builtin or a remote catalogue can be saved locally, edited,
// and loaded back with --data.
func JSON(c *catalog.Catalog) ([]byte, error) {
	var raw catalog.RawData
	for _, era := range c.Eras() {
		re := catalog.RawEra{Era: string(era)}
		categories, err := c.Categories(era)
		if err != nil {
			return nil, err
		}
		for _, name := range categories {
			events, err := c.EventsIn(era, name)
			if err != nil {
				return nil, err
			}
			rc := catalog.RawCategory{Name: name}
			for _, ev := range events {
				rc.Events = append(rc.Events, catalog.RawEvent{
					Date:        ev.Date.String(),
					Title:       ev.Title,
					Description: ev.Description,
				})
			}
			re.Categories = append(re.Categories, rc)
		}
		raw.Eras = append(raw.Eras, re)
	}
	return json.MarshalIndent(raw, "", "  ")
}

// WriteJSON writes the JSON snapshot to path.
func WriteJSON(c *catalog.Catalog, path string) error {
	data, err := JSON(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
