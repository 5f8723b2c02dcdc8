package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// LoadJSON parses a JSON catalogue data file of the shape
//
//	{"eras": [{"era": "Past", "categories": [
//	    {"name": "...", "events": [{"date": "...", "title": "...", "description": "..."}]}
//	]}]}
//
// into RawData, preserving declaration order.
func LoadJSON(data []byte) (RawData, error) {
	if !gjson.ValidBytes(data) {
		return RawData{}, fmt.Errorf("catalogue data is not valid JSON")
	}
	var raw RawData
	for _, era := range gjson.GetBytes(data, "eras").Array() {
		re := RawEra{Era: era.Get("era").String()}
		for _, cat := range era.Get("categories").Array() {
			rc := RawCategory{Name: cat.Get("name").String()}
			for _, ev := range cat.Get("events").Array() {
				rc.Events = append(rc.Events, RawEvent{
					Date:        ev.Get("date").String(),
					Title:       ev.Get("title").String(),
					Description: ev.Get("description").String(),
				})
			}
			re.Categories = append(re.Categories, rc)
		}
		raw.Eras = append(raw.Eras, re)
	}
	if len(raw.Eras) == 0 {
		return RawData{}, fmt.Errorf("catalogue data has no eras")
	}
	return raw, nil
}

// LoadYAML parses the YAML equivalent of the same shape.
func LoadYAML(data []byte) (RawData, error) {
	var raw RawData
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return RawData{}, err
	}
	if len(raw.Eras) == 0 {
		return RawData{}, fmt.Errorf("catalogue data has no eras")
	}
	return raw, nil
}

// LoadBytes decodes already-read catalogue bytes, picking the decoder
// from the file name extension (.json, .yaml, .yml). A query string is
// ignored so URLs can be passed as-is.
func LoadBytes(name string, data []byte) (RawData, error) {
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return LoadJSON(data)
	case ".yaml", ".yml":
		return LoadYAML(data)
	}
	return RawData{}, fmt.Errorf("unsupported catalogue format: %s", name)
}

// LoadFile reads a local catalogue file and decodes it.
func LoadFile(path string) (RawData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RawData{}, err
	}
	return LoadBytes(path, data)
}
