package settings

import (
	"github.com/goccy/go-yaml"

	"github.com/ErikKalkoken/emuprefs/internal/app"
)

// Dump returns the current settings of the given features as YAML document.
// Features and options keep their enumeration order. All features are dumped when none are given.
func (s *Settings) Dump(features ...app.Feature) ([]byte, error) {
	if len(features) == 0 {
		features = app.Features()
	}
	doc := yaml.MapSlice{
		{Key: "powerUser", Value: yaml.MapSlice{{Key: "isEnabled", Value: s.PowerUserEnabled()}}},
		{Key: "pro", Value: yaml.MapSlice{{Key: "isEnabled", Value: s.ProEnabled()}}},
	}
	for _, f := range features {
		var options yaml.MapSlice
		for _, x := range s.Values(f) {
			v := x.Value
			if c, ok := v.(app.Color); ok {
				v = c.Hex()
			}
			options = append(options, yaml.MapItem{Key: x.Option, Value: v})
		}
		if len(options) == 0 {
			continue
		}
		doc = append(doc, yaml.MapItem{Key: f.Key(), Value: options})
	}
	return yaml.Marshal(doc)
}
