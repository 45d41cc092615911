package loader

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/hamlog/contactlog/internal/model"
)

// parseProfile parses a flat key/value object. Keys are lower-cased; scalar
// values are kept as their literal text and null becomes "". Nested objects
// or arrays are rejected. dups lists keys that appeared more than once.
func parseProfile(data []byte, path string) (profile model.Profile, dups []string, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseProfileYAML(data)
	default:
		return parseProfileJSON(data)
	}
}

func parseProfileJSON(data []byte) (model.Profile, []string, error) {
	if !gjson.ValidBytes(data) {
		return model.Profile{}, nil, eris.New("loader: profile is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return model.Profile{}, nil, eris.New("loader: profile must be a JSON object")
	}

	var (
		profile model.Profile
		dups    []string
		err     error
	)
	root.ForEach(func(key, value gjson.Result) bool {
		var v string
		switch value.Type {
		case gjson.String:
			v = value.String()
		case gjson.Number, gjson.True, gjson.False:
			v = value.Raw
		case gjson.Null:
			v = ""
		default:
			err = eris.Errorf("loader: profile key %q has a nested value", key.String())
			return false
		}
		k := normalizeKey(key.String())
		if profile.Set(k, v) {
			dups = append(dups, k)
		}
		return true
	})
	if err != nil {
		return model.Profile{}, nil, err
	}
	return profile, dups, nil
}

func parseProfileYAML(data []byte) (model.Profile, []string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return model.Profile{}, nil, eris.Wrap(err, "loader: profile is not valid YAML")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return model.Profile{}, nil, eris.New("loader: profile is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return model.Profile{}, nil, eris.New("loader: profile must be a YAML mapping")
	}

	var (
		profile model.Profile
		dups    []string
	)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return model.Profile{}, nil, eris.Errorf("loader: profile key on line %d is not a scalar", keyNode.Line)
		}
		if valNode.Kind == yaml.AliasNode && valNode.Alias != nil {
			valNode = valNode.Alias
		}
		if valNode.Kind != yaml.ScalarNode {
			return model.Profile{}, nil, eris.Errorf("loader: profile key %q has a nested value", keyNode.Value)
		}
		v := valNode.Value
		if valNode.Tag == "!!null" {
			v = ""
		}
		k := normalizeKey(keyNode.Value)
		if profile.Set(k, v) {
			dups = append(dups, k)
		}
	}
	return profile, dups, nil
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
