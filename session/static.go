package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/drake/boobar/config"
)

// decoder turns a static document into the generic shape the projector reads.
// Static documents have no poll.
type decoder func(data []byte) (config.Document, error)

var decoders = map[string]decoder{
	".toml":  decodeTOML,
	".yaml":  decodeYAML,
	".yml":   decodeYAML,
	".json":  decodeJSON,
	".jsonc": decodeJSON,
}

var errNotMapping = errors.New("document root is not a mapping")

func decodeTOML(data []byte) (config.Document, error) {
	var doc map[string]any
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, err
	}
	return normalizeRoot(doc)
}

func decodeYAML(data []byte) (config.Document, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return config.Document{}, nil
	}
	return normalizeRoot(doc)
}

func decodeJSON(data []byte) (config.Document, error) {
	var doc any
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, err
	}
	return normalizeRoot(doc)
}

func normalizeRoot(doc any) (config.Document, error) {
	m, ok := normalize(doc).(map[string]any)
	if !ok {
		return nil, errNotMapping
	}
	return config.Document(m), nil
}

// normalize rewrites decoder-specific containers into map[string]any and
// []any. Scalars pass through unchanged; non-strings later project as absent.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	default:
		return v
	}
}
