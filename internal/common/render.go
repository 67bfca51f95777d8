package common

import (
	"bytes"
	"encoding/json"
	"fmt"

	"monzo-webhooks-go/internal/config"

	"gopkg.in/yaml.v2"
)

// Render converts an encoded payload to the requested output format. YAML
// output keeps the wire field names and their order.
func Render(encoded []byte, format string, indent bool) ([]byte, error) {
	switch format {
	case config.FormatJSON:
		if !indent {
			return encoded, nil
		}
		return indentJSON(encoded)
	case config.FormatYAML:
		// Indented JSON is valid YAML, so it is read back as an ordered mapping.
		spaced, err := indentJSON(encoded)
		if err != nil {
			return nil, err
		}
		var doc yaml.MapSlice
		if err := yaml.Unmarshal(spaced, &doc); err != nil {
			return nil, fmt.Errorf("unable to read payload as yaml: %w", err)
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("unable to write yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

func indentJSON(encoded []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, encoded, "", "  "); err != nil {
		return nil, fmt.Errorf("unable to indent json: %w", err)
	}
	return buf.Bytes(), nil
}
