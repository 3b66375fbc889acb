package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrEmptyForm is returned when a form document holds no answers at all.
var ErrEmptyForm = errors.New("form is empty")

// LoadForm reads a questionnaire snapshot from a YAML or JSON file. The format
// follows the file extension; unknown extensions are sniffed.
func LoadForm(path string) (domain.FormInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseFormJSON(data)
	case ".yaml", ".yml":
		return ParseFormYAML(data)
	}
	return ParseForm(data)
}

// ParseForm decodes data as JSON when it looks like a JSON object and as YAML
// otherwise.
func ParseForm(data []byte) (domain.FormInput, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return ParseFormJSON(data)
	}
	return ParseFormYAML(data)
}

// ParseFormYAML decodes a YAML mapping into a form snapshot.
func ParseFormYAML(data []byte) (domain.FormInput, error) {
	var form map[string]any
	if err := yaml.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(form) == 0 {
		return nil, ErrEmptyForm
	}
	return domain.FormInput(form), nil
}

// ParseFormJSON decodes a JSON object into a form snapshot.
func ParseFormJSON(data []byte) (domain.FormInput, error) {
	return DecodeFormJSON(bytes.NewReader(data))
}

// DecodeFormJSON reads one JSON object from r. Numbers are kept as
// json.Number so large or precise values survive until the engine parses
// them into decimals.
func DecodeFormJSON(r io.Reader) (domain.FormInput, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var form map[string]any
	if err := dec.Decode(&form); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyForm
		}
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if len(form) == 0 {
		return nil, ErrEmptyForm
	}
	return domain.FormInput(form), nil
}
