// Package boardfile loads named boards from JSON or YAML files. An entry
// is either a raw value matrix, with the box size inferred from the side
// length, or an object carrying dim and cells explicitly.
package boardfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"svw.info/sudograph/internal/domain"
)

// Load reads every board in the file, keyed by name.
func Load(path string) (map[string]domain.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(data)
	case ".yaml", ".yml":
		return loadYAML(data)
	default:
		return nil, fmt.Errorf("unsupported board file extension: %s", filepath.Ext(path))
	}
}

func loadJSON(data []byte) (map[string]domain.Grid, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid board file: %w", err)
	}
	out := make(map[string]domain.Grid, len(raw))
	for name, entry := range raw {
		var cells [][]int
		if err := json.Unmarshal(entry, &cells); err == nil {
			g, err := fromMatrix(name, cells)
			if err != nil {
				return nil, err
			}
			out[name] = g
			continue
		}
		var g domain.Grid
		if err := json.Unmarshal(entry, &g); err != nil {
			return nil, fmt.Errorf("board %q: %w", name, err)
		}
		out[name] = g
	}
	return out, nil
}

func loadYAML(data []byte) (map[string]domain.Grid, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid board file: %w", err)
	}
	out := make(map[string]domain.Grid, len(raw))
	for name, node := range raw {
		var cells [][]int
		if err := node.Decode(&cells); err == nil {
			g, err := fromMatrix(name, cells)
			if err != nil {
				return nil, err
			}
			out[name] = g
			continue
		}
		var g domain.Grid
		if err := node.Decode(&g); err != nil {
			return nil, fmt.Errorf("board %q: %w", name, err)
		}
		out[name] = g
	}
	return out, nil
}

// fromMatrix infers the box size: the side length must be a perfect square.
func fromMatrix(name string, cells [][]int) (domain.Grid, error) {
	n := len(cells)
	dim := 0
	for d := 1; d*d <= n; d++ {
		if d*d == n {
			dim = d
		}
	}
	if dim == 0 {
		return domain.Grid{}, fmt.Errorf("board %q: side length %d is not a perfect square", name, n)
	}
	return domain.Grid{Dim: dim, Cells: cells}, nil
}
