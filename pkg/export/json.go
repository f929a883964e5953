// Package export serializes a generated world to the output formats
// downstream consumers need: JSON for the full snapshot, SVG for a quick
// visual check of the mesh, coastline, hydrology, and transport network.
package export

import (
	"encoding/json"
	"os"

	"github.com/islandgen/worldgen/pkg/worldgen"
)

// ExportJSON serializes the complete snapshot to JSON with indentation.
func ExportJSON(snap *worldgen.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// ExportJSONCompact serializes the snapshot without indentation, suitable
// for storage or transmission over the host message protocol.
func ExportJSONCompact(snap *worldgen.Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// SaveJSONToFile writes the indented JSON encoding of snap to filepath.
func SaveJSONToFile(snap *worldgen.Snapshot, filepath string) error {
	data, err := ExportJSON(snap)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
