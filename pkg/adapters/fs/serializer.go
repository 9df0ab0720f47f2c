package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/parlorhq/parlor/pkg/core"
	"gopkg.in/yaml.v3"
)

// Serializer defines how the snapshot is read and written for one file format.
type Serializer interface {
	// Decode parses raw bytes into a snapshot.
	Decode(data []byte) (*core.Snapshot, error)
	// Encode converts the snapshot to bytes.
	Encode(snap *core.Snapshot) ([]byte, error)
}

// SerializerFor returns the serializer for a file extension.
// JSON is the default for unknown extensions.
func SerializerFor(ext string) Serializer {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return &YAMLSerializer{}
	default:
		return &JSONSerializer{}
	}
}

// --- JSON Serializer ---

// JSONSerializer handles the canonical snapshot format: two-space indented
// JSON, matching what earlier tooling wrote so files round-trip cleanly.
type JSONSerializer struct{}

func (s *JSONSerializer) Decode(data []byte) (*core.Snapshot, error) {
	var snap core.Snapshot
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&snap); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return &snap, nil
}

func (s *JSONSerializer) Encode(snap *core.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// --- YAML Serializer ---

// YAMLSerializer handles snapshots kept as YAML, for stores that prefer
// hand-editing the business data.
type YAMLSerializer struct{}

func (s *YAMLSerializer) Decode(data []byte) (*core.Snapshot, error) {
	var snap core.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return &snap, nil
}

func (s *YAMLSerializer) Encode(snap *core.Snapshot) ([]byte, error) {
	return yaml.Marshal(snap)
}
