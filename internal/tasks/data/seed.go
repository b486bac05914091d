package data

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed/seed.json
var defaultSeed []byte

// seedRecord mirrors one entry of the seed collection. JSON is valid YAML
// flow syntax, so the same decoder reads both.
type seedRecord struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Completed   bool   `yaml:"completed"`
	LastUpdated string `yaml:"lastUpdated"`
}

// LoadSeed decodes a seed collection. Records are taken as given; only
// decoding and timestamp errors are reported.
func LoadSeed(r io.Reader) ([]Task, error) {
	var records []seedRecord
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if err == io.EOF {
			return []Task{}, nil
		}
		return nil, fmt.Errorf("error decoding seed: %w", err)
	}

	tasks := make([]Task, 0, len(records))
	for i, rec := range records {
		ts, err := ParseTimestamp(rec.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("seed record %d: %w", i, err)
		}
		tasks = append(tasks, Task{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
			Completed:   rec.Completed,
			LastUpdated: ts,
		})
	}
	return tasks, nil
}

// LoadSeedFile reads a seed collection from disk.
func LoadSeedFile(path string) ([]Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening seed %s: %w", path, err)
	}
	defer f.Close()

	tasks, err := LoadSeed(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tasks, nil
}

// DefaultSeed decodes the seed collection bundled with the binary.
func DefaultSeed() ([]Task, error) {
	return LoadSeed(bytes.NewReader(defaultSeed))
}
