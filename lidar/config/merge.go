package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// MergePlanes appends the planes listed in FromFile, a JSON array of PlaneSpec, after the inline
// planes. The file is only read once; FromFile is cleared afterwards.
func (p *Planes) MergePlanes() error {
	if p.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(p.FromFile)
	if err != nil {
		return fmt.Errorf("reading planes file: %w", err)
	}

	var filePlanes []PlaneSpec
	if err := json.Unmarshal(data, &filePlanes); err != nil {
		return fmt.Errorf("parsing planes file: %w", err)
	}

	p.Inline = append(p.Inline, filePlanes...)
	p.FromFile = ""
	return nil
}

// LoadAndMerge loads all external files and merges their contents
func (c *ScanConfig) LoadAndMerge() error {
	if err := c.Scene.Planes.MergePlanes(); err != nil {
		return fmt.Errorf("merging planes: %w", err)
	}
	return nil
}
