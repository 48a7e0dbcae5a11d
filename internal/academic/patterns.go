package academic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dgallion1/scholardoc/internal/citation"
	"github.com/dgallion1/scholardoc/internal/section"
)

// PatternConfig is the on-disk shape of a pattern-table override file.
// Omitted tables keep their built-in defaults, so a file can tune only
// the section headers or only the citation patterns.
type PatternConfig struct {
	Sections  []section.NamePatterns `yaml:"sections"`
	Citations []string               `yaml:"citations"`
}

// LoadPatternConfig reads a YAML pattern file.
func LoadPatternConfig(path string) (*PatternConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern file: %w", err)
	}
	var cfg PatternConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse pattern file %s: %w", path, err)
	}
	return &cfg, nil
}

// Build compiles the configured matchers, defaulting each table that
// the file left empty.
func (c *PatternConfig) Build() (*section.Detector, *citation.Extractor, error) {
	sections := c.Sections
	if len(sections) == 0 {
		sections = section.DefaultPatterns()
	}
	det, err := section.NewDetector(sections)
	if err != nil {
		return nil, nil, err
	}

	citations := c.Citations
	if len(citations) == 0 {
		citations = citation.DefaultMentionPatterns()
	}
	ext, err := citation.NewExtractor(citations)
	if err != nil {
		return nil, nil, err
	}

	return det, ext, nil
}
