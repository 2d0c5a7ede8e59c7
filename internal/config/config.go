package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"witswagers/internal/engine"
)

// File is the optional YAML host configuration: round count, label
// filter and a custom question pack replacing the built-in one.
type File struct {
	Rounds    int        `yaml:"rounds"`
	Labels    []string   `yaml:"labels"`
	Questions []Question `yaml:"questions"`
}

// Question is the YAML shape of one pack entry.
type Question struct {
	Text   string   `yaml:"text"`
	Answer float64  `yaml:"answer"`
	Labels []string `yaml:"labels"`
}

// Load reads a YAML config file and merges it over the defaults.
func Load(path string) (engine.GameConfig, error) {
	cfg := engine.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if f.Rounds > 0 {
		cfg.Rounds = f.Rounds
	}
	cfg.Labels = f.Labels

	if len(f.Questions) > 0 {
		questions := make([]engine.Question, 0, len(f.Questions))
		for i, q := range f.Questions {
			if q.Text == "" {
				return cfg, fmt.Errorf("question %d: missing text", i)
			}
			if q.Answer < 0 || math.IsNaN(q.Answer) || math.IsInf(q.Answer, 0) {
				return cfg, fmt.Errorf("question %d: answer must be a finite non-negative number", i)
			}
			questions = append(questions, engine.Question{
				Text:   q.Text,
				Answer: q.Answer,
				Labels: q.Labels,
			})
		}
		cfg.Questions = questions
	}

	return cfg, nil
}
