package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Tunables carries the mood-resolver thresholds. The defaults reproduce
// the original behavior exactly; they exist as configuration so they
// can be tuned without touching the classifier.
type Tunables struct {
	// StrongPositive is the sentiment score above which a positive
	// entry reads as excited rather than optimistic.
	StrongPositive float64 `toml:"strong_positive"`
	// StrongNegative is the sentiment score above which a negative
	// entry reads as frustrated rather than concerned. It also gates
	// high-energy anger.
	StrongNegative float64 `toml:"strong_negative"`
	// EmotionOverride is the emotion score above which the emotion
	// model overrides the sentiment-derived mood.
	EmotionOverride float64 `toml:"emotion_override"`
}

func DefaultTunables() Tunables {
	return Tunables{
		StrongPositive:  0.8,
		StrongNegative:  0.7,
		EmotionOverride: 0.4,
	}
}

// LoadTunables reads the TOML file at path, falling back to defaults
// when path is empty or the file does not exist. Unset fields keep
// their default value.
func LoadTunables(path string) (Tunables, error) {
	tunables := DefaultTunables()
	if path == "" {
		return tunables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tunables, nil
		}
		return tunables, fmt.Errorf("read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &tunables); err != nil {
		return tunables, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := tunables.validate(); err != nil {
		return tunables, fmt.Errorf("%s: %w", path, err)
	}
	return tunables, nil
}

func (t Tunables) validate() error {
	for _, threshold := range []struct {
		name  string
		value float64
	}{
		{"strong_positive", t.StrongPositive},
		{"strong_negative", t.StrongNegative},
		{"emotion_override", t.EmotionOverride},
	} {
		if threshold.value <= 0 || threshold.value > 1 {
			return fmt.Errorf("%s must be in (0, 1], got %v", threshold.name, threshold.value)
		}
	}
	return nil
}
