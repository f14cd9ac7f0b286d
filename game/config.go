package game

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"snake-sim/game/types"
)

// Config fixes everything about one run at construction time. Difficulty
// only maps to an advisory tick rate; it never changes engine behavior.
type Config struct {
	GridWidth      int              `yaml:"grid_width"`
	GridHeight     int              `yaml:"grid_height"`
	Layout         types.Layout     `yaml:"layout"`
	Difficulty     types.Difficulty `yaml:"difficulty"`
	EnemiesEnabled bool             `yaml:"enemies_enabled"`
	EnemyCount     int              `yaml:"enemy_count"`

	// Seed fixes the placement RNG; zero means seed from the clock.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig mirrors the classic setup: 40x30 cells, empty field, easy
// tier, no enemies.
func DefaultConfig() Config {
	return Config{
		GridWidth:  40,
		GridHeight: 30,
		Layout:     types.LayoutBasic,
		Difficulty: types.DifficultyEasy,
	}
}

// LoadConfig decodes a YAML config over the defaults, so partial files
// only override what they name.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot start a run.
func (c Config) Validate() error {
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if !c.Layout.Valid() {
		return fmt.Errorf("unknown layout %q", c.Layout)
	}
	if !c.Difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", c.Difficulty)
	}
	if c.EnemyCount < 0 {
		return fmt.Errorf("enemy count must be non-negative, got %d", c.EnemyCount)
	}
	if c.EnemyCount > types.MaxEnemyCount {
		return fmt.Errorf("enemy count %d exceeds maximum %d", c.EnemyCount, types.MaxEnemyCount)
	}
	if c.EnemyCount > 0 && !c.EnemiesEnabled {
		return fmt.Errorf("enemy count %d requires enemies_enabled", c.EnemyCount)
	}
	return nil
}

// enemiesActive reports whether enemies participate in this run.
func (c Config) enemiesActive() bool {
	return c.EnemiesEnabled && c.EnemyCount > 0
}
