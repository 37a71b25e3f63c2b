package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waypoint/astar"
	"github.com/katalvlaran/waypoint/gridgraph"
)

// ErrInvalidScenario wraps every validation failure.
var ErrInvalidScenario = errors.New("config: invalid scenario")

// Heuristic names accepted in Scenario.Heuristic.
const (
	HeuristicNone      = "none"
	HeuristicManhattan = "manhattan"
	HeuristicOctile    = "octile"
)

// Scenario describes one grid search for the gridpath CLI
type Scenario struct {
	Grid          [][]int       `yaml:"grid" validate:"required,min=1,dive,min=1"`
	Start         Point         `yaml:"start"`
	Goal          Point         `yaml:"goal"`
	Connectivity  int           `yaml:"connectivity" validate:"oneof=4 8"`
	LandThreshold *int          `yaml:"land_threshold" validate:"required,min=0"`
	Heuristic     string        `yaml:"heuristic" validate:"oneof=none manhattan octile"`
	MaxExpansions int           `yaml:"max_expansions" validate:"min=0"`
	Reopening     bool          `yaml:"reopening"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Point is a grid coordinate
type Point struct {
	X int `yaml:"x" validate:"min=0"`
	Y int `yaml:"y" validate:"min=0"`
}

// LoggingConfig defines the logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=OFF ERROR WARN INFO DEBUG TRACE"` // Options: "OFF", "ERROR", "WARN", "INFO", "DEBUG", "TRACE"
}

// Load loads a scenario from a YAML file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML scenario, fills defaults and validates it.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) applyDefaults() {
	if s.Connectivity == 0 {
		s.Connectivity = 4
	}
	if s.LandThreshold == nil {
		def := gridgraph.DefaultGridOptions().LandThreshold
		s.LandThreshold = &def
	}
	if s.Heuristic == "" {
		s.Heuristic = HeuristicManhattan
	}
	if s.Logging.Level == "" {
		s.Logging.Level = "INFO"
	}
}

// Validate checks struct tags and the cross-field rules tags cannot express:
// a rectangular grid, and start and goal inside it.
func (s *Scenario) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidScenario, translateError(validate, err))
	}

	width := len(s.Grid[0])
	for y, row := range s.Grid {
		if len(row) != width {
			return fmt.Errorf("%w: grid row %d has %d cells, want %d", ErrInvalidScenario, y, len(row), width)
		}
	}
	ends := []struct {
		name string
		p    Point
	}{{"start", s.Start}, {"goal", s.Goal}}
	for _, e := range ends {
		if e.p.X >= width || e.p.Y >= len(s.Grid) {
			return fmt.Errorf("%w: %s (%d,%d) outside %dx%d grid", ErrInvalidScenario, e.name, e.p.X, e.p.Y, width, len(s.Grid))
		}
	}
	return nil
}

// GridOptions maps the scenario onto gridgraph options.
func (s *Scenario) GridOptions() gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = *s.LandThreshold
	if s.Connectivity == 8 {
		opts.Conn = gridgraph.Conn8
	}
	return opts
}

// StartLocation returns the start as an astar.Location.
func (s *Scenario) StartLocation() astar.Location {
	return astar.Location{X: s.Start.X, Y: s.Start.Y}
}

// GoalLocation returns the goal as an astar.Location.
func (s *Scenario) GoalLocation() astar.Location {
	return astar.Location{X: s.Goal.X, Y: s.Goal.Y}
}

// translateError renders validator errors as English sentences.
func translateError(validate *validator.Validate, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	msg := ""
	for i, e := range verrs {
		if i > 0 {
			msg += "; "
		}
		msg += e.Translate(trans)
	}
	return msg
}
