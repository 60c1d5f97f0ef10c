// Package scenario loads TOML scenarios, a set of routes plus a navigation
// script, and replays them against a router and history with lifecycle events installed.
package scenario

import (
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rohanthewiz/serr"
)

// Step actions.
const (
	ActionNavigate = "navigate"
	ActionLoad     = "load"
	ActionBack     = "back"
	ActionForward  = "forward"
	ActionCheck    = "check"
)

// Route is a route to register. Fail makes its handler return an error.
type Route struct {
	Pattern string `toml:"pattern"`
	Name    string `toml:"name"`
	Fail    bool   `toml:"fail"`
}

// Step is one scripted action.
type Step struct {
	Action   string `toml:"action"`
	Fragment string `toml:"fragment"`
	Trigger  bool   `toml:"trigger"`
	Replace  bool   `toml:"replace"`
}

// Scenario is a parsed scenario file.
type Scenario struct {
	Start  string  `toml:"start"`
	Root   string  `toml:"root"`
	Silent bool    `toml:"silent"`
	Routes []Route `toml:"routes"`
	Steps  []Step  `toml:"steps"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serr.Wrap(err, "reading scenario", "path", path)
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, serr.Wrap(err, "path", path)
	}
	return sc, nil
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, serr.Wrap(err, "parsing scenario")
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks that every step names a known action.
func (sc *Scenario) Validate() error {
	for i, step := range sc.Steps {
		switch step.Action {
		case ActionNavigate, ActionLoad, ActionBack, ActionForward, ActionCheck:
		default:
			return serr.New("unknown step action", "step", strconv.Itoa(i+1), "action", step.Action)
		}
	}
	return nil
}
