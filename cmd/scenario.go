package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a sweep description loaded from YAML via --config.
// Nil pointer fields mean "not set in YAML"; they leave flag defaults alone.
type Scenario struct {
	Protocol    string    `yaml:"protocol"`
	NumUsers    *int      `yaml:"num_users"`
	NumSlots    *int      `yaml:"num_slots"`
	SlotLen     *float64  `yaml:"slot_len"`
	FTT         *float64  `yaml:"ftt"`
	NumLambdas  *int      `yaml:"num_lambdas"`
	LambdaMin   *float64  `yaml:"lambda_min"`
	LambdaMax   *float64  `yaml:"lambda_max"`
	Persistence []float64 `yaml:"persistence"`
	Seed        *int64    `yaml:"seed"`
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// apply copies every field set in sc into o unless the matching flag was
// given explicitly on the command line.
func (sc *Scenario) apply(o *sweepOptions, changed func(flag string) bool) {
	setInt := func(flag string, dst *int, src *int) {
		if src != nil && !changed(flag) {
			*dst = *src
		}
	}
	setFloat := func(flag string, dst *float64, src *float64) {
		if src != nil && !changed(flag) {
			*dst = *src
		}
	}
	setInt("users", &o.numUsers, sc.NumUsers)
	setInt("slots", &o.numSlots, sc.NumSlots)
	setInt("lambdas", &o.numLambdas, sc.NumLambdas)
	setFloat("slot-len", &o.slotLen, sc.SlotLen)
	setFloat("ftt", &o.ftt, sc.FTT)
	setFloat("lambda-min", &o.lambdaMin, sc.LambdaMin)
	setFloat("lambda-max", &o.lambdaMax, sc.LambdaMax)
	if sc.Persistence != nil && !changed("persistence") {
		o.persistence = sc.Persistence
	}
	if sc.Seed != nil && !changed("seed") {
		o.seed = *sc.Seed
	}
}
