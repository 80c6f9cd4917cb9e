package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gcol/greedy"
	"github.com/katalvlaran/gcol/localsearch"
)

// Load reads and validates the method file at path.
func Load(path string) (*Method, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading method file %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "method file %s", path)
	}
	return m, nil
}

// Parse decodes and validates one method document.
func Parse(data []byte) (*Method, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Method
	if err := dec.Decode(&m); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("Parse: empty document: %w", ErrInvalid)
		}
		return nil, errors.Wrap(err, "decoding method")
	}
	m.Initialization = strings.ToLower(m.Initialization)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks names and ranges.
func (m *Method) Validate() error {
	// 1) Method and initialization.
	switch m.Method {
	case MethodGreedy, MethodLocalSearch:
	case "":
		return fmt.Errorf("Validate: missing method: %w", ErrInvalid)
	default:
		return fmt.Errorf("Validate: unknown method %q: %w", m.Method, ErrInvalid)
	}
	if !slices.Contains(greedy.Names(), m.Initialization) {
		return fmt.Errorf("Validate: unknown initialization %q (want one of %v): %w",
			m.Initialization, greedy.Names(), ErrInvalid)
	}
	if m.Method == MethodGreedy {
		return nil
	}

	// 2) Engine.
	if !slices.Contains(localsearch.Names(), m.Name) {
		return fmt.Errorf("Validate: unknown local search %q (want one of %v): %w",
			m.Name, localsearch.Names(), ErrInvalid)
	}
	if ti := m.TabuIter; ti != nil {
		if ti.Alpha < 0 || ti.Random.Min < 0 || ti.Random.Max < ti.Random.Min {
			return fmt.Errorf("Validate: tabu_iter alpha=%v random=[%d,%d]: %w",
				ti.Alpha, ti.Random.Min, ti.Random.Max, ErrInvalid)
		}
	}

	// 3) Time.
	if t := m.Time; t != nil {
		var set int
		for _, present := range []bool{t.Relative != nil, t.Fixed != nil, t.Iterations != nil} {
			if present {
				set++
			}
		}
		if set != 1 {
			return fmt.Errorf("Validate: time needs exactly one of relative, fixed or iterations, got %d: %w",
				set, ErrInvalid)
		}
		switch {
		case t.Relative != nil && *t.Relative < 0,
			t.Fixed != nil && *t.Fixed < 0,
			t.Iterations != nil && *t.Iterations < 0:
			return fmt.Errorf("Validate: negative time: %w", ErrInvalid)
		}
	}
	return nil
}

// Engine returns the engine name; greedy methods run the none engine.
func (m *Method) Engine() string {
	if m.Method == MethodGreedy {
		return localsearch.None
	}
	return m.Name
}

// Resolve builds engine parameters for a graph of the given order. limit
// and iterations are the caller's budget; a time block overrides one of
// them. A relative budget is truncated to whole seconds, at least one.
func (m *Method) Resolve(order int, limit time.Duration, iterations int64) localsearch.Params {
	p := localsearch.Params{
		Name:          m.Engine(),
		Pseudo:        m.Pseudo,
		MaxTime:       limit,
		MaxIterations: iterations,
	}
	if p.Pseudo == "" {
		p.Pseudo = p.Name
	}
	if ti := m.TabuIter; ti != nil {
		p.Alpha = ti.Alpha
		p.TabuMin, p.TabuMax = ti.Random.Min, ti.Random.Max
	}
	if t := m.Time; t != nil {
		switch {
		case t.Relative != nil:
			secs := max(int64(float64(order)*(*t.Relative)), 1)
			p.MaxTime = time.Duration(secs) * time.Second
		case t.Fixed != nil:
			p.MaxTime = time.Duration(*t.Fixed * float64(time.Second))
		case t.Iterations != nil:
			p.MaxIterations = *t.Iterations
		}
	}
	return p
}
