package config

import "errors"

// Method names.
const (
	MethodGreedy      = "greedy"
	MethodLocalSearch = "local_search"
)

// ErrInvalid is the root of every validation failure.
var ErrInvalid = errors.New("config: invalid method configuration")

// Method is the decoded content of a method file.
type Method struct {
	Method         string    `yaml:"method"`
	Initialization string    `yaml:"initialization"`
	Name           string    `yaml:"name"`
	Pseudo         string    `yaml:"pseudo"`
	TabuIter       *TabuIter `yaml:"tabu_iter"`
	Time           *Time     `yaml:"time"`
}

// TabuIter holds the tenure parameters: alpha·load + uniform[min, max].
type TabuIter struct {
	Alpha  float64 `yaml:"alpha"`
	Random Range   `yaml:"random"`
}

// Range is a closed integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Time selects the budget kind. Exactly one field may be set.
type Time struct {
	Relative   *float64 `yaml:"relative"`
	Fixed      *float64 `yaml:"fixed"`
	Iterations *int64   `yaml:"iterations"`
}
