package core

import (
	"strconv"
	"time"
)

// Parameter is a single labelled value shown on the stats overlay.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// String renders the parameter as "Label: Value".
func (p Parameter) String() string { return p.Label + ": " + p.Value }

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values shown for one frame.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lines flattens the snapshot into display lines in group order.
func (s ParameterSnapshot) Lines() []string {
	var out []string
	for _, g := range s.Groups {
		for _, p := range g.Params {
			out = append(out, p.String())
		}
	}
	return out
}

// IntParam builds an integer-valued parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(value)}
}

// Uint64Param builds an unsigned parameter.
func Uint64Param(key, label string, value uint64) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.FormatUint(value, 10)}
}

// FloatParam builds a float parameter rounded up to two decimal places.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.FormatFloat(RoundUpHundredth(value), 'f', -1, 64)}
}

// DurationParam builds a parameter showing d in milliseconds.
func DurationParam(key, label string, d time.Duration) Parameter {
	ms := float64(d) / float64(time.Millisecond)
	return Parameter{Key: key, Label: label, Value: strconv.FormatFloat(RoundUpHundredth(ms), 'f', -1, 64) + "ms"}
}

// StringParam builds a free-form parameter.
func StringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Value: value}
}
