package ui

import (
	"fmt"

	"github.com/arthur-debert/gearbox/pkg/dispatch"
	"github.com/arthur-debert/gearbox/pkg/transition"
)

// TransitionRow describes one registered trigger type
type TransitionRow struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Kind string `json:"kind" yaml:"kind" toml:"kind"`
}

// TransitionList is the result of listing a dispatch table
type TransitionList struct {
	Transitions []TransitionRow `json:"transitions" yaml:"transitions" toml:"transitions"`
}

// PhaseRow is one sub-event produced by a dispatch
type PhaseRow struct {
	Phase string `json:"phase" yaml:"phase" toml:"phase"`
	Type  string `json:"type" yaml:"type" toml:"type"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// DispatchView is the result of dispatching a single trigger
type DispatchView struct {
	Transition string     `json:"transition" yaml:"transition" toml:"transition"`
	Kind       string     `json:"kind" yaml:"kind" toml:"kind"`
	Phases     []PhaseRow `json:"phases" yaml:"phases" toml:"phases"`
}

// NewTransitionList lists every entry of table in name order
func NewTransitionList(table *dispatch.Table) TransitionList {
	entries := table.Entries()
	rows := make([]TransitionRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, TransitionRow{Name: e.Identity.Name, Kind: e.Kind.String()})
	}
	return TransitionList{Transitions: rows}
}

// NewDispatchView describes the phases a dispatch produced for entry
func NewDispatchView(entry dispatch.Entry, phases transition.Phases) DispatchView {
	rows := make([]PhaseRow, 0, len(transition.AllPhases))
	phases.Each(func(phase transition.Phase, v any) {
		rows = append(rows, PhaseRow{
			Phase: phase.String(),
			Type:  fmt.Sprintf("%T", v),
			Value: fmt.Sprintf("%+v", v),
		})
	})
	return DispatchView{
		Transition: entry.Identity.Name,
		Kind:       entry.Kind.String(),
		Phases:     rows,
	}
}
