// Package monitor streams fact results to live observers over
// WebSocket connections, for dashboards watching a long test
// run.
package monitor

import (
	"fmt"
	"time"

	"digital.vasic.facts/pkg/fact"
)

// EventType represents the type of run event.
type EventType string

const (
	EventResult        EventType = "result"
	EventSuiteStarted  EventType = "suite_started"
	EventSuiteFinished EventType = "suite_finished"
)

// Event represents a lifecycle event during a fact run.
type Event struct {
	Type      EventType `json:"type"`
	Kind      string    `json:"kind,omitempty"`
	Expr      string    `json:"expr,omitempty"`
	Value     string    `json:"value,omitempty"`
	Error     string    `json:"error,omitempty"`
	Context   string    `json:"context,omitempty"`
	Suite     string    `json:"suite,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ResultEvent converts a fact result into a stream event.
func ResultEvent(result fact.Result) Event {
	e := Event{
		Type:      EventResult,
		Kind:      result.Kind,
		Expr:      result.Expr,
		Error:     result.Err,
		Context:   result.Meta.Context,
		Timestamp: time.Now(),
	}
	if result.Value != nil {
		e.Value = fmt.Sprintf("%v", result.Value)
	}
	return e
}

// SuiteEvent builds a suite lifecycle event.
func SuiteEvent(t EventType, description string) Event {
	return Event{
		Type:      t,
		Suite:     description,
		Timestamp: time.Now(),
	}
}
