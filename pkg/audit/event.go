// Package audit provides an audit trail for gp4par build invocations.
package audit

import (
	"fmt"
	"time"
)

// Event represents an auditable build invocation
type Event struct {
	ID          string        `json:"id"`
	Timestamp   time.Time     `json:"timestamp"`
	User        string        `json:"user"`
	Part        string        `json:"part"`
	Operation   string        `json:"operation"`
	NetlistPath string        `json:"netlist_path,omitempty"`
	OutputPath  string        `json:"output_path,omitempty"`
	Diagnostics []string      `json:"diagnostics,omitempty"`
	Success     bool          `json:"success"`
	Error       string        `json:"error,omitempty"`
	Published   bool          `json:"published"` // true if the build summary was pushed to the net-cache
	DryRun      bool          `json:"dry_run"`
	Duration    time.Duration `json:"duration"`
	NodeCount   int           `json:"node_count,omitempty"`
	EdgeCount   int           `json:"edge_count,omitempty"`
	ClientIP    string        `json:"client_ip,omitempty"`
	SessionID   string        `json:"session_id,omitempty"`
}

// EventType categorizes audit events
type EventType string

const (
	EventTypeFetch   EventType = "fetch"   // remote fetch of a device/netlist file
	EventTypeBuild   EventType = "build"   // BuildGraphs invocation
	EventTypePublish EventType = "publish" // net-cache mirror write
	EventTypeQuery   EventType = "query"   // devices/labels list
)

// Severity indicates the importance of an audit event
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Filter defines criteria for querying audit events
type Filter struct {
	Part        string
	User        string
	Operation   string
	NetlistPath string
	OutputPath  string
	StartTime   time.Time
	EndTime     time.Time
	SuccessOnly bool
	FailureOnly bool
	Limit       int
	Offset      int
}

// NewEvent creates a new audit event
func NewEvent(user, part, operation string) *Event {
	return &Event{
		ID:        generateID(),
		Timestamp: time.Now(),
		User:      user,
		Part:      part,
		Operation: operation,
	}
}

// WithNetlist sets the netlist file path
func (e *Event) WithNetlist(path string) *Event {
	e.NetlistPath = path
	return e
}

// WithOutput sets the build output path
func (e *Event) WithOutput(path string) *Event {
	e.OutputPath = path
	return e
}

// WithDiagnostics sets the fatal diagnostic messages produced by the build
func (e *Event) WithDiagnostics(diagnostics []string) *Event {
	e.Diagnostics = diagnostics
	return e
}

// WithSuccess marks the event as successful
func (e *Event) WithSuccess() *Event {
	e.Success = true
	return e
}

// WithError marks the event as failed
func (e *Event) WithError(err error) *Event {
	e.Success = false
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// WithDuration sets the operation duration
func (e *Event) WithDuration(d time.Duration) *Event {
	e.Duration = d
	return e
}

// WithPublish marks whether the build summary was mirrored to the net-cache
func (e *Event) WithPublish(published bool) *Event {
	e.Published = published
	e.DryRun = !published
	return e
}

// WithGraphStats records the built graphs' node/edge counts
func (e *Event) WithGraphStats(nodes, edges int) *Event {
	e.NodeCount = nodes
	e.EdgeCount = edges
	return e
}

func generateID() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}
