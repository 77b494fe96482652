// Package repair implements the hive repair engine: diagnosis and
// (optionally dry-run) repair of a hive image, built strictly on the hive
// package's public contract (IntegrityCheck, Header, Walk, Statistics,
// Root, Get, Free, Compact) — it never reaches into cell bytes directly
// except to take and
// restore a whole-image snapshot for rollback.
//
// Grounded on the teacher's pkg/types/diagnostics.go + internal/repair
// (Severity/DiagCategory/RiskLevel/RepairType taxonomy, DiagnosticReport
// shape) and pkg/types/repair.go (RepairOptions/RepairResult/
// RepairDiagnostic fields), reworked against this repository's simpler
// single-region cell layout instead of the teacher's HBIN-indexed one.
package repair

import "time"

// Severity classifies how serious a diagnostic issue is.
type Severity int

const (
	SevInfo Severity = iota
	SevWarning
	SevError
	SevCritical
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	case SevCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// DiagCategory classifies the type of issue found.
type DiagCategory int

const (
	DiagStructure DiagCategory = iota
	DiagIntegrity
	DiagPerformance
)

// RepairType describes what kind of repair action is suggested.
type RepairType int

const (
	RepairRebuild RepairType = iota
	RepairCompact
	// RepairReclaim frees a single orphaned cell back to the allocator.
	RepairReclaim
)

// RiskLevel indicates how dangerous a repair action is.
type RiskLevel int

const (
	RiskNone RiskLevel = iota
	RiskLow
	RiskMedium
	RiskHigh
)

func (r RiskLevel) String() string {
	switch r {
	case RiskNone:
		return "none"
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return "unknown"
	}
}

// RepairAction describes a suggested fix for a Diagnostic.
type RepairAction struct {
	Type           RepairType
	Risk           RiskLevel
	AutoApplicable bool
	Description    string
}

// Diagnostic is a single issue found during Diagnose.
type Diagnostic struct {
	Offset   uint32
	Severity Severity
	Category DiagCategory
	Message  string
	Repair   *RepairAction // nil if no automated fix is known
}

// DiagSummary is quick counts by severity.
type DiagSummary struct {
	Critical int
	Errors   int
	Warnings int
	Info     int
}

// DiagnosticReport collects every issue found during a Diagnose pass.
type DiagnosticReport struct {
	Diagnostics []Diagnostic
	Summary     DiagSummary
	ScanTime    time.Duration
}

// add appends d and updates the summary.
func (r *DiagnosticReport) add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
	switch d.Severity {
	case SevCritical:
		r.Summary.Critical++
	case SevError:
		r.Summary.Errors++
	case SevWarning:
		r.Summary.Warnings++
	case SevInfo:
		r.Summary.Info++
	}
}

// HasCriticalIssues reports whether any diagnostic is critical.
func (r *DiagnosticReport) HasCriticalIssues() bool { return r.Summary.Critical > 0 }

// AutoRepairable returns every diagnostic with an auto-applicable repair.
func (r *DiagnosticReport) AutoRepairable() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Repair != nil && d.Repair.AutoApplicable {
			out = append(out, d)
		}
	}
	return out
}

// RepairOptions configures how Repair applies fixes (spec-supplemented
// feature; the spec itself declines to define automatic repair, §9).
type RepairOptions struct {
	DryRun   bool      // preview repairs without applying
	AutoOnly bool      // only apply auto-repairable fixes
	MaxRisk  RiskLevel // ceiling on the risk level applied
}

// RepairDiagnostic records what happened to one diagnostic during Repair.
type RepairDiagnostic struct {
	Offset      uint32
	Description string
	Applied     bool
	Error       string // empty if successful or not attempted
}

// RepairResult is the outcome of a Repair call.
type RepairResult struct {
	Applied     int
	Skipped     int
	Failed      int
	DryRun      bool
	Duration    time.Duration
	Diagnostics []RepairDiagnostic
}
