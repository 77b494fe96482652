package repair

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/arizkami/aurora-kernel-sub000/hive"
	"github.com/arizkami/aurora-kernel-sub000/internal/format"
)

// Option configures Diagnose and Repair at call time, following the same
// shape as hive.Store's Option (hive/store.go).
type Option func(*engineConfig)

type engineConfig struct {
	log *slog.Logger
}

// WithLogger attaches a structured logger to a Diagnose/Repair call.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *engineConfig) { c.log = l }
}

func resolveConfig(opts []Option) engineConfig {
	c := engineConfig{log: slog.Default()}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// isTreeSignature reports whether sig belongs to a cell the config key
// tree can reference (nk/vk/lf/db) — security (sk) cells have no teacher-
// style sharing table in this repository's simplified layout, so they are
// never checked for root-reachability.
func isTreeSignature(sig uint16) bool {
	switch sig {
	case format.SigKey, format.SigVal, format.SigList, format.SigData:
		return true
	default:
		return false
	}
}

// fragmentationWarnThreshold is picked empirically against Statistics'
// Fragmentation metric (hive/stats.go): above this, a Compact is suggested
// as a performance repair rather than a correctness one.
const fragmentationWarnThreshold = 25.0

// Diagnose runs a read-only structural and integrity scan of store. It
// never mutates the store and never reads raw bytes directly: every check
// goes through IntegrityCheck, Header, Walk, Statistics, and the tree
// scan's Root and Get calls. A header whose primary and secondary sequence
// numbers disagree is reported as a warning.
func Diagnose(store *hive.Store, opts ...Option) (*DiagnosticReport, error) {
	cfg := resolveConfig(opts)
	start := time.Now()
	report := &DiagnosticReport{}

	if status := store.IntegrityCheck(); status != hive.IntegrityOK {
		cfg.log.Warn("hive integrity check failed", "status", status)
		report.add(Diagnostic{
			Severity: SevCritical,
			Category: DiagIntegrity,
			Message:  fmt.Sprintf("integrity check failed: %s", status),
		})
		report.ScanTime = time.Since(start)
		return report, nil
	}

	if h := store.Header(); !h.IsClean() {
		report.add(Diagnostic{
			Severity: SevWarning,
			Category: DiagIntegrity,
			Message:  fmt.Sprintf("header sequence numbers disagree (primary %d, secondary %d); the last flush may be torn", h.PrimarySeq(), h.SecondarySeq()),
		})
	}

	reachable, treeDiags := treeDiagnostics(store)
	for _, d := range treeDiags {
		report.add(d)
	}

	var prevFree bool
	var prevRef hive.CellRef
	err := store.Walk(func(c hive.CellInfo) bool {
		switch c.State {
		case format.CellFree:
			if c.Signature != format.SigFree {
				report.add(Diagnostic{
					Offset:   uint32(c.Ref),
					Severity: SevWarning,
					Category: DiagStructure,
					Message:  "free cell carries a non-zero signature",
					Repair: &RepairAction{
						Type:           RepairRebuild,
						Risk:           RiskLow,
						AutoApplicable: false,
						Description:    "clear the stray signature on this free cell",
					},
				})
			}
			if prevFree {
				report.add(Diagnostic{
					Offset:   uint32(prevRef),
					Severity: SevWarning,
					Category: DiagStructure,
					Message:  fmt.Sprintf("adjacent free cells at %d and %d were never coalesced", prevRef, c.Ref),
					Repair: &RepairAction{
						Type:           RepairCompact,
						Risk:           RiskMedium,
						AutoApplicable: true,
						Description:    "compact the hive to merge adjacent free space",
					},
				})
			}
			prevFree = true
		case format.CellAllocated:
			if !format.KnownSignature(c.Signature) {
				report.add(Diagnostic{
					Offset:   uint32(c.Ref),
					Severity: SevError,
					Category: DiagStructure,
					Message:  fmt.Sprintf("allocated cell carries unrecognized signature %#04x", c.Signature),
				})
			} else if isTreeSignature(c.Signature) && len(reachable) > 0 && !reachable[c.Ref] {
				report.add(Diagnostic{
					Offset:   uint32(c.Ref),
					Severity: SevWarning,
					Category: DiagIntegrity,
					Message:  fmt.Sprintf("allocated %s cell at %d is not reachable from the config root", format.SignatureName(c.Signature), c.Ref),
					Repair: &RepairAction{
						Type:           RepairReclaim,
						Risk:           RiskLow,
						AutoApplicable: true,
						Description:    "free the orphaned cell back to the allocator",
					},
				})
			}
			prevFree = false
		}
		prevRef = c.Ref
		return true
	})
	if err != nil {
		report.add(Diagnostic{
			Severity: SevCritical,
			Category: DiagStructure,
			Message:  fmt.Sprintf("walk aborted: %v", err),
		})
		report.ScanTime = time.Since(start)
		return report, nil
	}

	stats, err := store.Statistics()
	if err != nil {
		return report, err
	}
	if stats.Fragmentation > fragmentationWarnThreshold {
		report.add(Diagnostic{
			Severity: SevInfo,
			Category: DiagPerformance,
			Message:  fmt.Sprintf("fragmentation score %.1f exceeds the performance threshold", stats.Fragmentation),
			Repair: &RepairAction{
				Type:           RepairCompact,
				Risk:           RiskMedium,
				AutoApplicable: true,
				Description:    "compact the hive to reduce fragmentation",
			},
		})
	}

	report.ScanTime = time.Since(start)
	cfg.log.Debug("diagnose complete", "diagnostics", len(report.Diagnostics), "duration", report.ScanTime)
	return report, nil
}

// Repair applies the fixes a Diagnose pass suggested, honoring opts'
// dry-run, auto-only, and max-risk gates. It snapshots the store's raw
// image before applying anything and restores it if any repair action
// returns an error (transactional all-or-nothing semantics), since the
// hive package exposes no per-action undo.
func Repair(store *hive.Store, opts RepairOptions, logOpts ...Option) (*RepairResult, error) {
	cfg := resolveConfig(logOpts)
	start := time.Now()
	report, err := Diagnose(store, logOpts...)
	if err != nil {
		return nil, err
	}

	result := &RepairResult{DryRun: opts.DryRun}
	var snapshot []byte
	needsCompact := false
	var compactDiag Diagnostic

	// Reclaims are applied first, by the offset Diagnose recorded: freeing
	// a cell never moves any other cell (hive/alloc.go), so every
	// recorded offset is still valid right up until Compact renumbers the
	// whole image. Compact itself is applied once, last, after every
	// individual reclaim — applying it earlier would invalidate the
	// offsets later reclaims depend on.
	for _, d := range report.Diagnostics {
		if d.Repair == nil {
			continue
		}
		if (opts.AutoOnly && !d.Repair.AutoApplicable) || d.Repair.Risk > opts.MaxRisk || opts.DryRun {
			result.Skipped++
			result.Diagnostics = append(result.Diagnostics, RepairDiagnostic{
				Offset: d.Offset, Description: d.Repair.Description, Applied: false,
			})
			continue
		}

		switch d.Repair.Type {
		case RepairCompact:
			needsCompact = true
			compactDiag = d
			result.Applied++
			result.Diagnostics = append(result.Diagnostics, RepairDiagnostic{
				Offset: d.Offset, Description: d.Repair.Description, Applied: true,
			})
		case RepairReclaim:
			if snapshot == nil {
				snapshot = append([]byte(nil), store.Bytes()...)
			}
			if ferr := store.Free(hive.CellRef(d.Offset)); ferr != nil {
				rollback(store, snapshot)
				result.Failed++
				result.Diagnostics = append(result.Diagnostics, RepairDiagnostic{
					Offset: d.Offset, Description: d.Repair.Description, Applied: false, Error: ferr.Error(),
				})
				result.Duration = time.Since(start)
				return result, ferr
			}
			result.Applied++
			result.Diagnostics = append(result.Diagnostics, RepairDiagnostic{
				Offset: d.Offset, Description: d.Repair.Description, Applied: true,
			})
		default:
			result.Skipped++
			result.Diagnostics = append(result.Diagnostics, RepairDiagnostic{
				Offset: d.Offset, Description: d.Repair.Description, Applied: false,
			})
		}
	}

	if needsCompact {
		if snapshot == nil {
			snapshot = append([]byte(nil), store.Bytes()...)
		}
		if cerr := store.Compact(); cerr != nil {
			if errors.Is(cerr, hive.ErrViewsOutstanding) {
				cerr = fmt.Errorf("%w: %w", ErrViewsOutstanding, cerr)
			}
			rollback(store, snapshot)
			result.Failed++
			result.Applied--
			result.Diagnostics = append(result.Diagnostics, RepairDiagnostic{
				Offset: compactDiag.Offset, Description: compactDiag.Repair.Description, Applied: false, Error: cerr.Error(),
			})
			result.Duration = time.Since(start)
			return result, cerr
		}
	}

	result.Duration = time.Since(start)
	cfg.log.Info("repair complete", "applied", result.Applied, "skipped", result.Skipped, "failed", result.Failed, "dry_run", result.DryRun)
	return result, nil
}

// rollback restores store's image to snapshot in place. Used only when a
// repair action fails partway through Repair's apply loop.
func rollback(store *hive.Store, snapshot []byte) {
	copy(store.Bytes(), snapshot)
}
