package repair

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/arizkami/aurora-kernel-sub000/config"
	"github.com/arizkami/aurora-kernel-sub000/hive"
	"github.com/arizkami/aurora-kernel-sub000/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *hive.Store {
	t.Helper()
	store, err := hive.Create(8 * 1024)
	require.NoError(t, err)
	return store
}

func TestDiagnoseCleanStoreHasNoIssues(t *testing.T) {
	store := newTestStore(t)
	report, err := Diagnose(store)
	require.NoError(t, err)
	assert.Empty(t, report.Diagnostics)
	assert.False(t, report.HasCriticalIssues())
}

func TestDiagnoseFlagsUnrecognizedSignature(t *testing.T) {
	store := newTestStore(t)
	ref, _, err := store.Allocate(16)
	require.NoError(t, err)
	require.NoError(t, store.SetSignature(ref, 0xDEAD, 0))

	report, err := Diagnose(store)
	require.NoError(t, err)
	require.NotEmpty(t, report.Diagnostics)
	assert.Equal(t, SevError, report.Diagnostics[0].Severity)
	assert.Equal(t, DiagStructure, report.Diagnostics[0].Category)
}

// TestDiagnoseFlagsAdjacentFreeCells simulates an image that was not
// produced via this package's own Free (which always coalesces) — e.g.
// loaded from an external source — by writing two adjacent free-cell
// headers directly into the image.
func TestDiagnoseFlagsAdjacentFreeCells(t *testing.T) {
	store := newTestStore(t)
	data := store.Bytes()
	off := format.HeaderSize
	format.PutCellHeader(data[off:], format.CellHeader{
		State: format.CellFree, Size: 64, Signature: format.SigFree,
	})
	format.PutCellHeader(data[off+64:], format.CellHeader{
		State: format.CellFree, Size: uint32(len(data) - off - 64), Signature: format.SigFree,
	})

	report, err := Diagnose(store)
	require.NoError(t, err)
	found := false
	for _, d := range report.Diagnostics {
		if d.Category == DiagStructure && d.Repair != nil && d.Repair.Type == RepairCompact {
			found = true
		}
	}
	assert.True(t, found, "expected an adjacent-free-cell diagnostic with a compact repair action")
}

func TestDiagnoseReportsCriticalOnIntegrityFailure(t *testing.T) {
	store := newTestStore(t)
	data := store.Bytes()
	data[0] = 0xFF // corrupt the magic

	report, err := Diagnose(store)
	require.NoError(t, err)
	require.True(t, report.HasCriticalIssues())
	assert.Equal(t, 1, report.Summary.Critical)
}

func TestRepairDryRunAppliesNothing(t *testing.T) {
	store := newTestStore(t)
	data := store.Bytes()
	off := format.HeaderSize
	format.PutCellHeader(data[off:], format.CellHeader{
		State: format.CellFree, Size: 64, Signature: format.SigFree,
	})
	format.PutCellHeader(data[off+64:], format.CellHeader{
		State: format.CellFree, Size: uint32(len(data) - off - 64), Signature: format.SigFree,
	})

	result, err := Repair(store, RepairOptions{DryRun: true, MaxRisk: RiskHigh})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 0, result.Applied)
	assert.Greater(t, result.Skipped, 0)
}

func TestRepairAppliesCompactForAdjacentFreeCells(t *testing.T) {
	store := newTestStore(t)
	data := store.Bytes()
	off := format.HeaderSize
	format.PutCellHeader(data[off:], format.CellHeader{
		State: format.CellFree, Size: 64, Signature: format.SigFree,
	})
	format.PutCellHeader(data[off+64:], format.CellHeader{
		State: format.CellFree, Size: uint32(len(data) - off - 64), Signature: format.SigFree,
	})

	result, err := Repair(store, RepairOptions{MaxRisk: RiskHigh})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Failed)
	assert.Greater(t, result.Applied, 0)

	report, err := Diagnose(store)
	require.NoError(t, err)
	assert.False(t, report.HasCriticalIssues())
}

func TestDiagnoseFlagsOrphanedTreeCell(t *testing.T) {
	store := newTestStore(t)
	f, err := config.Open(store)
	require.NoError(t, err)
	require.NoError(t, f.CreateKey(`NTCore\System`))
	require.NoError(t, f.SetValue(`NTCore\System`, "Name", config.TypeString, []byte("hi")))

	// Allocate a detached nk cell that the tree never links in - simulates
	// a leak from an aborted mutation.
	ref, payload, err := store.Allocate(64)
	require.NoError(t, err)
	require.NotZero(t, ref)
	rec := format.NKRecord{
		ParentOffset:     uint32(format.InvalidOffset),
		SubkeyListOffset: uint32(format.InvalidOffset),
		ValueListOffset:  uint32(format.InvalidOffset),
		SecurityOffset:   uint32(format.InvalidOffset),
		NameRaw:          []byte{'x', 0},
	}
	format.EncodeNK(payload, rec)
	require.NoError(t, store.SetSignature(ref, format.SigKey, 0))

	report, err := Diagnose(store)
	require.NoError(t, err)
	found := false
	for _, d := range report.Diagnostics {
		if d.Offset == uint32(ref) && d.Repair != nil && d.Repair.Type == RepairReclaim {
			found = true
		}
	}
	assert.True(t, found, "expected an orphaned-cell diagnostic for the detached nk cell")
}

func TestRepairReclaimsOrphanedCell(t *testing.T) {
	store := newTestStore(t)
	_, err := config.Open(store)
	require.NoError(t, err)

	ref, payload, err := store.Allocate(64)
	require.NoError(t, err)
	rec := format.NKRecord{
		ParentOffset:     uint32(format.InvalidOffset),
		SubkeyListOffset: uint32(format.InvalidOffset),
		ValueListOffset:  uint32(format.InvalidOffset),
		SecurityOffset:   uint32(format.InvalidOffset),
		NameRaw:          []byte{'x', 0},
	}
	format.EncodeNK(payload, rec)
	require.NoError(t, store.SetSignature(ref, format.SigKey, 0))

	result, err := Repair(store, RepairOptions{MaxRisk: RiskLow})
	require.NoError(t, err)
	assert.Greater(t, result.Applied, 0)

	report, err := Diagnose(store)
	require.NoError(t, err)
	for _, d := range report.Diagnostics {
		assert.NotEqual(t, uint32(ref), d.Offset, "orphaned cell should have been reclaimed")
	}
}

func TestDiagnoseWithLoggerWarnsOnIntegrityFailure(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	store := newTestStore(t)
	data := store.Bytes()
	data[0] = 0xFF // corrupt the magic

	_, err := Diagnose(store, WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hive integrity check failed")
}

func TestRepairWithLoggerLogsCompletion(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	store := newTestStore(t)
	data := store.Bytes()
	off := format.HeaderSize
	format.PutCellHeader(data[off:], format.CellHeader{
		State: format.CellFree, Size: 64, Signature: format.SigFree,
	})
	format.PutCellHeader(data[off+64:], format.CellHeader{
		State: format.CellFree, Size: uint32(len(data) - off - 64), Signature: format.SigFree,
	})

	_, err := Repair(store, RepairOptions{MaxRisk: RiskHigh}, WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "repair complete")
}

func TestRepairRespectsMaxRisk(t *testing.T) {
	store := newTestStore(t)
	data := store.Bytes()
	off := format.HeaderSize
	format.PutCellHeader(data[off:], format.CellHeader{
		State: format.CellFree, Size: 64, Signature: format.SigFree,
	})
	format.PutCellHeader(data[off+64:], format.CellHeader{
		State: format.CellFree, Size: uint32(len(data) - off - 64), Signature: format.SigFree,
	})

	result, err := Repair(store, RepairOptions{MaxRisk: RiskLow})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Applied)
	assert.Greater(t, result.Skipped, 0)
}
