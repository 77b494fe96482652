package config

import (
	"testing"

	"github.com/arizkami/aurora-kernel-sub000/hive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findChange(changes []Change, path, name string, kind ChangeKind) (Change, bool) {
	for _, c := range changes {
		if c.Path == path && c.Name == name && c.Kind == kind {
			return c, true
		}
	}
	return Change{}, false
}

func TestDiffDetectsTopLevelKeyValueChanges(t *testing.T) {
	a := newTestFacade(t)
	b := newTestFacade(t)

	require.NoError(t, a.SetValue(`NTCore`, "Shared", TypeDWord, []byte{1, 0, 0, 0}))
	require.NoError(t, b.SetValue(`NTCore`, "Shared", TypeDWord, []byte{2, 0, 0, 0}))
	require.NoError(t, a.SetValue(`NTCore`, "OnlyA", TypeString, []byte("a")))
	require.NoError(t, b.SetValue(`NTCore`, "OnlyB", TypeString, []byte("b")))

	changes, err := Diff(a, b)
	require.NoError(t, err)

	_, ok := findChange(changes, `NTCore`, "Shared", ValueChanged)
	assert.True(t, ok)
	_, ok = findChange(changes, `NTCore`, "OnlyA", ValueRemoved)
	assert.True(t, ok)
	_, ok = findChange(changes, `NTCore`, "OnlyB", ValueAdded)
	assert.True(t, ok)
}

func TestDiffDetectsAddedAndRemovedKeys(t *testing.T) {
	a := newTestFacade(t)
	b := newTestFacade(t)

	require.NoError(t, a.CreateKey(`NTCore\Gone`))
	require.NoError(t, b.CreateKey(`NTCore\New`))

	changes, err := Diff(a, b)
	require.NoError(t, err)

	_, ok := findChange(changes, `NTCore\Gone`, "", KeyRemoved)
	assert.True(t, ok)
	_, ok = findChange(changes, `NTCore\New`, "", KeyAdded)
	assert.True(t, ok)
}

func TestDiffOfIdenticalFacadesIsEmpty(t *testing.T) {
	a := newTestFacade(t)
	b := newTestFacade(t)
	require.NoError(t, a.SetValue(`NTCore\Kernel`, "X", TypeDWord, []byte{5, 0, 0, 0}))
	require.NoError(t, b.SetValue(`NTCore\Kernel`, "X", TypeDWord, []byte{5, 0, 0, 0}))

	changes, err := Diff(a, b)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func newEmptyFacadeForMerge(t *testing.T) *Facade {
	t.Helper()
	store, err := hive.Create(64 * 1024)
	require.NoError(t, err)
	f, err := Open(store)
	require.NoError(t, err)
	return f
}

func TestMergeOverwriteCopiesSubtree(t *testing.T) {
	src := newEmptyFacadeForMerge(t)
	dst := newEmptyFacadeForMerge(t)

	require.NoError(t, src.SetValue(`NTCore\Kernel`, "TickCount", TypeDWord, []byte{9, 0, 0, 0}))
	require.NoError(t, dst.SetValue(`NTCore\Kernel`, "TickCount", TypeDWord, []byte{1, 0, 0, 0}))

	result, err := Merge(dst, src, `NTCore`, MergeOverwrite)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ValuesWritten)

	_, data, err := dst.GetValue(`NTCore\Kernel`, "TickCount")
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 0, 0, 0}, data)
}

func TestMergeKeepExistingPreservesDestValue(t *testing.T) {
	src := newEmptyFacadeForMerge(t)
	dst := newEmptyFacadeForMerge(t)

	require.NoError(t, src.SetValue(`NTCore\Kernel`, "TickCount", TypeDWord, []byte{9, 0, 0, 0}))
	require.NoError(t, dst.SetValue(`NTCore\Kernel`, "TickCount", TypeDWord, []byte{1, 0, 0, 0}))

	result, err := Merge(dst, src, `NTCore`, MergeKeepExisting)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ValuesWritten)
	assert.Equal(t, 1, result.ValuesSkipped)

	_, data, err := dst.GetValue(`NTCore\Kernel`, "TickCount")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0, 0}, data)
}

func TestMergeFailOnConflictReturnsError(t *testing.T) {
	src := newEmptyFacadeForMerge(t)
	dst := newEmptyFacadeForMerge(t)

	require.NoError(t, src.SetValue(`NTCore\Kernel`, "TickCount", TypeDWord, []byte{9, 0, 0, 0}))
	require.NoError(t, dst.SetValue(`NTCore\Kernel`, "TickCount", TypeDWord, []byte{1, 0, 0, 0}))

	_, err := Merge(dst, src, `NTCore`, MergeFailOnConflict)
	assert.ErrorIs(t, err, ErrMergeConflict)
}

func TestMergeCreatesNewSubkeys(t *testing.T) {
	src := newEmptyFacadeForMerge(t)
	dst := newEmptyFacadeForMerge(t)

	require.NoError(t, src.SetValue(`NTCore\System\Net`, "Enabled", TypeDWord, []byte{1, 0, 0, 0}))

	result, err := Merge(dst, src, `NTCore`, MergeOverwrite)
	require.NoError(t, err)
	assert.Greater(t, result.KeysCreated, 0)

	_, data, err := dst.GetValue(`NTCore\System\Net`, "Enabled")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0, 0}, data)
}

func TestMergeOfMissingSourceSubtreeIsNoop(t *testing.T) {
	src := newEmptyFacadeForMerge(t)
	dst := newEmptyFacadeForMerge(t)

	result, err := Merge(dst, src, `NTCore\Missing`, MergeOverwrite)
	require.NoError(t, err)
	assert.Equal(t, 0, result.KeysCreated)
	assert.Equal(t, 0, result.ValuesWritten)
}
