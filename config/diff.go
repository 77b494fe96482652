package config

import "bytes"

// ChangeKind classifies a single Diff entry (spec §4.I).
type ChangeKind int

const (
	KeyAdded ChangeKind = iota
	KeyRemoved
	ValueAdded
	ValueRemoved
	ValueChanged
)

func (k ChangeKind) String() string {
	switch k {
	case KeyAdded:
		return "key_added"
	case KeyRemoved:
		return "key_removed"
	case ValueAdded:
		return "value_added"
	case ValueRemoved:
		return "value_removed"
	case ValueChanged:
		return "value_changed"
	default:
		return "unknown"
	}
}

// Change is one difference found between two facades under a path (spec
// §4.I: "{Path, Kind, Old, New}"). Old/New hold raw value bytes for
// Value* kinds and are nil for Key* kinds.
type Change struct {
	Path string
	Name string // value name, empty for Key* kinds
	Kind ChangeKind
	Old  []byte
	New  []byte
}

// Diff walks the full key tree of a and b and reports every added/removed
// key and added/removed/changed value (spec §4.I). Grounded on the
// teacher's pkg/hive/diff.go key-map comparison shape, re-targeted at this
// repository's path-addressed façade instead of a flat loaded-key list.
func Diff(a, b *Facade) ([]Change, error) {
	var changes []Change

	getA := func(name string) ([]byte, error) { _, d, err := a.RootGetValue(name); return d, err }
	getB := func(name string) ([]byte, error) { _, d, err := b.RootGetValue(name); return d, err }
	if err := diffValuesAt("", a.RootValues, b.RootValues, getA, getB, &changes); err != nil {
		return nil, err
	}

	aSubs, err := a.RootSubkeys()
	if err != nil {
		return nil, err
	}
	bSubs, err := b.RootSubkeys()
	if err != nil {
		return nil, err
	}
	if err := diffSubkeySet(a, b, "", aSubs, bSubs, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

func diffKey(a, b *Facade, path string, out *[]Change) error {
	_, errA := a.OpenKey(path)
	_, errB := b.OpenKey(path)
	aExists := errA == nil
	bExists := errB == nil

	switch {
	case aExists && !bExists:
		return markSubtree(a, path, KeyRemoved, ValueRemoved, out)
	case !aExists && bExists:
		return markSubtree(b, path, KeyAdded, ValueAdded, out)
	case !aExists && !bExists:
		return nil
	}

	getA := func(name string) ([]byte, error) { _, d, err := a.GetValue(path, name); return d, err }
	getB := func(name string) ([]byte, error) { _, d, err := b.GetValue(path, name); return d, err }
	if err := diffValuesAt(path,
		func() ([]string, error) { return a.ListValues(path) },
		func() ([]string, error) { return b.ListValues(path) },
		getA, getB, out); err != nil {
		return err
	}

	aSubs, err := a.ListSubkeys(path)
	if err != nil {
		return err
	}
	bSubs, err := b.ListSubkeys(path)
	if err != nil {
		return err
	}
	return diffSubkeySet(a, b, path, aSubs, bSubs, out)
}

// diffSubkeySet recurses diffKey over the union of aSubs and bSubs.
func diffSubkeySet(a, b *Facade, path string, aSubs, bSubs []string, out *[]Change) error {
	seen := make(map[string]bool, len(aSubs))
	for _, name := range aSubs {
		seen[name] = true
		if err := diffKey(a, b, joinPath(path, name), out); err != nil {
			return err
		}
	}
	for _, name := range bSubs {
		if seen[name] {
			continue
		}
		if err := diffKey(a, b, joinPath(path, name), out); err != nil {
			return err
		}
	}
	return nil
}

// markSubtree reports path itself as keyKind, then every value under it as
// valueKind, then recurses the same marking over every subkey. Used when
// one side of the comparison lacks path entirely: the whole subtree on the
// other side is added or removed.
func markSubtree(f *Facade, path string, keyKind, valueKind ChangeKind, out *[]Change) error {
	*out = append(*out, Change{Path: path, Kind: keyKind})

	names, err := f.ListValues(path)
	if err != nil {
		return err
	}
	for _, name := range names {
		_, data, err := f.GetValue(path, name)
		if err != nil {
			return err
		}
		c := Change{Path: path, Name: name, Kind: valueKind}
		if valueKind == ValueAdded {
			c.New = data
		} else {
			c.Old = data
		}
		*out = append(*out, c)
	}

	subs, err := f.ListSubkeys(path)
	if err != nil {
		return err
	}
	for _, name := range subs {
		if err := markSubtree(f, joinPath(path, name), keyKind, valueKind, out); err != nil {
			return err
		}
	}
	return nil
}

// diffValuesAt compares the value sets under path using the supplied
// listing/getter functions, which differ only in whether path addresses
// the façade root (GetValue/ListValues cannot address the root path
// directly, since splitPath rejects an empty path).
func diffValuesAt(path string, listA, listB func() ([]string, error), getA, getB func(string) ([]byte, error), out *[]Change) error {
	aNames, err := listA()
	if err != nil {
		return err
	}
	bNames, err := listB()
	if err != nil {
		return err
	}
	aSet := toSet(aNames)
	bSet := toSet(bNames)

	for _, name := range aNames {
		if !bSet[name] {
			data, err := getA(name)
			if err != nil {
				return err
			}
			*out = append(*out, Change{Path: path, Name: name, Kind: ValueRemoved, Old: data})
		}
	}
	for _, name := range bNames {
		newData, err := getB(name)
		if err != nil {
			return err
		}
		if !aSet[name] {
			*out = append(*out, Change{Path: path, Name: name, Kind: ValueAdded, New: newData})
			continue
		}
		oldData, err := getA(name)
		if err != nil {
			return err
		}
		if !bytes.Equal(oldData, newData) {
			*out = append(*out, Change{Path: path, Name: name, Kind: ValueChanged, Old: oldData, New: newData})
		}
	}
	return nil
}

func toSet(names []string) map[string]bool {
	s := make(map[string]bool, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + `\` + name
}
