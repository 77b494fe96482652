package repair

import "errors"

var (
	// ErrNotDiagnosed names the case of a repair with no diagnostic report
	// to act on. Repair runs its own Diagnose pass first and does not
	// return it.
	ErrNotDiagnosed = errors.New("repair: no diagnostic report to act on")
	// ErrViewsOutstanding surfaces hive.ErrViewsOutstanding when a repair
	// action (Compact) cannot proceed because map views are open.
	ErrViewsOutstanding = errors.New("repair: cannot repair with outstanding map views")
)
