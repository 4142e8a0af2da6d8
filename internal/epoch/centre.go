// Package epoch computes the binary-epoch recentring that keeps a pulsar
// timing model equivalent: the reference epoch moves by a whole number of
// orbital cycles to the instant of identical orbital phase nearest a
// target epoch. All epochs are Modified Julian Dates in days.
package epoch

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/pulsarkit/parcentre/internal/messages"
	"github.com/pulsarkit/parcentre/internal/par"
)

// SecondsPerDay converts the FB0 orbital frequency (Hz) to a period in days.
const SecondsPerDay = 86400.0

// Sentinel errors for the transform's failure modes.
var (
	ErrMissingRange   = errors.New(messages.EpochMissingRange)
	ErrMissingPeriod  = errors.New(messages.EpochMissingPeriod)
	ErrAmbiguousModel = errors.New(messages.EpochAmbiguousModel)
	ErrMissingBinary  = errors.New(messages.EpochMissingBinary)
)

// Result describes one recentring.
type Result struct {
	// Field is the binary epoch parameter that was updated, T0 or TASC.
	Field string
	// LineIndex is the position of the field in the par file.
	LineIndex int
	// Old and New are the reference epoch before and after, in MJD.
	Old float64
	New float64
	// Orbits is the whole number of orbital cycles the epoch moved by.
	Orbits int64
	// Target is the epoch the recentring aimed at, in MJD.
	Target float64
	// Period is the orbital period used, in days.
	Period float64
}

// Changed reports whether the reference epoch actually moved.
func (r Result) Changed() bool {
	return r.Orbits != 0
}

// ResolveTarget returns the target epoch: the supplied value when given
// (target != nil), otherwise the midpoint of START and FINISH.
func ResolveTarget(file *par.File, target *float64) (float64, error) {
	if target != nil {
		return *target, nil
	}
	start, okStart, err := file.Float("START")
	if err != nil {
		return 0, err
	}
	finish, okFinish, err := file.Float("FINISH")
	if err != nil {
		return 0, err
	}
	if !okStart || !okFinish {
		return 0, ErrMissingRange
	}
	return (start + finish) / 2, nil
}

// ResolvePeriod returns the orbital period in days: PB when present,
// otherwise derived from the FB0 orbital frequency.
func ResolvePeriod(file *par.File) (float64, error) {
	pb, ok, err := file.Float("PB")
	if err != nil {
		return 0, err
	}
	if !ok {
		fb0, okFB, errFB := file.Float("FB0")
		if errFB != nil {
			return 0, errFB
		}
		if !okFB {
			return 0, ErrMissingPeriod
		}
		pb = 1 / fb0 / SecondsPerDay
	}
	if !(pb > 0) || math.IsInf(pb, 0) {
		return 0, fmt.Errorf(messages.EpochNonPositivePeriodFmt, strconv.FormatFloat(pb, 'g', -1, 64))
	}
	return pb, nil
}

// Recentre shifts the binary reference epoch of file to the orbital cycle
// nearest target and rewrites the field's value in place. The cycle count
// rounds half away from zero, so the new epoch is congruent to the old one
// modulo the period and within half a period of the target.
func Recentre(file *par.File, target float64) (Result, error) {
	hasT0 := file.Has("T0")
	hasTASC := file.Has("TASC")
	switch {
	case hasT0 && hasTASC:
		return Result{}, ErrAmbiguousModel
	case !hasT0 && !hasTASC:
		return Result{}, ErrMissingBinary
	}

	field := "T0"
	if hasTASC {
		field = "TASC"
	}
	old, _, err := file.Float(field)
	if err != nil {
		return Result{}, err
	}
	period, err := ResolvePeriod(file)
	if err != nil {
		return Result{}, err
	}

	orbits := math.Round((target - old) / period)
	updated := old + orbits*period

	idx := file.Index(field)
	file.SetValue(idx, updated)

	return Result{
		Field:     field,
		LineIndex: idx,
		Old:       old,
		New:       updated,
		Orbits:    int64(orbits),
		Target:    target,
		Period:    period,
	}, nil
}
