package core

import "sort"

// Interval is the parametric range along a ray during which the ray is
// inside a volumetric object
type Interval struct {
	TMin   float64
	TMax   float64
	Object VolumeObject
}

// IntervalList is the ordered result of one volume accelerator query.
// It is consumed once during raymarching and then discarded.
type IntervalList struct {
	intervals []Interval
	tmin      float64
	tmax      float64
}

// Push appends an interval, keeping the overall min/max range current
func (l *IntervalList) Push(interval Interval) {
	if len(l.intervals) == 0 || interval.TMin < l.tmin {
		l.tmin = interval.TMin
	}
	if len(l.intervals) == 0 || interval.TMax > l.tmax {
		l.tmax = interval.TMax
	}
	l.intervals = append(l.intervals, interval)
}

// Count returns the number of intervals
func (l *IntervalList) Count() int {
	return len(l.intervals)
}

// Intervals returns the intervals ordered by entry t
func (l *IntervalList) Intervals() []Interval {
	return l.intervals
}

// MinT returns the smallest entry t over all intervals
func (l *IntervalList) MinT() float64 {
	return l.tmin
}

// MaxT returns the largest exit t over all intervals
func (l *IntervalList) MaxT() float64 {
	return l.tmax
}

func (l *IntervalList) sortByEntry() {
	sort.SliceStable(l.intervals, func(i, j int) bool {
		return l.intervals[i].TMin < l.intervals[j].TMin
	})
}

// VolumeSet answers ray-interval queries by clipping the ray against each
// volume's bounds. The structure mirrors the surface accelerator's role
// with interval output instead of point hits.
type VolumeSet struct {
	volumes []VolumeObject
}

// NewVolumeSet creates a volume accelerator over the given volumes
func NewVolumeSet(volumes []VolumeObject) *VolumeSet {
	return &VolumeSet{volumes: volumes}
}

// Intersect collects the ray intervals overlapping each volume's bounds,
// ordered by entry t
func (v *VolumeSet) Intersect(ray Ray, time float64) (IntervalList, bool) {
	var list IntervalList

	for _, volume := range v.volumes {
		tmin, tmax, ok := volume.Bounds().HitInterval(ray, ray.TMin, ray.TMax)
		if !ok {
			continue
		}
		list.Push(Interval{TMin: tmin, TMax: tmax, Object: volume})
	}

	if list.Count() == 0 {
		return list, false
	}
	list.sortByEntry()
	return list, true
}
