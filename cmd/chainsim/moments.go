package main

import "math"

// moments accumulates running sample moments with Welford's update,
// mergeable across workers.
type moments struct {
	Count int64
	mean  float64
	m2    float64
}

// Push adds one observation.
func (m *moments) Push(v float64) {
	m.Count++
	delta := v - m.mean
	m.mean += delta / float64(m.Count)
	m.m2 += delta * (v - m.mean)
}

// Merge folds another accumulator into this one.
func (m *moments) Merge(o *moments) {
	if o.Count == 0 {
		return
	}
	if m.Count == 0 {
		*m = *o
		return
	}
	n := m.Count + o.Count
	delta := o.mean - m.mean
	m.mean += delta * float64(o.Count) / float64(n)
	m.m2 += o.m2 + delta*delta*float64(m.Count)*float64(o.Count)/float64(n)
	m.Count = n
}

// Mean returns the sample mean.
func (m *moments) Mean() float64 { return m.mean }

// StdDev returns the sample standard deviation.
func (m *moments) StdDev() float64 {
	if m.Count < 2 {
		return 0
	}
	return math.Sqrt(m.m2 / float64(m.Count-1))
}
