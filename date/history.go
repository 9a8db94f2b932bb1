package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, each associated with a
// calendar day. Days are unique and the series is kept sorted on insert.
type History[T any] struct {
	days   []Date
	values []T
}

// Len returns the number of points in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Latest returns the most recent day and value, or zero values when empty.
func (h *History[T]) Latest() (Date, T) {
	if len(h.days) == 0 {
		var zero T
		return Date{}, zero
	}
	last := len(h.days) - 1
	return h.days[last], h.values[last]
}

// search locates day in the sorted day index.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}

// Append records a value for a day, replacing any existing value on that day.
func (h *History[T]) Append(day Date, v T) *History[T] {
	i, found := h.search(day)
	if found {
		h.values[i] = v
		return h
	}
	h.days = slices.Insert(h.days, i, day)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// Get returns the value recorded exactly on day.
func (h *History[T]) Get(day Date) (T, bool) {
	if i, found := h.search(day); found {
		return h.values[i], true
	}
	var zero T
	return zero, false
}

// ValueAsOf returns the value on day, or the most recent value before it.
// It reports false when the history holds nothing on or before day.
func (h *History[T]) ValueAsOf(day Date) (T, bool) {
	i, found := h.search(day)
	if found {
		return h.values[i], true
	}
	if i == 0 {
		var zero T
		return zero, false
	}
	return h.values[i-1], true
}

// Values iterates all day/value pairs in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, day := range h.days {
			if !yield(day, h.values[i]) {
				return
			}
		}
	}
}
