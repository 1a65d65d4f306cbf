// This file is part of go-cmdoption.
//
// Copyright (C) 2019-2025  TianBo Timothy
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - builds an iterator from a slice to allow peeking
// for the next value.
//
// The iterator is the scan cursor: an explicit value threaded through the
// command line scan, so repeated scans share no state.
package sliceiterator

// Iterator - iterator data
type Iterator[T any] struct {
	data []T
	idx  int
}

// New - builds an Iterator over the given slice.
func New[T any](data []T) *Iterator[T] {
	return &Iterator[T]{data: data, idx: -1}
}

// Size - returns Iterator size.
func (a *Iterator[T]) Size() int {
	return len(a.data)
}

// Index - return current index.
func (a *Iterator[T]) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is
// another value.
func (a *Iterator[T]) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// ExistsNext - tells if there is more data to be read.
func (a *Iterator[T]) ExistsNext() bool {
	return a.idx+1 < len(a.data)
}

// Value - returns the value at the current index, or the zero value before
// the first Next call and after the list is fully read.
func (a *Iterator[T]) Value() T {
	if a.idx < 0 || a.idx >= len(a.data) {
		var zero T
		return zero
	}
	return a.data[a.idx]
}

// PeekNext - returns the next value and indicates whether or not it is valid.
func (a *Iterator[T]) PeekNext() (T, bool) {
	if a.idx+1 >= len(a.data) {
		var zero T
		return zero, false
	}
	return a.data[a.idx+1], true
}

// Reset - resets the index of the Iterator.
func (a *Iterator[T]) Reset() {
	a.idx = -1
}
