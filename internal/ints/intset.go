// Package ints implements a compact set of non-negative integers.
// Schemes use it for alphabet character sets and for rule index sets.
package ints

const ChunkSizeShift = 5 + (^uint(0) >> 32 & 1)
const ChunkSize = 1 << ChunkSizeShift

// Set is a bit set covering [lowItem, highItem) with lowItem and highItem aligned to ChunkSize.
// Zero value is an empty set ready to use.
type Set struct {
	lowItem, highItem int
	chunks            []uint
}

func baseItem(item int) int {
	return item & ^(ChunkSize - 1)
}

func bitMask(item int) uint {
	return 1 << (uint(item) & (ChunkSize - 1))
}

func (s *Set) chunkIndex(item int) int {
	return (item - s.lowItem) >> ChunkSizeShift
}

func (s *Set) allocate(low, high int) {
	lowItem := baseItem(low)
	highItem := baseItem(high) + ChunkSize
	if len(s.chunks) != 0 {
		if lowItem >= s.lowItem && highItem <= s.highItem {
			return
		}

		if lowItem > s.lowItem {
			lowItem = s.lowItem
		}
		if highItem < s.highItem {
			highItem = s.highItem
		}
	}

	chunks := make([]uint, (highItem-lowItem)>>ChunkSizeShift)
	if len(s.chunks) != 0 {
		copy(chunks[(s.lowItem-lowItem)>>ChunkSizeShift:], s.chunks)
	}
	s.chunks = chunks
	s.lowItem = lowItem
	s.highItem = highItem
}

func minMax(items []int) (min, max int) {
	min = items[0]
	max = items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
		if item > max {
			max = item
		}
	}
	return
}

// Add inserts items, negative items are ignored.
func (s *Set) Add(items ...int) *Set {
	if len(items) == 0 {
		return s
	}

	min, max := minMax(items)
	if max < 0 {
		return s
	}
	if min < 0 {
		min = 0
	}

	s.allocate(min, max)
	for _, item := range items {
		if item < 0 {
			continue
		}

		i := s.chunkIndex(item)
		s.chunks[i] |= bitMask(item)
	}
	return s
}

// Insert adds a single item and reports whether it was not in the set before.
func (s *Set) Insert(item int) bool {
	if item < 0 || s.Contains(item) {
		return false
	}

	s.Add(item)
	return true
}

func (s *Set) Contains(item int) bool {
	if item < s.lowItem || item >= s.highItem {
		return false
	}

	return s.chunks[s.chunkIndex(item)]&bitMask(item) != 0
}
