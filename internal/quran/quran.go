// Package quran holds the static page geography of the standard 604-page Uthmani mushaf.
package quran

import "fmt"

// TotalPages is the number of pages in the mushaf.
const TotalPages = 604

// JuzCount is the number of Juz sections.
const JuzCount = 30

// PageRange is an inclusive range of pages.
type PageRange struct {
	Start int
	End   int
}

// Len returns the number of pages in the range.
func (r PageRange) Len() int {
	return r.End - r.Start + 1
}

// Contains reports whether page falls inside the range.
func (r PageRange) Contains(page int) bool {
	return page >= r.Start && page <= r.End
}

// juzRanges partitions pages 1..604 into 30 contiguous sections.
var juzRanges = [JuzCount]PageRange{
	{1, 21}, {22, 41}, {42, 61}, {62, 81}, {82, 101},
	{102, 121}, {122, 141}, {142, 162}, {163, 181}, {182, 201},
	{202, 221}, {222, 241}, {242, 261}, {262, 281}, {282, 301},
	{302, 321}, {322, 341}, {342, 361}, {362, 381}, {382, 401},
	{402, 421}, {422, 441}, {442, 461}, {462, 481}, {482, 501},
	{502, 521}, {522, 541}, {542, 561}, {562, 581}, {582, 604},
}

// ValidPage reports whether page is within 1..TotalPages.
func ValidPage(page int) bool {
	return page >= 1 && page <= TotalPages
}

// JuzRange returns the page range of the 1-based Juz number.
func JuzRange(juz int) (PageRange, error) {
	if juz < 1 || juz > JuzCount {
		return PageRange{}, fmt.Errorf("juz %d is out of range 1-%d", juz, JuzCount)
	}
	return juzRanges[juz-1], nil
}

// JuzRanges returns a copy of the full Juz table, indexed by Juz number - 1.
func JuzRanges() []PageRange {
	ranges := make([]PageRange, JuzCount)
	copy(ranges, juzRanges[:])
	return ranges
}

// JuzOfPage returns the 1-based Juz containing page, or 0 for an invalid page.
func JuzOfPage(page int) int {
	for i, r := range juzRanges {
		if r.Contains(page) {
			return i + 1
		}
	}
	return 0
}
