package state

import "github.com/atomicstack/tmux-emoji-popup/internal/catalog"

// Section is the run of entries for one group in the current result set.
type Section struct {
	Group   catalog.Group
	Entries []*catalog.Entry
}

// Len returns the number of entries in the section.
func (s Section) Len() int {
	return len(s.Entries)
}

// GroupEntries partitions entries into sections ordered by group. Relative
// order within a group follows the input, and empty groups are dropped.
func GroupEntries(entries []*catalog.Entry) []Section {
	if len(entries) == 0 {
		return nil
	}
	groups := catalog.Groups()
	buckets := make([][]*catalog.Entry, len(groups))
	for _, e := range entries {
		if e == nil || !e.Group.Valid() {
			continue
		}
		buckets[e.Group] = append(buckets[e.Group], e)
	}
	sections := make([]Section, 0, len(groups))
	for _, g := range groups {
		if len(buckets[g]) == 0 {
			continue
		}
		sections = append(sections, Section{Group: g, Entries: buckets[g]})
	}
	return sections
}

// CountEntries sums the entries across sections.
func CountEntries(sections []Section) int {
	total := 0
	for _, s := range sections {
		total += s.Len()
	}
	return total
}
