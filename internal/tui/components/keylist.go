package components

import "github.com/alexisbeaulieu97/cascade/internal/responsive"

// KeyEntry is one expanded style key and whether its breakpoint is active.
type KeyEntry struct {
	Key        string
	Breakpoint string
	Active     bool
}

// KeyList pairs expanded keys with breakpoint activity, smallest breakpoint first.
type KeyList struct {
	entries []KeyEntry
}

// NewKeyList reads the breakpoint of every key from its suffix. Keys without
// a breakpoint suffix are listed as inactive.
func NewKeyList(keys []string, active responsive.ActiveMedia) KeyList {
	entries := make([]KeyEntry, 0, len(keys))
	for _, key := range keys {
		_, breakpoint, ok := responsive.ParseStyleKey(key)
		entries = append(entries, KeyEntry{Key: key, Breakpoint: breakpoint, Active: ok && active[breakpoint]})
	}
	return KeyList{entries: entries}
}

// Entries returns the ordered key entries.
func (k KeyList) Entries() []KeyEntry {
	clone := make([]KeyEntry, len(k.entries))
	copy(clone, k.entries)
	return clone
}

// ActiveCount returns the number of entries whose breakpoint is active.
func (k KeyList) ActiveCount() int {
	count := 0
	for _, e := range k.entries {
		if e.Active {
			count++
		}
	}
	return count
}
