// Package model defines the core domain types for market-basket mining:
// transactions, itemsets, and association rules.
package model

import (
	"sort"
	"strings"
)

// keySeparator joins item names into a canonical map key. Items are split
// on commas at load time, so the unit separator can never appear in a name.
const keySeparator = "\x1f"

// Itemset is an immutable, order-independent set of item names. Equality
// is set equality: two itemsets built from the same items in any order
// produce identical keys. The zero value is the empty itemset.
type Itemset struct {
	items []string // sorted, deduplicated
}

// NewItemset builds an itemset from the given items, deduplicating and
// sorting them into canonical order.
func NewItemset(items ...string) Itemset {
	sorted := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		sorted = append(sorted, item)
	}
	sort.Strings(sorted)
	return Itemset{items: sorted}
}

// ItemsetFromKey reverses Key, rebuilding the itemset from its canonical
// string form.
func ItemsetFromKey(key string) Itemset {
	if key == "" {
		return Itemset{}
	}
	return Itemset{items: strings.Split(key, keySeparator)}
}

// Key returns the canonical string form of the itemset, suitable as a map
// key with set semantics.
func (s Itemset) Key() string {
	return strings.Join(s.items, keySeparator)
}

// Items returns the items in sorted order. The returned slice is a copy.
func (s Itemset) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items in the set.
func (s Itemset) Len() int {
	return len(s.items)
}

// Contains reports whether the item is a member of the set.
func (s Itemset) Contains(item string) bool {
	i := sort.SearchStrings(s.items, item)
	return i < len(s.items) && s.items[i] == item
}

// SharedCount returns the number of items the two sets have in common.
// Both slices are sorted, so a single merge pass suffices.
func (s Itemset) SharedCount(other Itemset) int {
	shared, i, j := 0, 0, 0
	for i < len(s.items) && j < len(other.items) {
		switch {
		case s.items[i] == other.items[j]:
			shared++
			i++
			j++
		case s.items[i] < other.items[j]:
			i++
		default:
			j++
		}
	}
	return shared
}

// Union returns a new itemset containing every item from both sets.
func (s Itemset) Union(other Itemset) Itemset {
	merged := make([]string, 0, len(s.items)+len(other.items))
	merged = append(merged, s.items...)
	merged = append(merged, other.items...)
	return NewItemset(merged...)
}

// Difference returns the items of s that are not in other.
func (s Itemset) Difference(other Itemset) Itemset {
	remaining := make([]string, 0, len(s.items))
	for _, item := range s.items {
		if !other.Contains(item) {
			remaining = append(remaining, item)
		}
	}
	return Itemset{items: remaining}
}

// Subsets enumerates every distinct k-subset of the itemset in
// lexicographic order. It returns nil when k is out of range.
func (s Itemset) Subsets(k int) []Itemset {
	if k <= 0 || k > len(s.items) {
		return nil
	}
	var out []Itemset
	pick := make([]string, 0, k)
	var walk func(start int)
	walk = func(start int) {
		if len(pick) == k {
			chosen := make([]string, k)
			copy(chosen, pick)
			out = append(out, Itemset{items: chosen})
			return
		}
		for i := start; i <= len(s.items)-(k-len(pick)); i++ {
			pick = append(pick, s.items[i])
			walk(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	walk(0)
	return out
}

// String renders the itemset as a human-readable list, e.g. {milk, bread}.
func (s Itemset) String() string {
	return "{" + strings.Join(s.items, ", ") + "}"
}
