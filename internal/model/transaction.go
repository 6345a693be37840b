package model

// Transaction represents a single basket: the distinct items purchased
// together. Items are normalized (lower-cased, trimmed) and deduplicated
// at load time; the slice is kept sorted so transactions compare and
// serialize deterministically. The ID is the position in the loaded
// dataset and is used only for support counting.
type Transaction struct {
	Items []string
	ID    int
}

// Contains reports whether the transaction includes the named item.
func (t *Transaction) Contains(item string) bool {
	for _, it := range t.Items {
		if it == item {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every item of the itemset appears in the
// transaction.
func (t *Transaction) ContainsAll(set Itemset) bool {
	for _, item := range set.Items() {
		if !t.Contains(item) {
			return false
		}
	}
	return true
}

// Size returns the number of distinct items in the transaction.
func (t *Transaction) Size() int {
	return len(t.Items)
}
