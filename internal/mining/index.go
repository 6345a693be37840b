package mining

import (
	"sort"

	"github.com/Veraticus/market-basket/internal/model"
)

// itemIndex maps every item to the sorted list of transaction IDs that
// contain it. Candidate support is then the size of the k-way
// intersection of the candidate's posting lists, so no transaction is
// rescanned after the single indexing pass.
type itemIndex struct {
	postings map[string][]int
	total    int
}

func buildIndex(txns []model.Transaction) *itemIndex {
	idx := &itemIndex{
		postings: make(map[string][]int),
		total:    len(txns),
	}
	for _, txn := range txns {
		for _, item := range txn.Items {
			idx.postings[item] = append(idx.postings[item], txn.ID)
		}
	}
	// Transactions arrive in ID order, but sort defensively so the
	// intersection merge never depends on caller ordering.
	for item := range idx.postings {
		sort.Ints(idx.postings[item])
	}
	return idx
}

// supportCount returns how many transactions contain every item of the
// set. Lists are intersected rarest-first to keep the running result
// small.
func (idx *itemIndex) supportCount(set model.Itemset) int {
	items := set.Items()
	if len(items) == 0 {
		return 0
	}
	lists := make([][]int, 0, len(items))
	for _, item := range items {
		p, ok := idx.postings[item]
		if !ok {
			return 0
		}
		lists = append(lists, p)
	}
	sort.Slice(lists, func(i, j int) bool { return len(lists[i]) < len(lists[j]) })

	result := lists[0]
	for _, next := range lists[1:] {
		result = intersect(result, next)
		if len(result) == 0 {
			return 0
		}
	}
	return len(result)
}

func intersect(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// items returns the indexed item universe in sorted order.
func (idx *itemIndex) items() []string {
	out := make([]string, 0, len(idx.postings))
	for item := range idx.postings {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
