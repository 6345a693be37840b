package mining

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Veraticus/market-basket/internal/model"
)

// MinedLevels lists the itemset sizes the generator produces, in mining
// order. Level 4 is intentionally absent: 5-item candidates are joined
// directly from frequent 3-itemsets sharing exactly one item, which
// changes the reachable 5-itemsets relative to canonical Apriori and is
// preserved as-is.
var MinedLevels = []int{1, 2, 3, 5}

// ItemsetSupport pairs a frequent itemset with its support count and
// support ratio.
type ItemsetSupport struct {
	Set     model.Itemset
	Support float64
	Count   int
}

// Level maps canonical itemset keys to support records for one itemset
// size.
type Level map[string]ItemsetSupport

// Itemsets returns the level's itemsets sorted by key, for deterministic
// iteration.
func (l Level) Itemsets() []ItemsetSupport {
	out := make([]ItemsetSupport, 0, len(l))
	for _, rec := range l {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Set.Key() < out[j].Set.Key() })
	return out
}

// Result holds every frequent itemset discovered at each mined level.
// Lower-level supports are retained because rule scoring needs them as
// denominators.
type Result struct {
	Levels            map[int]Level
	TotalTransactions int
}

// Level returns the frequent itemsets of the given size. Missing levels
// read as empty.
func (r *Result) Level(k int) Level {
	if l, ok := r.Levels[k]; ok {
		return l
	}
	return Level{}
}

// Count returns the number of frequent itemsets at the given level.
func (r *Result) Count(k int) int {
	return len(r.Levels[k])
}

// ProgressFunc observes candidate support counting: level is the itemset
// size being counted, done/total the candidates processed so far.
type ProgressFunc func(level, done, total int)

// Option configures a Generator.
type Option func(*Generator)

// WithProgress attaches a progress observer to the generator.
func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) {
		g.progress = fn
	}
}

// Generator mines frequent itemsets level by level. A Generator is
// stateless across runs; Mine may be called repeatedly and yields
// identical results for identical inputs.
type Generator struct {
	progress ProgressFunc
	cfg      Config
}

// NewGenerator creates a generator with the given thresholds.
func NewGenerator(cfg Config, opts ...Option) *Generator {
	g := &Generator{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Mine runs the level-wise pass over the transactions. An empty level
// short-circuits every later level to empty rather than failing: strict
// thresholds legitimately produce zero survivors. The only errors are
// invalid thresholds and context cancellation.
func (g *Generator) Mine(ctx context.Context, txns []model.Transaction) (*Result, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Levels:            make(map[int]Level, len(MinedLevels)),
		TotalTransactions: len(txns),
	}
	idx := buildIndex(txns)

	slog.Info("Starting itemset mining",
		"transactions", len(txns),
		"unique_items", len(idx.postings),
		"min_support", g.cfg.MinSupport)

	level1, err := g.mineSingletons(ctx, idx)
	if err != nil {
		return nil, err
	}
	result.Levels[1] = level1

	prev := level1
	for _, k := range MinedLevels[1:] {
		if len(prev) == 0 {
			// Nothing to join; all remaining levels are empty.
			result.Levels[k] = Level{}
			slog.Info("No frequent itemsets at level, short-circuiting", "level", k)
			prev = result.Levels[k]
			continue
		}

		var candidates []model.Itemset
		if k == 2 {
			candidates = pairCandidates(level1)
		} else {
			// k=3 joins 2-itemsets, k=5 joins 3-itemsets; either way
			// the parents share exactly one item.
			candidates = joinCandidates(prev, k)
		}

		level, err := g.countCandidates(ctx, idx, candidates, k)
		if err != nil {
			return nil, err
		}
		result.Levels[k] = level
		slog.Info("Mined level",
			"level", k,
			"candidates", len(candidates),
			"frequent", len(level))
		prev = level
	}

	return result, nil
}

// mineSingletons counts every item straight off its posting list.
func (g *Generator) mineSingletons(ctx context.Context, idx *itemIndex) (Level, error) {
	level := Level{}
	if idx.total == 0 {
		return level, nil
	}
	for _, item := range idx.items() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("mining canceled: %w", err)
		}
		count := len(idx.postings[item])
		ratio := float64(count) / float64(idx.total)
		if ratio >= g.cfg.MinSupport {
			set := model.NewItemset(item)
			level[set.Key()] = ItemsetSupport{Set: set, Count: count, Support: ratio}
		}
	}
	slog.Info("Mined level", "level", 1, "candidates", len(idx.postings), "frequent", len(level))
	return level, nil
}

// pairCandidates emits every 2-combination of the frequent singletons.
// Any pair containing an infrequent item was already pruned away by
// anti-monotonicity.
func pairCandidates(level1 Level) []model.Itemset {
	items := make([]string, 0, len(level1))
	for _, rec := range level1 {
		items = append(items, rec.Set.Items()...)
	}
	sort.Strings(items)

	candidates := make([]model.Itemset, 0, len(items)*(len(items)-1)/2)
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			candidates = append(candidates, model.NewItemset(items[i], items[j]))
		}
	}
	return candidates
}

// joinCandidates joins every pair of frequent (k-1 or k-2)-itemsets that
// share exactly one item and whose union has the target size,
// deduplicating unions reachable through multiple joins.
func joinCandidates(prev Level, targetSize int) []model.Itemset {
	entries := prev.Itemsets()
	seen := make(map[string]struct{})
	var candidates []model.Itemset

	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[i].Set.SharedCount(entries[j].Set) != 1 {
				continue
			}
			union := entries[i].Set.Union(entries[j].Set)
			if union.Len() != targetSize {
				continue
			}
			key := union.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			candidates = append(candidates, union)
		}
	}
	return candidates
}

// countCandidates computes support for each candidate via posting-list
// intersection and keeps those meeting the threshold.
func (g *Generator) countCandidates(ctx context.Context, idx *itemIndex, candidates []model.Itemset, level int) (Level, error) {
	out := Level{}
	if idx.total == 0 {
		return out, nil
	}
	for i, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("mining canceled at level %d: %w", level, err)
		}
		count := idx.supportCount(candidate)
		ratio := float64(count) / float64(idx.total)
		if ratio >= g.cfg.MinSupport {
			out[candidate.Key()] = ItemsetSupport{Set: candidate, Count: count, Support: ratio}
		}
		if g.progress != nil {
			g.progress(level, i+1, len(candidates))
		}
	}
	return out, nil
}
