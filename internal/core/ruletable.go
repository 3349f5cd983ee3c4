package core

import (
	"iter"
	"slices"
)

type entry struct {
	rule Rule
	seq  uint64
}

// RuleTable is a partial function from input blocks to output blocks.
//
// With horizontal symmetry enabled only one entry is kept per mirror orbit,
// stored under the orbit's canonical key in the orientation it was written.
// Lookups of the other orbit member are answered by mirroring that entry.
type RuleTable struct {
	sym     Symmetry
	entries map[Block]entry
	seq     uint64
}

// NewRuleTable returns an empty table using the given symmetry policy.
func NewRuleTable(sym Symmetry) *RuleTable {
	return &RuleTable{sym: sym, entries: make(map[Block]entry)}
}

// Symmetry returns the active symmetry policy.
func (t *RuleTable) Symmetry() Symmetry { return t.sym }

// Len returns the number of stored entries.
func (t *RuleTable) Len() int { return len(t.entries) }

func (t *RuleTable) key(b Block) Block {
	if t.sym.Horizontal {
		return CanonicalKey(b)
	}
	return b
}

// Set maps in to out, replacing whatever in resolved to before. When the
// orbit already held a rule written for the mirrored input and that rule
// implied a different output for in, the write still wins and the
// disagreement is returned.
func (t *RuleTable) Set(in, out Block) *SymmetryConflict {
	t.seq++
	return t.put(Rule{Input: in, Output: out}, t.seq)
}

func (t *RuleTable) put(r Rule, seq uint64) *SymmetryConflict {
	k := t.key(r.Input)
	var conflict *SymmetryConflict
	if prev, ok := t.entries[k]; ok && prev.rule.Input != r.Input {
		if implied := Mirror(prev.rule.Output); implied != r.Output {
			conflict = &SymmetryConflict{Input: r.Input, Existing: implied, Incoming: r.Output}
		}
	}
	t.entries[k] = entry{rule: r, seq: seq}
	return conflict
}

// Remove deletes the rule for in. Under symmetry the whole orbit goes.
func (t *RuleTable) Remove(in Block) {
	delete(t.entries, t.key(in))
}

// Lookup returns the output in maps to.
func (t *RuleTable) Lookup(in Block) (Block, bool) {
	e, ok := t.entries[t.key(in)]
	if !ok {
		return Block{}, false
	}
	if e.rule.Input == in {
		return e.rule.Output, true
	}
	// Same orbit, opposite orientation.
	return Mirror(e.rule.Output), true
}

// All yields every stored entry once in the orientation it was written.
// Order is unspecified.
func (t *RuleTable) All() iter.Seq2[Block, Block] {
	return func(yield func(Block, Block) bool) {
		for _, e := range t.entries {
			if !yield(e.rule.Input, e.rule.Output) {
				return
			}
		}
	}
}

// Expanded yields every input the table resolves, including the mirrored
// counterparts implied by symmetry.
func (t *RuleTable) Expanded() iter.Seq2[Block, Block] {
	return func(yield func(Block, Block) bool) {
		for _, e := range t.entries {
			if !yield(e.rule.Input, e.rule.Output) {
				return
			}
			if !t.sym.Horizontal || SelfMirrored(e.rule.Input) {
				continue
			}
			if !yield(Mirror(e.rule.Input), Mirror(e.rule.Output)) {
				return
			}
		}
	}
}

// Rules returns the stored entries sorted by input.
func (t *RuleTable) Rules() []Rule {
	rules := make([]Rule, 0, len(t.entries))
	for in, out := range t.All() {
		rules = append(rules, Rule{Input: in, Output: out})
	}
	sortRules(rules)
	return rules
}

// SetSymmetry switches the policy and re-keys the stored entries. Entries
// that collapse into one orbit are merged oldest first, so the most recently
// written rule survives; every disagreement found on the way is returned.
func (t *RuleTable) SetSymmetry(sym Symmetry) []SymmetryConflict {
	if sym == t.sym {
		return nil
	}
	old := t.ordered()
	t.sym = sym
	t.entries = make(map[Block]entry, len(old))
	var conflicts []SymmetryConflict
	for _, e := range old {
		if c := t.put(e.rule, e.seq); c != nil {
			conflicts = append(conflicts, *c)
		}
	}
	return conflicts
}

// Retain rewrites every entry through fn, dropping those for which fn
// reports false. Dropped rules are returned sorted by input.
func (t *RuleTable) Retain(fn func(Rule) (Rule, bool)) []Rule {
	old := t.ordered()
	t.entries = make(map[Block]entry, len(old))
	var dropped []Rule
	for _, e := range old {
		r, keep := fn(e.rule)
		if !keep {
			dropped = append(dropped, e.rule)
			continue
		}
		t.put(r, e.seq)
	}
	sortRules(dropped)
	return dropped
}

// Clone returns an independent copy of the table.
func (t *RuleTable) Clone() *RuleTable {
	c := &RuleTable{sym: t.sym, seq: t.seq, entries: make(map[Block]entry, len(t.entries))}
	for k, e := range t.entries {
		c.entries[k] = e
	}
	return c
}

func (t *RuleTable) ordered() []entry {
	out := make([]entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b entry) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	return out
}

func sortRules(rules []Rule) {
	slices.SortFunc(rules, func(a, b Rule) int {
		if c := a.Input.Compare(b.Input); c != 0 {
			return c
		}
		return a.Output.Compare(b.Output)
	})
}
