package ast

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Object entries are compared as a sorted multiset, so two objects with
// the same entries in different insertion order compare equal.
func Compare(a, b *Json) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.Str, b.Str)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Json) int {
	// Sub-rank: Int64 < Float64 < raw
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}

	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return strings.Compare(a.Number, b.Number)
}

func numberSubRank(n *Json) int {
	if n.Int64 != nil {
		return 0
	}
	if n.Float64 != nil {
		return 1
	}
	return 2
}

func compareArrays(a, b *Json) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Json) int {
	pa := sortedEntries(a)
	pb := sortedEntries(b)
	minLen := min(len(pa), len(pb))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Fields[pa[i]], b.Fields[pb[i]]); c != 0 {
			return c
		}
		if c := Compare(a.Values[pa[i]], b.Values[pb[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(pa), len(pb))
}

// Canonical returns a tree with every object's entries in sorted order,
// so structurally equal trees render to bit-identical text.
func Canonical(j *Json) *Json {
	switch j.Type {
	case ObjectType:
		idx := sortedEntries(j)
		res := &Json{
			Type:   ObjectType,
			Fields: make([]string, len(idx)),
			Values: make([]*Json, len(idx)),
		}
		for i, x := range idx {
			res.Fields[i] = j.Fields[x]
			res.Values[i] = Canonical(j.Values[x])
		}
		return res
	case ArrayType:
		res := &Json{
			Type:   ArrayType,
			Values: make([]*Json, len(j.Values)),
		}
		for i, v := range j.Values {
			res.Values[i] = Canonical(v)
		}
		return res
	}
	return j
}

// sortedEntries returns a permutation of the object's entry indices
// ordered by key, then by value. Duplicate keys are fine; their values
// order the ties.
func sortedEntries(j *Json) []int {
	idx := make([]int, len(j.Fields))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(x, y int) int {
		if c := strings.Compare(j.Fields[x], j.Fields[y]); c != 0 {
			return c
		}
		return Compare(j.Values[x], j.Values[y])
	})
	return idx
}
