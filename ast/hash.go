package ast

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is fixed per process so equal values hash equally within a
// run, which is all Hash promises.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash consistent with Equal: object entry order
// does not affect the result, array element order does. It panics if n
// is nil.
func (n *Json) Hash() uint64 {
	if n == nil {
		panic("ast: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Type))
	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		if n.Int64 != nil {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(*n.Int64))
			h.Write(b[:])
		} else if n.Float64 != nil {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(*n.Float64))
			h.Write(b[:])
		} else {
			h.WriteString(n.Number)
		}
	case StringType:
		h.WriteString(n.Str)
	case ArrayType:
		var b [8]byte
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		// Entry hashes combine by addition, which is commutative, so
		// any permutation of the same entries hashes the same.
		var sum uint64
		for i, f := range n.Fields {
			sum += entryHash(f, n.Values[i])
		}
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	}
	return h.Sum64()
}

func entryHash(key string, val *Json) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteString(key)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], val.Hash())
	h.Write(b[:])
	return h.Sum64()
}
