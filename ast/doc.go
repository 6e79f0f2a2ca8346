// Package ast provides the immutable JSON value tree, structural
// equality and hashing over it, and the cursor-based traversal engine
// (Get, Delete, folds, top-down transforms).
//
// Object equality ignores entry order: two objects are equal iff they
// hold the same multiset of (key, value) pairs. Array equality is
// positional. Hash is consistent with Equal in both cases.
package ast
