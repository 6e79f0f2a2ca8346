package ast

// Get resolves a cursor against the tree. It fails with a
// *NoSuchFieldError, *IndexOutOfBoundsError or *TypeMismatchError at the
// first step that cannot be taken; there are no partial results.
func (j *Json) Get(c Cursor) (*Json, error) {
	res := j
	for _, s := range c.steps {
		switch s.kind {
		case stepField:
			if res.Type != ObjectType {
				return nil, &TypeMismatchError{Expected: ObjectType, Actual: res.Type}
			}
			v := Get(res, s.field)
			if v == nil {
				return nil, &NoSuchFieldError{Field: s.field}
			}
			res = v
		case stepElement:
			if res.Type != ArrayType {
				return nil, &TypeMismatchError{Expected: ArrayType, Actual: res.Type}
			}
			if s.index < 0 || s.index >= len(res.Values) {
				return nil, &IndexOutOfBoundsError{Index: s.index, Len: len(res.Values)}
			}
			res = res.Values[s.index]
		case stepFilter:
			if res.Type != s.filter {
				return nil, &TypeMismatchError{Expected: s.filter, Actual: res.Type}
			}
		}
	}
	return res, nil
}

// Delete returns a new tree with the node at the cursor removed.
// Deleting the root collapses the whole value to Null. A type filter
// along the path that does not match acts as a guard: the original tree
// comes back unchanged rather than an error. Field and element steps
// that cannot be taken fail like Get.
func (j *Json) Delete(c Cursor) (*Json, error) {
	res, removed, err := deleteAt(j, c.steps)
	if err != nil {
		return nil, err
	}
	if removed {
		return Null(), nil
	}
	return res, nil
}

// deleteAt returns the rewritten node, or removed=true when the node
// itself is the deletion target and the caller must drop it.
func deleteAt(j *Json, steps []step) (*Json, bool, error) {
	if len(steps) == 0 {
		return nil, true, nil
	}
	s := steps[0]
	switch s.kind {
	case stepFilter:
		if j.Type != s.filter {
			// guard, not an assertion
			return j, false, nil
		}
		return deleteAt(j, steps[1:])
	case stepField:
		if j.Type != ObjectType {
			return nil, false, &TypeMismatchError{Expected: ObjectType, Actual: j.Type}
		}
		idx := -1
		for i, f := range j.Fields {
			if f == s.field {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, false, &NoSuchFieldError{Field: s.field}
		}
		child, removed, err := deleteAt(j.Values[idx], steps[1:])
		if err != nil {
			return nil, false, err
		}
		if !removed && child == j.Values[idx] {
			return j, false, nil
		}
		res := &Json{Type: ObjectType}
		if removed {
			res.Fields = make([]string, 0, len(j.Fields)-1)
			res.Values = make([]*Json, 0, len(j.Values)-1)
			for i := range j.Fields {
				if i == idx {
					continue
				}
				res.Fields = append(res.Fields, j.Fields[i])
				res.Values = append(res.Values, j.Values[i])
			}
			return res, false, nil
		}
		res.Fields = append([]string(nil), j.Fields...)
		res.Values = append([]*Json(nil), j.Values...)
		res.Values[idx] = child
		return res, false, nil
	case stepElement:
		if j.Type != ArrayType {
			return nil, false, &TypeMismatchError{Expected: ArrayType, Actual: j.Type}
		}
		if s.index < 0 || s.index >= len(j.Values) {
			return nil, false, &IndexOutOfBoundsError{Index: s.index, Len: len(j.Values)}
		}
		child, removed, err := deleteAt(j.Values[s.index], steps[1:])
		if err != nil {
			return nil, false, err
		}
		if !removed && child == j.Values[s.index] {
			return j, false, nil
		}
		if removed {
			vals := make([]*Json, 0, len(j.Values)-1)
			vals = append(vals, j.Values[:s.index]...)
			vals = append(vals, j.Values[s.index+1:]...)
			return &Json{Type: ArrayType, Values: vals}, false, nil
		}
		vals := append([]*Json(nil), j.Values...)
		vals[s.index] = child
		return &Json{Type: ArrayType, Values: vals}, false, nil
	}
	panic("step kind")
}

// FoldUp folds the tree post-order: every node's children are folded
// before the node itself, deepest first, left to right among siblings.
func FoldUp[A any](j *Json, seed A, f func(A, *Json) A) A {
	acc := seed
	for _, v := range j.Values {
		acc = FoldUp(v, acc, f)
	}
	return f(acc, j)
}

// FoldDown folds the tree pre-order: a node is visited before any of its
// children, root first.
func FoldDown[A any](j *Json, seed A, f func(A, *Json) A) A {
	acc := f(seed, j)
	for _, v := range j.Values {
		acc = FoldDown(v, acc, f)
	}
	return acc
}

// TransformDownWithCursor rewrites the tree top-down. At each node the
// rule sees the node together with the cursor locating it; when the rule
// fires, the node is replaced and recursion continues on the
// replacement's children with cursors recomputed accordingly.
func TransformDownWithCursor(j *Json, rule func(*Json, Cursor) (*Json, bool)) *Json {
	return transformDown(j, Identity(), rule)
}

func transformDown(j *Json, at Cursor, rule func(*Json, Cursor) (*Json, bool)) *Json {
	if rep, ok := rule(j, at); ok {
		j = rep
	}
	switch j.Type {
	case ObjectType:
		res := &Json{
			Type:   ObjectType,
			Fields: append([]string(nil), j.Fields...),
			Values: make([]*Json, len(j.Values)),
		}
		for i, v := range j.Values {
			res.Values[i] = transformDown(v, at.Field(j.Fields[i]), rule)
		}
		return res
	case ArrayType:
		res := &Json{
			Type:   ArrayType,
			Values: make([]*Json, len(j.Values)),
		}
		for i, v := range j.Values {
			res.Values[i] = transformDown(v, at.Element(i), rule)
		}
		return res
	}
	return j
}
