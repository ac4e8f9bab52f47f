package TreeMap

// A node in the TreeMap.
// A node is internal iff l != nil, and then r != nil as well. External nodes
// are childless leaves that stand for "no entry here"; their k and v are
// meaningless. The root sentinel is the only node with p == nil and l != nil.
// A node removed from its tree has every link set to nil.
type node[K, V any] struct {
	p, l, r *node[K, V]
	k       K
	v       V
}

func newSentinel[K, V any]() *node[K, V] {
	s := new(node[K, V])
	s.l, s.r = &node[K, V]{p: s}, &node[K, V]{p: s}
	return s
}

func (u *node[K, V]) internal() bool {
	return u.l != nil
}

func (u *node[K, V]) external() bool {
	return u.l == nil
}

func (u *node[K, V]) sentinel() bool {
	return u.p == nil && u.l != nil
}

func (u *node[K, V]) detached() bool {
	return u.p == nil && u.l == nil
}

// expand the external node u into an internal node holding k and v, giving it
// two fresh external children.
func (u *node[K, V]) expand(k K, v V) {
	u.k, u.v = k, v
	u.l, u.r = &node[K, V]{p: u}, &node[K, V]{p: u}
}

// replaceWith puts x into u's slot under u's parent. u's own links are left
// untouched.
func (u *node[K, V]) replaceWith(x *node[K, V]) {
	if g := u.p; g.l == u {
		g.l = x
	} else {
		g.r = x
	}
	x.p = u.p
}

// removeAboveExternal unlinks the external node u together with its parent,
// promoting u's sibling into the parent's former slot. The parent is returned
// with stale links; the caller either reuses or detaches it.
func (u *node[K, V]) removeAboveExternal() *node[K, V] {
	par := u.p
	sib := par.l
	if u == par.l {
		sib = par.r
	}
	par.replaceWith(sib)
	u.p = nil
	return par
}

func (u *node[K, V]) detach() {
	u.p, u.l, u.r = nil, nil, nil
}

// leftmost internal node of the subtree rooted at the internal node u.
func (u *node[K, V]) leftmost() *node[K, V] {
	for u.l.internal() {
		u = u.l
	}
	return u
}

// rightmost internal node of the subtree rooted at the internal node u.
func (u *node[K, V]) rightmost() *node[K, V] {
	for u.r.internal() {
		u = u.r
	}
	return u
}

// next node in in-order. The sentinel follows the maximum and precedes the
// minimum, so positions form a ring.
func (u *node[K, V]) next() *node[K, V] {
	if u.p == nil { // sentinel
		if u.l.internal() {
			return u.l.leftmost()
		}
		return u
	}
	if u.r.internal() {
		return u.r.leftmost()
	}
	for u == u.p.r {
		u = u.p
	}
	return u.p
}

// prev is the mirror of next.
func (u *node[K, V]) prev() *node[K, V] {
	if u.l.internal() {
		return u.l.rightmost()
	}
	for u.p != nil && u == u.p.l {
		u = u.p
	}
	if u.p == nil {
		return u
	}
	return u.p
}

// clone deep copies the subtree rooted at u and hangs it under p.
// Recursive.
func (u *node[K, V]) clone(p *node[K, V]) *node[K, V] {
	c := &node[K, V]{p: p, k: u.k, v: u.v}
	if u.internal() {
		c.l, c.r = u.l.clone(c), u.r.clone(c)
	}
	return c
}

func (u *node[K, V]) depth() int {
	if u.external() {
		return 0
	}
	return 1 + max(u.l.depth(), u.r.depth())
}
