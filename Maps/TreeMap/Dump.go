package TreeMap

import (
	"fmt"

	"github.com/xlab/treeprint"
)

const externalLabel = "·"

// Dump renders the shape of the tree, external leaves included. Left
// children are listed before right children.
func (u *TreeMap[K, V]) Dump() string {
	t := treeprint.NewWithRoot(fmt.Sprintf("TreeMap(%d)", u.sz))
	dump(t, u.root.l)
	return t.String()
}

func dump[K, V any](t treeprint.Tree, n *node[K, V]) {
	if n.external() {
		t.AddNode(externalLabel)
		return
	}
	b := t.AddBranch(fmt.Sprintf("%v: %v", n.k, n.v))
	dump(b, n.l)
	dump(b, n.r)
}
