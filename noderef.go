package willowpick

import "weak"

// NodeRef is a non-owning handle to a Node. It does not keep the node alive
// and reports it as gone once the node is disposed or collected. Always call
// Get before touching the referent.
//
// The zero value refers to nothing.
type NodeRef struct {
	ptr weak.Pointer[Node]
}

// Ref returns a NodeRef to n. Ref(nil) returns the zero NodeRef.
func Ref(n *Node) NodeRef {
	if n == nil {
		return NodeRef{}
	}
	return NodeRef{ptr: weak.Make(n)}
}

// Get returns the referenced node, or nil if it has been disposed or
// collected.
func (r NodeRef) Get() *Node {
	n := r.ptr.Value()
	if n == nil || n.disposed {
		return nil
	}
	return n
}

// Valid reports whether the referenced node is still live.
func (r NodeRef) Valid() bool {
	return r.Get() != nil
}

// Is reports whether r refers to n. A stale reference is never equal to a
// live node.
func (r NodeRef) Is(n *Node) bool {
	return n != nil && r.Get() == n
}
