package willowpick

// UpdateCallback runs once per frame for the node it is attached to. dt is
// the frame time in seconds.
type UpdateCallback func(n *Node, dt float64)

// AddUpdateCallback appends cb to the node's update callbacks. Callbacks on
// one node run in the order they were added.
func (n *Node) AddUpdateCallback(cb UpdateCallback) {
	if cb == nil {
		return
	}
	n.updateCallbacks = append(n.updateCallbacks, cb)
}

// ClearUpdateCallbacks removes every update callback from the node.
func (n *Node) ClearUpdateCallbacks() {
	n.updateCallbacks = nil
}

// NumUpdateCallbacks returns the number of callbacks attached to the node.
func (n *Node) NumUpdateCallbacks() int {
	return len(n.updateCallbacks)
}

// runUpdateCallbacks walks the tree depth-first, parents before children,
// and returns how many nodes had callbacks. A callback may detach or dispose
// nodes; the walk iterates a copy of each child list and skips disposed
// nodes.
func runUpdateCallbacks(n *Node, dt float64) int {
	if n.disposed {
		return 0
	}
	count := 0
	if len(n.updateCallbacks) > 0 {
		count++
		for _, cb := range n.updateCallbacks {
			cb(n, dt)
			if n.disposed {
				return count
			}
		}
	}
	if len(n.children) == 0 {
		return count
	}
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	for _, child := range children {
		count += runUpdateCallbacks(child, dt)
	}
	return count
}
