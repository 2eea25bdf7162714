package dial

// InputEvent is the change notification published after every commit.
type InputEvent struct {
	// Name is the form field name of the source widget.
	Name string
	// Value is the committed value; it equals the widget's Value() at
	// dispatch time.
	Value int
	// Seq increases by one per commit, starting at 1.
	Seq uint64
}

// Listener observes input events.
type Listener func(InputEvent)

type listenerEntry struct {
	id int
	fn Listener
}

// Node is an element in the host's tree. Events dispatched on a node are
// delivered to its own listeners first and then bubble to its ancestors.
type Node struct {
	parent    *Node
	listeners []listenerEntry
	nextID    int
}

// NewNode returns a detached node, typically used by a host as a form.
func NewNode() *Node { return &Node{} }

// Append attaches child under n, detaching it from any previous parent. It
// reports false and leaves the tree unchanged when child is nil or is n or
// one of n's ancestors.
func (n *Node) Append(child *Node) bool {
	if child == nil {
		return false
	}
	for cur := n; cur != nil; cur = cur.parent {
		if cur == child {
			return false
		}
	}
	child.parent = n
	return true
}

// Parent returns the node child is attached to, or nil.
func (n *Node) Parent() *Node { return n.parent }

// AddListener registers fn and returns a func that removes it. Calling the
// returned func more than once has no further effect.
func (n *Node) AddListener(fn Listener) (remove func()) {
	if fn == nil {
		return func() {}
	}
	n.nextID++
	id := n.nextID
	n.listeners = append(n.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range n.listeners {
			if l.id == id {
				n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers ev to n and each of its ancestors in turn.
func (n *Node) Dispatch(ev InputEvent) {
	for cur := n; cur != nil; cur = cur.parent {
		snapshot := cur.listeners
		for _, l := range snapshot {
			l.fn(ev)
		}
	}
}
