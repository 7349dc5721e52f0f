package dbg

// Node is a single k-mer vertex of the de Bruijn graph
type Node struct {
	Kmer     []byte       // the k-mer this node represents
	Count    int          // times the k-mer was seen across all reads and their reverse complements
	Children map[int]bool // ids of nodes reachable via an observed (k+1)-mer overlap

	// transient traversal state, reset before every longest path query
	visited   bool
	depth     int
	bestChild int
}

// NewNode creates a node for a k-mer, copying the bases so the node does not alias the read buffer
func NewNode(kmer []byte) *Node {
	return &Node{
		Kmer:      append([]byte(nil), kmer...),
		Children:  make(map[int]bool),
		bestChild: -1,
	}
}

// AddChild records an outgoing arc to the given node id; repeated observations of the same arc collapse to one
func (node *Node) AddChild(id int) {
	node.Children[id] = true
}

// Increment bumps the occurrence count for the k-mer held by this node
func (node *Node) Increment() {
	node.Count++
}

// RemoveChildren strips the given node ids from the child set
func (node *Node) RemoveChildren(doomed map[int]bool) {
	for id := range doomed {
		delete(node.Children, id)
	}
}

// resetSearch returns the traversal state to its initial values
func (node *Node) resetSearch() {
	node.visited = false
	node.depth = 0
	node.bestChild = -1
}
