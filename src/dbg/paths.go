package dbg

import "sort"

// searchFrame tracks one node on the explicit traversal stack used by the longest path search
type searchFrame struct {
	id       int
	children []int
	next     int
}

// resetSearch clears the traversal state of every live node before a new longest path query
func (graph *Graph) resetSearch() {
	for _, node := range graph.Nodes {
		if node != nil {
			node.resetSearch()
		}
	}
}

// sortedChildren returns a node's children ordered by descending occurrence count, ties broken by ascending id
func (graph *Graph) sortedChildren(id int) []int {
	node := graph.Nodes[id]
	children := make([]int, 0, len(node.Children))
	for child := range node.Children {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool {
		countI, countJ := graph.Nodes[children[i]].Count, graph.Nodes[children[j]].Count
		if countI != countJ {
			return countI > countJ
		}
		return children[i] < children[j]
	})
	return children
}

// getDepth computes the longest forward path length from the given node, memoising the result in the node's traversal state
//
// the search runs on a heap allocated frame stack rather than native recursion, as path depth can
// reach millions of nodes for genomic inputs. a node is marked visited before its children are
// explored; a child met again while still on the active stack contributes its unfinalised depth of
// 0, which acts as a cycle-breaking lower bound rather than a true longest path through the cycle
func (graph *Graph) getDepth(id int) int {
	if graph.Nodes[id].visited {
		return graph.Nodes[id].depth
	}
	graph.Nodes[id].visited = true
	stack := []*searchFrame{{id: id, children: graph.sortedChildren(id)}}
	for len(stack) != 0 {
		frame := stack[len(stack)-1]
		// descend into the first unvisited child
		descended := false
		for frame.next < len(frame.children) {
			child := frame.children[frame.next]
			frame.next++
			if !graph.Nodes[child].visited {
				graph.Nodes[child].visited = true
				stack = append(stack, &searchFrame{id: child, children: graph.sortedChildren(child)})
				descended = true
				break
			}
		}
		if descended {
			continue
		}
		// every child is resolved (or cached) - finalise this node
		// the first child reaching the maximum depth, in count-descending order, becomes the chosen successor
		maxDepth, maxChild := 0, -1
		for _, child := range frame.children {
			if depth := graph.Nodes[child].depth; depth > maxDepth {
				maxDepth, maxChild = depth, child
			}
		}
		graph.Nodes[frame.id].depth, graph.Nodes[frame.id].bestChild = maxDepth+1, maxChild
		stack = stack[:len(stack)-1]
	}
	return graph.Nodes[id].depth
}

// LongestPath resets the traversal state, evaluates every live node and returns the node ids of
// the longest forward path in the graph, from root to tip; an empty graph yields an empty path
func (graph *Graph) LongestPath() []int {
	graph.resetSearch()
	maxDepth, maxID := 0, -1
	for id, node := range graph.Nodes {
		if node == nil {
			continue
		}
		if depth := graph.getDepth(id); depth > maxDepth {
			maxDepth, maxID = depth, id
		}
	}
	path := []int{}
	for maxID != -1 {
		path = append(path, maxID)
		maxID = graph.Nodes[maxID].bestChild
	}
	return path
}

// ConcatPath builds the contig for a path of overlapping k-mers: the first full k-mer followed by
// the trailing base of each subsequent k-mer (consecutive path nodes overlap in k-1 bases)
func (graph *Graph) ConcatPath(path []int) []byte {
	if len(path) < 1 {
		return []byte{}
	}
	contig := append([]byte(nil), graph.Nodes[path[0]].Kmer...)
	for i := 1; i < len(path); i++ {
		kmer := graph.Nodes[path[i]].Kmer
		contig = append(contig, kmer[len(kmer)-1])
	}
	return contig
}

// DeletePath removes every node in the path from the graph
func (graph *Graph) DeletePath(path []int) {
	graph.RemoveNodes(path)
}

// NextContig extracts the longest remaining contig and contracts the graph
// once the graph is empty it returns an empty contig, signalling the caller to stop
func (graph *Graph) NextContig() []byte {
	path := graph.LongestPath()
	contig := graph.ConcatPath(path)
	graph.DeletePath(path)
	return contig
}
