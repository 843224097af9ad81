package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a tree in depth-first order, visiting pattern terms
// before replacement terms.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case Quote:
		for _, t := range n {
			Walk(t, v)
		}

	case Terms:
		for _, t := range n {
			Walk(t, v)
		}

	case Rule:
		for _, t := range n.Pattern {
			Walk(t, v)
		}
		for _, t := range n.Replacement {
			Walk(t, v)
		}

	case Rules:
		for _, r := range n {
			Walk(r, v)
		}
	}
}

// Words returns the words of node in the order Walk visits them.
func Words(node Node) []Word {
	var words []Word
	Walk(node, func(n Node) bool {
		if w, ok := n.(Word); ok {
			words = append(words, w)
		}
		return true
	})
	return words
}
