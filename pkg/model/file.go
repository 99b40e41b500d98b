package model

// FileNode is one entry of a project's packaged file tree. A directory
// carries Children and a Size equal to the sum of descendant sizes; the
// sum is maintained by whoever constructs the tree, not recomputed here.
type FileNode struct {
	ID          string      `json:"id"` // unique within a project, stable across merges
	Name        string      `json:"name"`
	Path        string      `json:"path"` // relative, forward-slash separated
	Size        int64       `json:"size"`
	Type        string      `json:"type"`
	IsDirectory bool        `json:"isDirectory"`
	Children    []*FileNode `json:"children,omitempty"`

	Excluded  bool     `json:"excluded,omitempty"`
	Version   string   `json:"version,omitempty"`
	DependsOn []string `json:"dependsOn,omitempty"`
	Category  string   `json:"category,omitempty"`
	Encrypted bool     `json:"encrypted,omitempty"`
}

// Walk visits node and every descendant in depth-first order.
func (node *FileNode) Walk(visit func(*FileNode)) {
	visit(node)
	for _, child := range node.Children {
		child.Walk(visit)
	}
}

// MergeFileNodes unions existing and incoming top-level nodes: an incoming
// node whose ID is already present is dropped, existing wins. The relative
// order of existing nodes and of genuinely new nodes is preserved.
func MergeFileNodes(existing, incoming []*FileNode) []*FileNode {
	seen := make(map[string]struct{}, len(existing))
	for _, node := range existing {
		seen[node.ID] = struct{}{}
	}

	merged := append([]*FileNode{}, existing...)
	for _, node := range incoming {
		if _, ok := seen[node.ID]; ok {
			continue
		}
		seen[node.ID] = struct{}{}
		merged = append(merged, node)
	}
	return merged
}

// RemoveFileNode filters the top-level node with the given ID. Nested nodes
// are not inspected. The second result reports whether a node was removed.
func RemoveFileNode(nodes []*FileNode, fileID string) ([]*FileNode, bool) {
	filtered := make([]*FileNode, 0, len(nodes))
	removed := false
	for _, node := range nodes {
		if node.ID == fileID {
			removed = true
			continue
		}
		filtered = append(filtered, node)
	}
	return filtered, removed
}
