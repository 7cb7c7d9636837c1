package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TreeNode is one row of a decision-tree node table. Internal nodes carry a
// split (feature index and threshold) plus child indices; leaves carry a
// class and have both children set to -1.
type TreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Class     int     `json:"class"`
}

// DecisionTree evaluates a node table starting at index 0: left child when
// the feature value is <= the threshold, right child otherwise.
type DecisionTree struct {
	Nodes []TreeNode `json:"nodes"`
}

func decodeTree(params json.RawMessage) (*DecisionTree, error) {
	var t DecisionTree
	if err := json.Unmarshal(params, &t); err != nil {
		return nil, fmt.Errorf("tree params: %w", err)
	}
	if len(t.Nodes) == 0 {
		return nil, errors.New("tree params: empty node table")
	}
	return &t, nil
}

// Predict walks the node table from the root. The walk is bounded by the
// table length so a malformed table errors instead of looping forever.
func (t *DecisionTree) Predict(features []float64) (int, error) {
	idx := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		if idx < 0 || idx >= len(t.Nodes) {
			return 0, fmt.Errorf("tree: node link %d out of range", idx)
		}
		n := t.Nodes[idx]
		if n.Left < 0 && n.Right < 0 {
			return n.Class, nil
		}
		if n.Feature < 0 || n.Feature >= len(features) {
			return 0, fmt.Errorf("tree: feature index %d out of range for %d features", n.Feature, len(features))
		}
		if features[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
	return 0, errors.New("tree: walk did not terminate")
}
