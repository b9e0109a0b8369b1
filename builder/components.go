// SPDX-License-Identifier: MIT
// Package: chembalance/builder
//
// components.go — independent sub-reactions of a System.
//
// Two compounds are linked when they share an element; a connected set of
// compounds is a sub-reaction that balances independently of the others.
// An equation with k > 1 components has a null space of dimension ≥ k, so
// this explains most "no unique solution" failures.

package builder

import "slices"

// Components partitions the compound columns into sub-reactions.
//
// Implementation:
//   - Breadth-first search over the bipartite compound–element graph held
//     implicitly by the matrix (non-zero entry = edge).
//   - Components are ordered by their smallest column; columns ascend
//     within each component.
//
// Complexity: O(E·C) time, O(E + C) space.
func (s *System) Components() [][]int {
	rows, cols := s.Matrix.Rows(), s.Matrix.Cols()
	visitedCol := make([]bool, cols)
	visitedRow := make([]bool, rows)
	var out [][]int

	for start := 0; start < cols; start++ {
		if visitedCol[start] {
			continue
		}
		visitedCol[start] = true
		queue := []int{start}
		var comp []int
		for len(queue) > 0 {
			col := queue[0]
			queue = queue[1:]
			comp = append(comp, col)
			for row := 0; row < rows; row++ {
				if visitedRow[row] || s.entry(row, col) == 0 {
					continue
				}
				visitedRow[row] = true
				for next := 0; next < cols; next++ {
					if !visitedCol[next] && s.entry(row, next) != 0 {
						visitedCol[next] = true
						queue = append(queue, next)
					}
				}
			}
		}
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out
}

// entry reads an in-range cell; indices come from the matrix shape.
func (s *System) entry(row, col int) int64 {
	v, _ := s.Matrix.At(row, col)

	return v
}
