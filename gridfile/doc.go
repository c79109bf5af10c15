// Package gridfile reads and writes occupancy grids as YAML documents.
//
// A document carries the grid in exactly one of two forms, plus optional
// endpoints given as [column, row]:
//
//	rows:             # one string per row
//	  - "11111"       # '1' or '.' open, '0' or '#' blocked
//	  - "1#..1"
//	cells:            # or the numeric form, any int per cell
//	  - [1, 1, 0]
//	source: [0, 0]
//	destination: [4, 1]
//
// Rows are not checked for equal length here; gridgraph.NewGridGraph rejects
// ragged input when the document is turned into a graph.
package gridfile
