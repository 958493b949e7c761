// Package table computes origin × destination distance tables over the
// delivery map, the matrix a dispatcher reads to see which restaurant is
// closest to which customer.
//
// Every row is one single-source dijkstra.From tree, so a table with R rows
// and C columns costs R searches, not R·C. Rows are computed concurrently
// over the shared read-only graph. Distances are stored in a gonum
// mat.Dense; unreachable pairs hold +Inf.
package table
