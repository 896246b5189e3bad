// Package stream runs many values through the two-track primitives over
// channels. Values are fed as results, transformed per value by worker
// goroutines and collapsed back into plain values at the end.
//
// Highlights:
// - Feed and Collect bridge slices and result channels
// - Run and Turnout fan a stage across a fixed number of workers
// - stages are built from the solo primitives, one result in, one result out
// - a context end stops feeding and pumping, already produced results are
//   still delivered
// - result order follows completion, not input, when workers > 1
package stream
