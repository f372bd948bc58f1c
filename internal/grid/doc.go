// Package grid defines the immutable world geometry a planner solves
// over: a bounded rectangular grid of unit cells with a fixed set of
// static obstacles.
package grid
