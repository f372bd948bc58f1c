// Package agent defines the ordered set of agents a planner solves paths
// for, and the validation the encoder requires to hold before any
// clause is built.
package agent
