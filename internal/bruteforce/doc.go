// Package bruteforce is an independent soundness oracle: an exhaustive
// joint-state BFS that answers whether any valid collision-free
// schedule exists for a grid, agent set and horizon, without going
// anywhere near the SAT encoding. It exists purely to
// cross-check the planner on small generated instances and is never
// used by the planner itself.
package bruteforce
