// Package solver builds the propositional encoding of a multi-agent
// pathfinding problem, hands it to a SAT backend, and decodes a
// satisfying model back into per-agent
// schedules. Every Boolean atom is minted through a single shared
// github.com/go-air/gini/logic circuit, keyed by the (agent, cell,
// time) triple it represents; that circuit is also reused for the
// optional sorting-network cardinality encoding, so there is never a
// second numbering scheme to reconcile with the first.
package solver
