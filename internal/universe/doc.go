// Package universe maps arbitrary comparable elements to dense integer ids.
//
// Ids are assigned in first-seen order while scanning sets in the given
// order, so the mapping is deterministic for a deterministic input order.
package universe
