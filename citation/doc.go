// SPDX-License-Identifier: MIT

// Package citation turns a table of citation records into the immutable
// inputs of every ranking model.
//
// A table has one row per entity (journal) with the columns
//
//	entityId, noOfPubs, ref_1, …, ref_N
//
// where row j's ref_i is the number of references entity j makes to entity i.
// Build derives:
//
//   - N: the number of entities (rows);
//   - R: the N×N reference matrix, R[j][i] = references from j to i;
//   - T: total outgoing references per entity, T[j] = Σ_i R[j][i]
//     (self-references included);
//   - P: publication counts.
//
// Every formula downstream divides by P and T, so Build rejects a
// non-square reference block, non-positive publication counts and entities
// without outgoing references before any ranking starts.
package citation
