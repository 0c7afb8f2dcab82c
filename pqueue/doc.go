// Package pqueue provides a small generic min-priority-queue over
// (priority, item) pairs, backed by a binary heap.
//
// Overview:
//
//   - Min[P, T] orders items by ascending priority P (any cmp.Ordered type).
//   - There is deliberately no decrease-key operation. The intended usage is
//     the “lazy deletion” pattern: when an item's priority improves, push a
//     fresh entry and let the consumer discard stale entries as they are
//     popped. This keeps every heap operation at O(log N) and matches the
//     standard label-setting shortest-path formulation.
//   - Entries with equal priority are returned in whatever order the binary
//     heap naturally produces. No secondary tie-break key is applied; callers
//     for whom tie order matters must encode it into the priority.
//
// Complexity:
//
//   - Push: O(log N)
//   - Pop:  O(log N)
//   - Peek, Len: O(1)
package pqueue
