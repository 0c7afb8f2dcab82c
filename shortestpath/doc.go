// Package shortestpath implements point-to-point shortest-path search over
// the immutable weighted directed graphs of package core.
//
// Overview:
//
//   - Compute runs the classic label-setting shortest-path algorithm
//     (Dijkstra) from src toward dst using a min-priority-queue keyed by
//     tentative distance, and stops as soon as dst is settled — it does not
//     keep draining the queue once the answer is known.
//   - The queue uses the “lazy deletion” strategy: improving a node's
//     tentative distance pushes a fresh queue entry instead of decreasing the
//     key of the old one. Stale entries are recognized on pop (their recorded
//     distance exceeds the node's current best) and discarded. This is a
//     deliberate behavioral choice, not an optimization shortcut, and keeps
//     every queue operation at O(log N).
//   - When several equally-short paths exist, which one is reported depends
//     on the order equal-priority queue entries happen to surface. The
//     reported distance is always exact; the tie order is unspecified.
//
// Preconditions:
//
//   - Edge costs are non-negative. core.Load enforces this at graph
//     construction, so the engine performs no re-scan. Behavior on a graph
//     with negative costs (impossible via Load) is undefined — this is not
//     Bellman–Ford.
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case; early exit often does far less.
//   - Space: O(V + E) for distance/predecessor maps and queue entries.
//
// Errors (sentinel):
//
//   - ErrNilGraph        – a nil *core.Graph was supplied.
//   - core.ErrUnknownNode – src or dst does not exist in the graph. This is a
//     request-level failure, distinct from the NotFound outcome.
//
// An unreachable destination is NOT an error: Compute returns a Result with
// Reachable == false.
package shortestpath
