// Package dispatch implements the backend-selection policy of the routing
// simulator: a process-wide round-robin counter and a seedable failure
// sampler.
//
// Overview:
//
//   - Dispatcher owns a single monotonically advancing counter. Each
//     SelectBackend call claims one counter value in a single atomic step
//     and maps it to a backend index via modulo, so concurrent callers can
//     never observe the same value (no lost updates, no duplicate reads) and
//     the index sequence is exactly 0,1,...,k-1,0,1,... from the counter's
//     current position.
//   - The counter advances on every selection regardless of what happens to
//     the request afterwards (success, no route, simulated failure). It is
//     never reset implicitly; Reset exists only as an explicit
//     administrative action. Presentation-layer “clear” actions must not
//     call it, so round-robin fairness survives UI resets.
//   - FailureSampler draws a uniform value per request against a configured
//     probability. It is seedable so simulations and tests are reproducible.
//
// Errors (sentinel):
//
//   - ErrNoBackends – SelectBackend was called with a backend count below 1.
//     This is a configuration error, fatal to the caller.
package dispatch
