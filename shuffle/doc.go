// Package shuffle rearranges the occupied cells of a grid under two
// simultaneous constraints, via randomized backtracking search.
//
// What:
//
//   - Engine wraps one immutable input grid.Grid and derives, once, the
//     constraint indices: forbidden label pairs (from original adjacency),
//     the occupied-position neighbor graph, and each label's original seat.
//   - Shuffle draws a fresh randomized candidate list per position and runs
//     an exhaustive backtracking search for a complete reassignment where
//     no label keeps its seat (a derangement) and no two originally
//     adjacent labels are adjacent again.
//   - ValidateAgainst independently re-checks any candidate grid against
//     the same constraints, regardless of how it was produced.
//
// Why:
//
//   - Seating rotation: fresh neighbors every term, nobody stays put.
//   - Board reshuffles: rearrange tokens without recreating old contact.
//   - Auditing: validate an externally edited arrangement.
//
// Search behavior:
//
//   - Candidate lists hold every distinct label and are never narrowed as
//     assignments are made (no forward checking), so the minimum-remaining-
//     values selection degenerates to "first unassigned position in
//     row-major order". Infeasible candidates — already-placed labels, a
//     position's own original label, forbidden neighbors — are rejected by
//     the per-step admissibility check instead, which keeps every completed
//     assignment a bijection. This is a deliberate simplicity trade;
//     constraint propagation would only change how fast a solution is
//     found, never which grids are accepted.
//   - The search is complete over the drawn candidate orders and always
//     terminates; exhaustion is reported as a plain false, not an error.
//     Worst-case time is exponential in the number of occupied cells.
//
// Determinism:
//
//   - Each Engine owns one *rand.Rand built from Options.Seed at
//     construction (seed==0 ⇒ fixed default stream). Identical seeds and
//     identical call sequences reproduce identical arrangements.
//   - An Engine is single-caller: no internal locking. Use one Engine per
//     goroutine, or serialize externally.
//
// Errors:
//
//   - ErrNoSolution:    Allocate found no valid arrangement.
//   - ErrInvalidResult: Allocate produced a grid its own validator rejects
//     (an implementation bug, surfaced defensively).
//   - ErrShapeMismatch: ValidateAgainst received grids of different shapes.
package shuffle
