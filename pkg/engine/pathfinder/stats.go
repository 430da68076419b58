package pathfinder

// Stats counts what the search did since construction or the last
// invalidation. Expanded staying constant across a repeated query is the
// observable proof that settled work is reused instead of recomputed.
type Stats struct {
	Expanded int // vertices popped and run through the expansion operators
	Admitted int // candidates accepted into the best-known table
	Rejected int // candidates dominated by an existing entry
	Dropped  int // candidates discarded by the turn change (unit death)
	Stale    int // frontier entries superseded while queued
}
