// Package diff computes line diffs and renders them as unified-diff text.
//
// The differ builds a classic longest-common-subsequence table over two
// line sequences and backtracks it into an edit script of equal, remove,
// and add operations. The formatter groups the changed lines into
// context-bounded hunks and renders them with the conventional
// `@@ -old,count +new,count @@` headers.
//
// Everything in this package is a pure function over in-memory values:
// no I/O, no shared state, and deterministic output for identical
// inputs, which the snapshot tests rely on.
//
// The O(m*n) table is a deliberate simplicity tradeoff; component source
// files are at most a few hundred lines. A greedy O(N*D) differ could
// replace Compute behind the same contract if that ever changes.
package diff
