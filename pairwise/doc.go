// Package pairwise aligns every unordered pair of a sequence set and
// derives percent-identity statistics from the results.
//
// What:
//
//   - All runs nw.Align over all n·(n-1)/2 combinations, optionally bounded
//     to a fixed number of workers. Each alignment owns its matrices, so
//     pairs parallelize at whole-invocation granularity.
//   - IdentityMatrix folds the pair results into a symmetric n×n percent
//     identity matrix (diagonal fixed at 100).
//
// Complexity:
//
//   - Time:   O(n² · a·b) for n sequences of lengths ≈a, ≈b.
//   - Memory: O(a·b) per in-flight worker plus O(n²) for the results.
//
// Errors:
//
//   - ErrTooFewSequences: fewer than two input sequences.
//   - nw.Align errors propagate unchanged from the first failing pair.
package pairwise
