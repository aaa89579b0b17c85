// Package snapshot stores canonical-markup goldens and checks rendered
// trees against them.
//
//	store := snapshot.NewLocalStore("testdata/snapshots")
//	snapshot.Check(t, store, "my-button/default", el)
//
// Goldens hold the normalized canonical form, so whitespace and
// formatting changes never invalidate them. The local store is the
// default; the S3 store lets CI pipelines share goldens across runners.
package snapshot
