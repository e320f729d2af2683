// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. The sequence adapters in tryiter apply them to every element
// they pull.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - MapErr/AndThen: convert errors while switching tracks
// - Try: call a function (Out, error) and convert error to failure
// - Tee: side-effect helper
// - Finally: reduce to a concrete value via success/error handlers
package solo
