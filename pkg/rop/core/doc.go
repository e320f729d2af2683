// Package core contains pipeline plumbing: sources that turn slices, parsed
// tokens, channels and iter sequences into rop.Iterator values, helpers to
// range back over iterators, and the options shared by the reduction
// adapters. It does not define any adapter itself; see package tryiter.
package core
