// Package zipfgen generates Zipf (power-law) distributed variates for
// load testing and synthetic-workload generation — skewed key-access
// patterns such as “80% of requests hit 20% of keys”.
//
// 🚀 What is zipfgen?
//
//	A small, deterministic, allocation-free library built around a single
//	closed-form inverse-CDF transform:
//		• Zipf handle: validated range + power parameter, constants cached once
//		• Two numeric regimes: s = 1 (logarithmic) and s ≠ 1 (power form)
//		• O(1) single-value and batch sampling, no tables, no rejection loops
//		• Infinite sequences: raw variates, index streams, element streams
//
// ✨ Why choose zipfgen?
//
//   - Reproducible — fixed seed ⇒ bit-identical sequences, on every platform
//   - Rock-solid guarantees — all validation at construction, none per sample
//   - Pure Go — no cgo, no hidden deps
//   - Composable — bring your own uniform source via a one-method interface
//
// Everything lives in one subpackage:
//
//	zipf/ — the Zipf handle, validation errors and the sequence adapters
//
// Quick sketch of the transform:
//
//	u ∈ [0,1) ──► inverse CDF ──► x ∈ [a,b), P(x) ∝ x⁻ˢ
//
// Dive into README.md and the package examples for workload recipes.
//
//	go get github.com/katalvlaran/zipfgen/zipf
package zipfgen
