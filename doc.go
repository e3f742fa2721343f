// Package spinalg is your in-memory toolkit for building, canonicalizing,
// and expanding second-quantized spin operators — weighted sums of
// site-indexed X/Y/Z generator strings over a tensor product of
// finite-dimensional spin spaces.
//
// 🚀 What is spinalg?
//
//	A modern, deterministic library that brings together:
//		• Label codec: parse & serialize "X_0 Y_1^2 Z_2"-style term labels
//		• Term algebra: add, subtract, scale, compose, tensor, expand
//		• Canonical forms: Simplify, IndexOrder, PermuteIndices
//		• Hermitian machinery: Conjugate, Transpose, Adjoint
//		• Dense realization: exact (2s+1)^n × (2s+1)^n complex matrices
//
// ✨ Why choose spinalg?
//
//   - Exact by construction – pure symbolic/linear-algebra manipulation,
//     no approximate or iterative numerics
//   - Rock-solid guarantees – immutable operators, sentinel errors,
//     deterministic term ordering, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – Terms()/FromTerms() expose every operator to external
//     qubit-mapping transformers without leaking internals
//
// Under the hood, everything is organized under two subpackages:
//
//	cmatrix/ — dense complex128 matrices: safe accessors, MatMul, Kron
//	spinop/  — the SpinOp entity: codec, algebra, canonicalizer, ToMatrix
//
// Quick ASCII example:
//
//	    X_0 Y_0  +  2·X_0 X_0 Z_0
//
//	is one operator on a single spin-1/2 site: two terms, each an ordered
//	product of non-commuting generators, each with a complex weight.
//
// Dive into the examples/ directory for Heisenberg chains and
// canonicalization walk-throughs.
//
//	go get github.com/katalvlaran/spinalg/spinop
package spinalg
