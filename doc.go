// Package lvlalg is a small algebra toolkit: free modules of finite rank
// over generic, possibly noncommutative rings, with exact arithmetic.
//
// 🚀 What is lvlalg?
//
//	A typed, allocation-honest library that brings together:
//		• Rings: integers ZZ, rationals QQ, residues Z/n, quaternions HH
//		• Matrices: generic dense row-major matrices over any ring
//		• Free modules: R^n descriptors, elements, generators, scaling
//		• Literals: parse "(1, -2, 3/4)" back into elements
//		• CLI: freemod, with flags, env, TOML config and batch scripts
//
// ✨ Why choose lvlalg?
//
//   - Exact – every coefficient is arbitrary precision (math/big)
//   - Typed – generics keep ZZ elements and QQ elements apart at compile time
//   - Honest about sides – LeftMul and RightMul differ over HH
//   - Safe to share – descriptors and elements are immutable
//
// Under the hood, everything is organized under four packages:
//
//	ring/         ring and field interfaces + concrete rings
//	matrix/       Dense[T] storage, validators and element-wise kernels
//	module/       FreeModule[T], Element[T], descriptor Registry, parser
//	cmd/freemod/  command-line front-end
//
// Quick example:
//
//	M, _ := module.New[ring.Int](ring.ZZ, 3)
//	a, _ := M.FromInts(1, 2, 3)
//	b, _ := M.FromInts(4, 5, 6)
//	s, _ := a.Add(b) // (5, 7, 9)
//
//	go get github.com/katalvlaran/lvlalg/module
package lvlalg
