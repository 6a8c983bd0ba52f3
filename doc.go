// Package gridshuffle rearranges the occupants of a labeled 2D grid —
// think classroom seating charts or game boards — so that nobody keeps
// their old seat and nobody keeps their old neighbors.
//
// 🚀 What is gridshuffle?
//
//	A small, deterministic library that brings together:
//		• grid/    — the immutable grid model: labels, positions, CSV import/export
//		• shuffle/ — constraint derivation, randomized backtracking search,
//		             independent result validation, and the Engine facade
//
// ✨ Why choose gridshuffle?
//
//   - Two constraints, one call – a full derangement that also breaks every
//     original adjacency, or an honest "no solution" answer
//   - Reproducible – explicit seed control; same seed ⇒ same arrangement
//   - Rock-solid guarantees – strict constructors, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    A B C          H F D
//	    D E F   ──►    B I G
//	    G H I          E C A
//
//	every label moved, and no pair of original neighbors touches again.
//
// Dive into the grid/ and shuffle/ package docs for contracts and
// complexity notes, and into examples/ for a full seating-chart scenario.
//
//	go get github.com/katalvlaran/gridshuffle
package gridshuffle
