// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package forest analyses a rectangular grid of tree heights.
//
// # Core Concepts
//
//   - Grid: an immutable rows×cols matrix of heights in [0, 9], parsed from
//     lines of decimal digits.
//
//   - Visibility: a tree is visible from an edge when it is strictly taller
//     than every tree between it and that edge. The scan is written once, for
//     the top edge. The other three edges are handled by rotating the grid so
//     the wanted edge becomes the top, scanning, and mapping the found
//     coordinates back through the inverse rotation.
//
//   - Scenic score: the product of the four viewing distances from a tree,
//     where a viewing distance counts trees up to and including the first one
//     at least as tall as the origin.
//
// The Grid is never mutated after Parse returns, so every analysis here may
// read it from several goroutines at once. Analyze does exactly that.
package forest
