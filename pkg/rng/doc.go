// Package rng provides the deterministic random source that feeds every
// randomized stage of island world generation.
//
// # Overview
//
// RNG is a 32-bit linear-congruential generator (multiplier 1664525,
// increment 1013904223, modulus 2^32). It is reseedable to its initial
// seed via Reset, and every method is a pure function of its current
// state, so two RNGs constructed with the same seed produce identical
// sequences forever.
//
// # Stage isolation
//
// Pipeline stages that need an independent stream, chiefly settlement and
// building placement, which run after the terrain/transport core, derive
// their own RNG up front with Derive, rather than sharing the core
// pipeline's sequence:
//
//	core := rng.New(cfg.Seed)
//	settlementRNG := rng.Derive(cfg.Seed, "settlements", cfg.Hash())
//
// The core pipeline in pkg/worldgen uses the same scheme: sampling, the
// island mask (whose noise also drives hill relief), and elevation (ridge
// selection) each draw from their own Derive'd stream, consumed
// sequentially within the stage, so output is deterministic and
// reproducible.
package rng
