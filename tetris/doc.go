// Package tetris is a headless Tetris engine: a bit-packed board with cached
// column heights, pieces bound to pluggable rotation systems (SRS built in),
// rule-bound move application with caller-driven wall-kick arbitration, and a
// breadth-first placement search that enumerates every reachable landing
// position and classifies T-spins.
//
// The engine is a pure, synchronous state transformer. It renders nothing,
// reads no input and generates no piece queues; clients push upcoming pieces,
// apply moves and lock pieces, or ask a SearchAlgorithm for landing positions
// and replay the chosen path.
package tetris
