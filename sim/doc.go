// Package sim provides the slot-by-slot contention engine for macsim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - user.go: per-node frame generation and the pending-frame counter
//   - policy.go: transmission policies (Slotted ALOHA, p-persistent CSMA)
//   - channel.go: per-slot arbitration into idle / success / collision
//   - simulator.go: the slot loop that drives users and the channel
//
// # Architecture
//
// The sim package owns one configuration run. Sub-packages build on it:
//   - sim/sweep/: iterates runs across a grid of loads and persistence values
//   - sim/trace/: optional per-slot trace recording
//
// # Randomness
//
// Runs never touch a process-wide generator. Every Simulator receives an
// explicit UniformSource; PartitionedRNG derives one isolated stream per
// configuration point from a single master seed.
package sim
