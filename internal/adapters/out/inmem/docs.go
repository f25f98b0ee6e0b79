// Package inmem provides the in-process implementations of the core's
// outbound ports: random order identifiers, wall-clock time, and the order
// archive. The whole system state lives in memory; nothing here survives a
// process restart.
package inmem
