// Package core wires configuration, logging and the transition registry into
// the startup sequence a host runs once before processing trigger events.
package core
