// Package core holds the sprint availability and capacity engine: sprint
// calendar arithmetic, the per-member availability calculator, the team
// capacity aggregator and the multi-sprint orchestrator. The engine performs
// no I/O; external data arrives fully resolved through the contract sources.
package core
