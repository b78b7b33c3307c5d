// Package kernel provides shared value objects used across the domain model:
// UUID identifiers and Money amounts. Both are immutable and must be created
// through their constructor functions; zero values fail validation.
package kernel
