// Package rate turns successive free-space samples into a signed fill
// rate in GB/minute, suppressing small/negative rates so the level
// classifier only reacts to genuine, fast consumption.
package rate
