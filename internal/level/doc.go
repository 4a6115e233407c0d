// Package level maps a (free space, fill rate) pair to one of seven
// severity levels, with a rate-aware escalation step on top of the plain
// threshold comparison.
package level
