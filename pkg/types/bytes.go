package types

import "fmt"

// Bytes is a uint64 wrapper representing a size in bytes.
type Bytes uint64

// Humanized returns a human-readable string with automatic unit (B, KB, MB, GB, TB),
// two decimal places. Used for general byte-count display (e.g. disk totals).
func (b Bytes) Humanized() string {
	v := float64(b)
	switch {
	case b >= 1<<40:
		return fmt.Sprintf("%.2f TB", v/(1<<40))
	case b >= 1<<30:
		return fmt.Sprintf("%.2f GB", v/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.2f MB", v/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.2f KB", v/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// FormatWriter renders a byte count the way the `writers` subcommand does:
// one decimal place, unit in {GB, MB, KB}, always '.' as the decimal
// separator regardless of host locale. Sub-KB counts are shown as "0.0 KB"
// rather than introducing a fourth unit, matching the CLI's fixed three-unit
// ladder.
func (b Bytes) FormatWriter() string {
	v := float64(b)
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", v/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", v/(1<<20))
	default:
		return fmt.Sprintf("%.1f KB", v/(1<<10))
	}
}

// KB returns the number of kilobytes (1024 base).
func (b Bytes) KB() float64 { return float64(b) / 1024 }

// MB returns the number of megabytes (1024 base).
func (b Bytes) MB() float64 { return float64(b) / (1024 * 1024) }

// GB returns the number of gigabytes (1024 base).
func (b Bytes) GB() float64 { return float64(b) / (1024 * 1024 * 1024) }

// ToUint64 returns the plain uint64 value.
func (b Bytes) ToUint64() uint64 { return uint64(b) }
