package cmd

// Config carries everything the composition root needs to assemble the
// system: the HTTP port, the initial fleet, and the per-day rates.
type Config struct {
	HTTPPort string

	// Initial odometer readings per category; one vehicle per entry.
	SedanMileages []int
	SUVMileages   []int
	VanMileages   []int

	// Per-day rates as exact decimal strings.
	SedanRate string
	SUVRate   string
	VanRate   string
}
