package cli

// Default filesystem locations, matching spec.md's "under /run or
// equivalent" / "private directory, 0700" wording. These are
// operational paths, not config-file keys: they describe where the
// daemon lives on disk, not how it behaves.
const (
	DefaultStateDir   = "/var/lib/diskwatchdog"
	DefaultPIDFile    = "/run/diskwatchdog.pid"
	DefaultLogFile    = "/var/log/diskwatchdog.log"
	DefaultConfigFile = "/etc/diskwatchdog.conf"

	unitName = "diskwatchdog.service"
	unitPath = "/etc/systemd/system/" + unitName
)
