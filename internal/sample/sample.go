package sample

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

const bytesPerGB = 1 << 30

// Sample is one space reading for the monitored mount.
type Sample struct {
	TotalBytes uint64
	FreeBytes  uint64
	Device     string
}

// FreeGB returns free space truncated to whole gigabytes.
func (s Sample) FreeGB() int {
	return int(s.FreeBytes / bytesPerGB)
}

// Read reports free/total bytes for mount and the short name of its
// backing block device (e.g. "sda", "nvme0n1"), derived by stripping the
// "/dev/" prefix and any trailing partition suffix.
func Read(mount string) (Sample, error) {
	usage, err := disk.Usage(mount)
	if err != nil {
		return Sample{}, fmt.Errorf("sample: usage %s: %w", mount, err)
	}

	device, err := backingDevice(mount)
	if err != nil {
		return Sample{}, err
	}

	return Sample{
		TotalBytes: usage.Total,
		FreeBytes:  usage.Free,
		Device:     deviceShortName(device),
	}, nil
}

// backingDevice finds the partition whose mountpoint matches mount (exact
// match preferred, else the longest prefix match among real block
// devices) and returns its raw device path.
func backingDevice(mount string) (string, error) {
	partitions, err := disk.Partitions(false)
	if err != nil {
		return "", fmt.Errorf("sample: partitions: %w", err)
	}

	mount = strings.TrimRight(mount, "/")
	if mount == "" {
		mount = "/"
	}

	best := ""
	bestLen := -1
	for _, p := range partitions {
		pm := strings.TrimRight(p.Mountpoint, "/")
		if pm == "" {
			pm = "/"
		}
		if pm == mount {
			return p.Device, nil
		}
		if strings.HasPrefix(mount, pm) && len(pm) > bestLen {
			best = p.Device
			bestLen = len(pm)
		}
	}
	if bestLen < 0 {
		return "", fmt.Errorf("%w: %s", ErrMountNotFound, mount)
	}
	return best, nil
}

var (
	rePartitionSuffix = regexp.MustCompile(`^(.+[0-9])p[0-9]+$`) // nvme0n1p1, mmcblk0p1
	reTrailingDigits  = regexp.MustCompile(`^([a-z]+)[0-9]+$`)   // sda1, vda2, xvda1
)

// deviceShortName strips "/dev/" and a trailing partition suffix
// (including NVMe/MMC-style "pN") from a raw device path.
func deviceShortName(device string) string {
	name := strings.TrimPrefix(device, "/dev/")

	if m := rePartitionSuffix.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	if m := reTrailingDigits.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}
