package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceShortName(t *testing.T) {
	cases := []struct {
		device string
		want   string
	}{
		{"/dev/sda1", "sda"},
		{"/dev/sda", "sda"},
		{"/dev/nvme0n1p1", "nvme0n1"},
		{"/dev/nvme0n1p12", "nvme0n1"},
		{"/dev/mmcblk0p1", "mmcblk0"},
		{"/dev/vda2", "vda"},
		{"/dev/xvda1", "xvda"},
		{"tmpfs", "tmpfs"},
		{"overlay", "overlay"},
	}
	for _, c := range cases {
		t.Run(c.device, func(t *testing.T) {
			assert.Equal(t, c.want, deviceShortName(c.device))
		})
	}
}

func TestSample_FreeGB_Truncates(t *testing.T) {
	s := Sample{FreeBytes: uint64(1.9 * bytesPerGB)}
	assert.Equal(t, 1, s.FreeGB())
}
