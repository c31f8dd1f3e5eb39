package main

import (
	"github.com/dustin/go-humanize"
)

func formatBytes(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.IBytes(uint64(size))
}

func boolLabel(value bool) string {
	if value {
		return "on"
	}
	return "off"
}
