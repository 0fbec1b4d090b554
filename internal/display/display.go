// Package display holds presentation helpers shared by templates and stores.
package display

import (
	"crypto/md5"
	"fmt"
	"time"
)

// AvatarColor derives a stable neon color from a username. The md5 digest is
// read as a big-endian integer and reduced mod 360 to pick a hue.
func AvatarColor(username string) string {
	sum := md5.Sum([]byte(username))
	hue := 0
	for _, b := range sum {
		hue = (hue*256 + int(b)) % 360
	}
	return fmt.Sprintf("hsl(%d, 80%%, 60%%)", hue)
}

// TimeAgo renders t relative to now: "Just now" under a minute, then whole
// minutes, hours or days.
func TimeAgo(t time.Time) string {
	seconds := time.Since(t).Seconds()
	if seconds < 60 {
		return "Just now"
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", int(minutes))
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", int(hours))
	}
	return fmt.Sprintf("%dd ago", int(hours/24))
}
