package utils_test

import (
	"regexp"
	"testing"

	"backend/utils"
)

func TestTrackingCodeFormat(t *testing.T) {
	format := regexp.MustCompile(`^ESB-[A-Z0-9]{5}$`)
	for i := 0; i < 1000; i++ {
		code := utils.TrackingCode()
		if !format.MatchString(code) {
			t.Fatalf("TrackingCode() = %q, want ESB- plus 5 uppercase alphanumerics", code)
		}
	}
}

func TestTrackingCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[utils.TrackingCode()] = true
	}
	// 1000 draws from a 36^5 namespace should be nearly collision-free
	if len(seen) < 990 {
		t.Errorf("got %d distinct codes out of 1000", len(seen))
	}
}
