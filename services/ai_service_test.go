package services

import (
	"strings"
	"testing"
)

// TestWithDisclaimer checks that every reply carries the disclaimer exactly
// once.
func TestWithDisclaimer(t *testing.T) {
	reply := withDisclaimer("Drink plenty of water.")
	if !strings.HasSuffix(reply, MedicalDisclaimer) {
		t.Errorf("reply does not end with the disclaimer: %q", reply)
	}
	if !strings.HasPrefix(reply, "Drink plenty of water.") {
		t.Errorf("reply body altered: %q", reply)
	}

	again := withDisclaimer(reply)
	if strings.Count(again, MedicalDisclaimer) != 1 {
		t.Errorf("disclaimer appended twice: %q", again)
	}
}
