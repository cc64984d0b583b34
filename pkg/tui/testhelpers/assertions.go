package testhelpers

import (
	"strings"
	"testing"
	"time"

	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

// AssertPreferencesEqual reports every field that differs between two records
func AssertPreferencesEqual(t *testing.T, expected, actual models.PreferenceSet) {
	t.Helper()

	for _, key := range models.FieldKeys {
		want, _ := expected.Get(key)
		got, _ := actual.Get(key)
		if want != got {
			t.Errorf("Preference %s mismatch: expected %q, got %q", key, want, got)
		}
	}
}

// AssertPersisted checks that the sink's last record matches expected
func AssertPersisted(t *testing.T, sink *RecordingSink, expected models.PreferenceSet) {
	t.Helper()

	last, ok := sink.Last()
	if !ok {
		t.Fatal("Expected a persisted record, but the sink received none")
	}
	AssertPreferencesEqual(t, expected, last)
}

// AssertViewContains checks if a view contains expected text
func AssertViewContains(t *testing.T, view, expected string) {
	t.Helper()

	if !strings.Contains(view, expected) {
		t.Errorf("View does not contain expected text: %q\nView:\n%s", expected, view)
	}
}

// AssertViewNotContains checks if a view does not contain certain text
func AssertViewNotContains(t *testing.T, view, unexpected string) {
	t.Helper()

	if strings.Contains(view, unexpected) {
		t.Errorf("View unexpectedly contains text: %q\nView:\n%s", unexpected, view)
	}
}

// WaitForCondition waits for a condition with timeout
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Condition not met within timeout: %s", msg)
}
