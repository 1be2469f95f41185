package selflog

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
)

func TestWarnfIsNoOpWhenDisabled(t *testing.T) {
	Enable(nil)
	// Must not panic or block.
	Warnf("nobody is listening: %d", 42)
}

func TestWarnfReachesConfiguredLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	Enable(logger)
	defer Enable(nil)

	Warnf("trouble in %s", "paradise")

	if len(hook.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(hook.Entries))
	}
	if hook.LastEntry().Message != "trouble in paradise" {
		t.Errorf("message = %q", hook.LastEntry().Message)
	}
}
