package confirm

import (
	"testing"

	"github.com/llehouerou/iv/internal/ui/action"
	"github.com/llehouerou/iv/internal/ui/testutil"
)

const testContext = "ctx"

func newTestConfirm(title, message string, context any) (*Model, *testutil.PopupHarness) {
	m := New()
	m.Show(title, message, context, 80, 24)
	return &m, testutil.NewPopupHarness(&m)
}

func getResult(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	cmd := h.LastCommand()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	msg := testutil.ExecuteCmd(cmd)
	actionMsg, ok := msg.(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	result, ok := actionMsg.Action.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", actionMsg.Action)
	}
	return result
}

func TestConfirmKeys(t *testing.T) {
	tests := []struct {
		name string
		send func(h *testutil.PopupHarness)
		want bool
	}{
		{"enter confirms", func(h *testutil.PopupHarness) { h.SendEnter() }, true},
		{"y confirms", func(h *testutil.PopupHarness) { h.SendKey("y") }, true},
		{"Y confirms", func(h *testutil.PopupHarness) { h.SendKey("Y") }, true},
		{"esc cancels", func(h *testutil.PopupHarness) { h.SendEscape() }, false},
		{"n cancels", func(h *testutil.PopupHarness) { h.SendKey("n") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, h := newTestConfirm("Delete?", "Delete 2 items?", testContext)

			tt.send(h)

			result := getResult(t, h)
			if result.Confirmed != tt.want {
				t.Errorf("Confirmed = %v, want %v", result.Confirmed, tt.want)
			}
			if result.Context != testContext {
				t.Errorf("Context = %v, want %q", result.Context, testContext)
			}
			if m.Active() {
				t.Error("popup should close after answering")
			}
		})
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	m, h := newTestConfirm("Delete?", "Delete 2 items?", nil)

	if cmd := h.SendKey("x"); cmd != nil {
		t.Error("expected no command for unrelated key")
	}
	if !m.Active() {
		t.Error("popup should stay open")
	}
}

func TestInactiveIgnoresInput(t *testing.T) {
	m := New()
	h := testutil.NewPopupHarness(&m)

	if cmd := h.SendEnter(); cmd != nil {
		t.Error("inactive popup should not emit commands")
	}
}

func TestView(t *testing.T) {
	_, h := newTestConfirm("Delete media", "Delete 2 items?", nil)

	if msg := h.AssertViewContains("Delete media"); msg != "" {
		t.Error(msg)
	}
	if msg := h.AssertViewContains("Delete 2 items?"); msg != "" {
		t.Error(msg)
	}

	m := New()
	if m.View() != "" {
		t.Error("inactive popup should render nothing")
	}
}
