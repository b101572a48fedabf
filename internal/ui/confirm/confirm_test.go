package confirm

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/ui/action"
	"github.com/llehouerou/folio/internal/ui/testutil"
)

const testContext = "page:gardens"

func newTestConfirm(context any) (*Model, *testutil.PopupHarness) {
	m := New()
	m.Show("Remove attachment?", "report.pdf will be detached from this page.", context, 80, 24)
	return &m, testutil.NewPopupHarness(&m)
}

func getResult(t *testing.T, cmd tea.Cmd) Result {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	msg := testutil.ExecuteCmd(cmd)
	actionMsg, ok := msg.(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	if actionMsg.Source != "confirm" {
		t.Errorf("Source = %q, want %q", actionMsg.Source, "confirm")
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
		msg  tea.KeyMsg
		want bool
	}{
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, true},
		{"y confirms", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, true},
		{"Y confirms", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Y'}}, true},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEsc}, false},
		{"n cancels", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, h := newTestConfirm(testContext)

			result := getResult(t, h.SendMsg(tt.msg))
			if result.Confirmed != tt.want {
				t.Errorf("Confirmed = %v, want %v", result.Confirmed, tt.want)
			}
			if result.Context != testContext {
				t.Errorf("Context = %v, want %q", result.Context, testContext)
			}
			if m.Active() {
				t.Error("expected popup to be inactive after answering")
			}
		})
	}
}

func TestOtherKeysAreIgnored(t *testing.T) {
	m, h := newTestConfirm(nil)

	if cmd := h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}); cmd != nil {
		t.Error("expected no command for unrelated key")
	}
	if !m.Active() {
		t.Error("expected popup to stay active")
	}
}

func TestInactiveIgnoresInput(t *testing.T) {
	m := New()
	h := testutil.NewPopupHarness(&m)

	if cmd := h.SendKey(tea.KeyEnter); cmd != nil {
		t.Error("expected no command while inactive")
	}
	if v := h.View(); v != "" {
		t.Errorf("View() = %q, want empty", v)
	}
}

func TestView(t *testing.T) {
	_, h := newTestConfirm(nil)

	view := h.View()
	for _, want := range []string{"Remove attachment?", "report.pdf", "Esc/N: cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestReset(t *testing.T) {
	m, _ := newTestConfirm(testContext)
	m.Reset()

	if m.Active() {
		t.Error("expected inactive after Reset")
	}
	if m.context != nil {
		t.Errorf("context = %v, want nil", m.context)
	}
}
