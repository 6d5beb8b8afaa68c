package popupctl

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/iv/internal/ui/action"
	"github.com/llehouerou/iv/internal/ui/confirm"
	"github.com/llehouerou/iv/internal/ui/testutil"
)

func TestManager_NothingVisible(t *testing.T) {
	p := New()
	p.SetSize(80, 24)

	assert.Equal(t, None, p.ActivePopup())
	handled, cmd := p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, "base", p.RenderOverlay("base"))
}

func TestManager_ConfirmRoundTrip(t *testing.T) {
	p := New()
	p.SetSize(80, 24)
	p.ShowConfirm("Delete media", "Delete 2 items?", "payload")

	require.Equal(t, Confirm, p.ActivePopup())
	assert.Contains(t, testutil.StripANSI(p.RenderOverlay("")), "Delete 2 items?")

	handled, cmd := p.HandleKey(testutil.Key("y"))
	require.True(t, handled)
	assert.Equal(t, None, p.ActivePopup())

	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	require.True(t, ok)
	assert.Equal(t, confirm.Result{Confirmed: true, Context: "payload"}, msg.Action)
}

func TestManager_ConfirmIgnoresOtherKeys(t *testing.T) {
	p := New()
	p.SetSize(80, 24)
	p.ShowConfirm("Delete media", "Delete 1 item?", nil)

	handled, cmd := p.HandleKey(testutil.Key("j"))
	assert.True(t, handled, "modal popup swallows keys")
	assert.Nil(t, cmd)
	assert.Equal(t, Confirm, p.ActivePopup())
}

func TestManager_ErrorTakesPriority(t *testing.T) {
	p := New()
	p.SetSize(80, 24)
	p.ShowConfirm("Delete media", "Delete 1 item?", nil)
	p.ShowError("Failed to delete media: read-only")

	assert.Equal(t, Error, p.ActivePopup())
	assert.Contains(t, testutil.StripANSI(p.RenderOverlay("")), "read-only")

	handled, _ := p.HandleKey(testutil.Key("x"))
	assert.True(t, handled)
	assert.Empty(t, p.ErrorMsg())
	assert.Equal(t, Confirm, p.ActivePopup())
}
