package foldercontent

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/iv/internal/deletion"
	"github.com/llehouerou/iv/internal/index"
	"github.com/llehouerou/iv/internal/media"
	"github.com/llehouerou/iv/internal/ui/action"
	"github.com/llehouerou/iv/internal/ui/testutil"
)

// fiveRecords lists, newest first: video 5, image 4, image 3, video 2, image 1.
func fiveRecords() *index.Mock {
	return index.NewMock(
		index.ImageRow(1, 1, 100),
		index.VideoRow(2, 2, 200, 5000),
		index.ImageRow(3, 1, 300),
		index.ImageRow(4, 2, 400),
		index.VideoRow(5, 1, 500, 12000),
	)
}

func newLoaded(t *testing.T, idx *index.Mock, scope index.Scope) (*Model, *testutil.ScreenHarness) {
	t.Helper()
	m := New(Config{Source: index.NewClient(idx, nil), Scope: scope, Title: "Camera"})
	h, init := testutil.NewScreenHarness(m, 96, 30)
	h.Deliver(init)
	require.True(t, m.Loaded())
	return m, h
}

func itemIDs(items []media.Record) []int64 {
	ids := make([]int64, len(items))
	for i, r := range items {
		ids[i] = r.ID
	}
	return ids
}

func onlyAction(t *testing.T, cmd tea.Cmd) action.Msg {
	t.Helper()
	msgs := testutil.Flatten(cmd)
	require.Len(t, msgs, 1)
	am, ok := msgs[0].(action.Msg)
	require.True(t, ok, "expected action.Msg, got %T", msgs[0])
	return am
}

// requestDeletion presses delete and returns the confirmation handed to the host.
func requestDeletion(t *testing.T, h *testutil.ScreenHarness) deletion.ConfirmMsg {
	t.Helper()
	msgs := testutil.Flatten(h.Key("d"))
	require.Len(t, msgs, 1)
	c, ok := msgs[0].(deletion.ConfirmMsg)
	require.True(t, ok, "expected ConfirmMsg, got %T", msgs[0])
	return c
}

func TestLoad_ScopedAndOrdered(t *testing.T) {
	m, _ := newLoaded(t, fiveRecords(), index.InFolder(1, media.FilterAll))
	assert.Equal(t, []int64{5, 3, 1}, itemIDs(m.Items()))

	m, _ = newLoaded(t, fiveRecords(), index.Library(media.FilterVideo))
	assert.Equal(t, []int64{5, 2}, itemIDs(m.Items()))
}

func TestLoad_DropsSupersededResults(t *testing.T) {
	idx := fiveRecords()
	m, h := newLoaded(t, idx, index.Library(media.FilterAll))

	// Both queries run before either result is delivered.
	first := testutil.Flatten(h.Send(index.ChangedMsg{}))
	idx.SetRows(index.ImageRow(9, 1, 900))
	second := testutil.Flatten(h.Send(index.ChangedMsg{}))
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	require.Less(t, first[0].(LoadedMsg).Gen, second[0].(LoadedMsg).Gen)

	h.Send(second[0])
	h.Send(first[0])

	assert.Equal(t, []int64{9}, itemIDs(m.Items()), "older result dropped")
	assert.True(t, m.Loaded())
}

func TestView_ShowsTitleAndDurations(t *testing.T) {
	_, h := newLoaded(t, fiveRecords(), index.Library(media.FilterAll))

	view := h.View()
	assert.Contains(t, view, "Camera · All · 5")
	assert.Contains(t, view, "vid5.mp4")
	assert.Contains(t, view, "▶ 00:12")
	assert.Contains(t, view, "640x480")
}

func TestGridNavigation(t *testing.T) {
	m, h := newLoaded(t, fiveRecords(), index.Library(media.FilterAll))
	require.Equal(t, 4, m.columns())

	h.Key("l")
	assert.Equal(t, 1, m.Cursor())
	h.Key("j")
	assert.Equal(t, 4, m.Cursor(), "clamped to the last item")
	h.Key("k")
	assert.Equal(t, 0, m.Cursor())
	h.Key("G")
	assert.Equal(t, 4, m.Cursor())
	h.Key("g")
	assert.Equal(t, 0, m.Cursor())
}

func TestSelect_OpensViewerOnTappedItem(t *testing.T) {
	scope := index.InFolder(1, media.FilterAll)
	m, h := newLoaded(t, fiveRecords(), scope)
	h.Key("l")

	am := onlyAction(t, h.Key("enter"))
	open, ok := am.Action.(OpenViewer)
	require.True(t, ok)
	assert.Equal(t, 1, open.Index)
	assert.Equal(t, m.Items(), open.Records)
	assert.True(t, open.Scope.Equal(scope))
}

func TestSelectionMode(t *testing.T) {
	m, h := newLoaded(t, fiveRecords(), index.Library(media.FilterAll))

	h.Key("x")
	assert.True(t, m.Selection().Active())
	assert.Equal(t, []int64{5}, m.Selection().IDs())

	// Enter toggles while selecting instead of opening the viewer.
	h.Key("l")
	assert.Nil(t, h.Key("enter"))
	assert.Equal(t, []int64{4, 5}, m.Selection().IDs())
	assert.Contains(t, h.View(), "2/5 selected")

	h.Key("x")
	h.Key("h")
	h.Key("x")
	assert.False(t, m.Selection().Active(), "emptied selection leaves the mode")
}

func TestSelectAll_Toggles(t *testing.T) {
	m, h := newLoaded(t, fiveRecords(), index.Library(media.FilterAll))

	h.Key("ctrl+a")
	assert.Equal(t, 5, m.Selection().Len())
	h.Key("ctrl+a")
	assert.False(t, m.Selection().Active())
}

func TestBack_CancelsSelectionFirst(t *testing.T) {
	m, h := newLoaded(t, fiveRecords(), index.Library(media.FilterAll))

	h.Key("x")
	assert.Nil(t, h.Key("esc"))
	assert.False(t, m.Selection().Active())

	am := onlyAction(t, h.Key("esc"))
	assert.Equal(t, action.Back{}, am.Action)
}

func TestDelete_RequiresSelection(t *testing.T) {
	idx := fiveRecords()
	_, h := newLoaded(t, idx, index.Library(media.FilterAll))

	assert.Nil(t, h.Key("d"))
	assert.Empty(t, idx.DeletionRequests())
}

func TestDelete_OneRequestForWholeSelection(t *testing.T) {
	idx := fiveRecords()
	m, h := newLoaded(t, idx, index.Library(media.FilterAll))
	h.Key("x")
	h.Key("G")
	h.Key("x")

	c := requestDeletion(t, h)

	assert.Equal(t, []string{"media://video/5", "media://image/1"}, c.Request.URIs())
	assert.Len(t, idx.DeletionRequests(), 1)
	assert.Equal(t, deletion.Requested, m.Deletion())
	assert.Nil(t, h.Key("d"), "second request while one is pending")
	assert.Len(t, idx.DeletionRequests(), 1)
}

func TestDelete_CancelLeavesListsIdentical(t *testing.T) {
	idx := fiveRecords()
	m, h := newLoaded(t, idx, index.Library(media.FilterAll))
	h.Key("x")
	h.Key("l")
	h.Key("x")
	before := append([]media.Record(nil), m.Items()...)
	queries := idx.ItemQueries()

	c := requestDeletion(t, h)
	_, next := h.Deliver(deletion.CancelCmd(c))

	assert.Nil(t, next)
	assert.Equal(t, before, m.Items())
	assert.Equal(t, []int64{4, 5}, m.Selection().IDs(), "selection kept for a retry")
	assert.Equal(t, deletion.Idle, m.Deletion())
	assert.Equal(t, queries, idx.ItemQueries())
	assert.Equal(t, 0, idx.Commits())
}

func TestDelete_FailedCommitIsCancelled(t *testing.T) {
	idx := fiveRecords()
	idx.SetCommitError(errors.New("read-only"))
	m, h := newLoaded(t, idx, index.Library(media.FilterAll))
	h.Key("x")

	c := requestDeletion(t, h)
	_, next := h.Deliver(deletion.CommitCmd(context.Background(), c, nil))

	assert.Nil(t, next)
	assert.Len(t, m.Items(), 5)
	assert.True(t, m.Selection().Active())
}

func TestDelete_ConfirmClearsSelectionAndRequeriesOnce(t *testing.T) {
	idx := fiveRecords()
	m, h := newLoaded(t, idx, index.Library(media.FilterAll))
	h.Key("x")
	h.Key("l")
	h.Key("x")
	queries := idx.ItemQueries()

	c := requestDeletion(t, h)
	msgs, changed := h.Deliver(deletion.CommitCmd(context.Background(), c, nil))
	require.Len(t, msgs, 1)
	assert.Equal(t, deletion.ResolvedMsg{Ticket: c.Ticket, Outcome: deletion.Confirmed}, msgs[0])
	assert.False(t, m.Selection().Active())
	assert.Len(t, m.Items(), 5, "no speculative removal")

	held := h.Drain(changed, 5, nil)
	assert.Empty(t, held)

	assert.Equal(t, queries+1, idx.ItemQueries())
	assert.Equal(t, []int64{3, 2, 1}, itemIDs(m.Items()))
}

func TestChanged_PrunesVanishedSelection(t *testing.T) {
	idx := fiveRecords()
	m, h := newLoaded(t, idx, index.Library(media.FilterAll))
	h.Key("x")
	h.Key("l")
	h.Key("x")
	require.Equal(t, []int64{4, 5}, m.Selection().IDs())

	idx.SetRows(index.ImageRow(4, 2, 400), index.ImageRow(1, 1, 100))
	h.Deliver(h.Send(index.ChangedMsg{}))

	assert.Equal(t, []int64{4}, m.Selection().IDs())

	idx.SetRows(index.ImageRow(1, 1, 100))
	h.Deliver(h.Send(index.ChangedMsg{}))
	assert.False(t, m.Selection().Active())
	assert.Equal(t, 0, m.Cursor())
}

func TestResolved_IgnoredWithoutPendingRequest(t *testing.T) {
	m, h := newLoaded(t, fiveRecords(), index.Library(media.FilterAll))
	h.Key("x")

	assert.Nil(t, h.Send(deletion.ResolvedMsg{Outcome: deletion.Confirmed}))
	assert.True(t, m.Selection().Active())
}

func TestResolved_OtherTicketIgnoredWhilePending(t *testing.T) {
	m, h := newLoaded(t, fiveRecords(), index.Library(media.FilterAll))
	h.Key("x")
	c := requestDeletion(t, h)

	assert.Nil(t, h.Send(deletion.ResolvedMsg{Ticket: c.Ticket + 1, Outcome: deletion.Confirmed}))
	assert.Equal(t, deletion.Requested, m.Deletion())
	assert.True(t, m.Selection().Active())

	msgs := testutil.Flatten(h.Send(deletion.ResolvedMsg{Ticket: c.Ticket, Outcome: deletion.Confirmed}))
	require.Len(t, msgs, 1)
	assert.IsType(t, index.ChangedMsg{}, msgs[0])
	assert.Equal(t, deletion.Idle, m.Deletion())
}

func TestEmptyScope(t *testing.T) {
	m, h := newLoaded(t, index.NewMock(), index.Library(media.FilterAll))

	assert.Equal(t, 0, m.Len())
	assert.Contains(t, h.View(), "No media")
	assert.Nil(t, h.Key("enter"))
	assert.Nil(t, h.Key("x"))
	assert.Nil(t, h.Key("ctrl+a"))
	assert.False(t, m.Selection().Active())
}
