package editor

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/notify"
	"tasktrack/internal/tasks/data"
	"tasktrack/internal/tasks/store"
)

// spyUpdater records calls and delegates to a real store.
type spyUpdater struct {
	store   *store.Store
	updates []store.Patch
	toggles []int
}

func (s *spyUpdater) UpdateTask(id int, patch store.Patch) []data.Task {
	s.updates = append(s.updates, patch)
	return s.store.UpdateTask(id, patch)
}

func (s *spyUpdater) ToggleTask(id int) []data.Task {
	s.toggles = append(s.toggles, id)
	return s.store.ToggleTask(id)
}

func setup(t *testing.T) (*Controller, *spyUpdater, *notify.Recorder) {
	t.Helper()
	task := data.Task{
		ID:          1,
		Title:       "Buy milk",
		Description: "2%",
		LastUpdated: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
	}
	rec := &notify.Recorder{}
	spy := &spyUpdater{store: store.New([]data.Task{task}, rec)}
	return New(task, spy, rec), spy, rec
}

func TestNew_StartsCollapsed(t *testing.T) {
	c, _, _ := setup(t)
	assert.Equal(t, Collapsed, c.State())
	assert.False(t, c.State().Expanded())
	assert.Equal(t, 1, c.ID())
}

func TestHeaderClick_TogglesExpansion(t *testing.T) {
	c, _, _ := setup(t)

	c.HeaderClick()
	assert.Equal(t, ExpandedView, c.State())
	c.HeaderClick()
	assert.Equal(t, Collapsed, c.State())
}

func TestHeaderClick_FromEditDiscardsBuffers(t *testing.T) {
	c, spy, _ := setup(t)
	c.HeaderClick()
	c.EditClick()
	c.SetTitle("changed")
	c.SetDescription("changed too")

	c.HeaderClick()
	assert.Equal(t, Collapsed, c.State())
	assert.Equal(t, "Buy milk", c.TitleBuffer())
	assert.Equal(t, "2%", c.DescriptionBuffer())
	assert.Empty(t, spy.updates)
}

func TestEditClick_FromViewSeedsBuffers(t *testing.T) {
	c, _, _ := setup(t)
	c.HeaderClick()

	c.EditClick()
	assert.Equal(t, ExpandedEdit, c.State())
	assert.Equal(t, "Buy milk", c.TitleBuffer())
	assert.Equal(t, "2%", c.DescriptionBuffer())
}

func TestEditClick_FromCollapsedForcesExpansion(t *testing.T) {
	c, _, _ := setup(t)

	c.EditClick()
	assert.Equal(t, ExpandedEdit, c.State())
	assert.True(t, c.State().Expanded())
}

func TestEditClick_CancelRestoresStoredValues(t *testing.T) {
	c, spy, rec := setup(t)
	c.EditClick()
	c.SetTitle("Buy oat milk")
	c.SetDescription("")

	c.EditClick()
	assert.Equal(t, ExpandedView, c.State())
	assert.Equal(t, "Buy milk", c.TitleBuffer())
	assert.Equal(t, "2%", c.DescriptionBuffer())
	assert.Empty(t, spy.updates)
	assert.Empty(t, rec.All)
}

func TestSave_EmptyTitleStaysInEdit(t *testing.T) {
	c, spy, rec := setup(t)
	c.EditClick()
	c.SetTitle("")

	err := c.Save()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFieldsRequired))
	assert.Equal(t, ExpandedEdit, c.State())
	assert.Empty(t, spy.updates)
	assert.Equal(t, []string{"Please fill in all fields"}, rec.Messages(notify.KindError))
}

func TestSave_WhitespaceDescriptionRejected(t *testing.T) {
	c, spy, _ := setup(t)
	c.EditClick()
	c.SetDescription("   ")

	assert.ErrorIs(t, c.Save(), ErrFieldsRequired)
	assert.Empty(t, spy.updates)
}

func TestSave_SuccessUpdatesStoreAndReturnsToView(t *testing.T) {
	c, spy, rec := setup(t)
	c.EditClick()
	c.SetTitle("a")
	c.SetDescription("b")

	require.NoError(t, c.Save())
	assert.Equal(t, ExpandedView, c.State())
	require.Len(t, spy.updates, 1)
	assert.Equal(t, "a", *spy.updates[0].Title)
	assert.Equal(t, "b", *spy.updates[0].Description)

	stored, ok := spy.store.Get(1)
	require.True(t, ok)
	assert.Equal(t, "a", stored.Title)
	assert.Equal(t, "b", stored.Description)
	assert.Equal(t, stored, c.Task())
	assert.Equal(t, []string{MsgTaskUpdated}, rec.Messages(notify.KindSuccess))
}

func TestSave_OutsideEditIsNoop(t *testing.T) {
	c, spy, rec := setup(t)
	assert.NoError(t, c.Save())
	assert.Empty(t, spy.updates)
	assert.Empty(t, rec.All)
}

func TestSetBuffers_IgnoredOutsideEdit(t *testing.T) {
	c, _, _ := setup(t)
	c.SetTitle("x")
	c.SetDescription("y")
	assert.Equal(t, "Buy milk", c.TitleBuffer())
	assert.Equal(t, "2%", c.DescriptionBuffer())
}

func TestToggleClick_DoesNotChangeState(t *testing.T) {
	for _, prepare := range []func(c *Controller){
		func(c *Controller) {},
		func(c *Controller) { c.HeaderClick() },
		func(c *Controller) { c.EditClick() },
	} {
		c, spy, _ := setup(t)
		prepare(c)
		before := c.State()

		c.ToggleClick()
		assert.Equal(t, before, c.State())
		assert.Equal(t, []int{1}, spy.toggles)
		assert.True(t, c.Task().Completed)
	}
}

func TestToggleClick_KeepsEditBuffers(t *testing.T) {
	c, _, _ := setup(t)
	c.EditClick()
	c.SetTitle("typing")

	c.ToggleClick()
	assert.Equal(t, "typing", c.TitleBuffer())
}

func TestDispatch_RoutesEachEventToOneHandler(t *testing.T) {
	c, spy, _ := setup(t)

	require.NoError(t, c.Dispatch(EventToggle))
	assert.Equal(t, Collapsed, c.State(), "toggle must not reach the header handler")

	require.NoError(t, c.Dispatch(EventEdit))
	assert.Equal(t, ExpandedEdit, c.State())

	require.NoError(t, c.Dispatch(EventEdit))
	assert.Equal(t, ExpandedView, c.State(), "edit must not reach the header handler")

	require.NoError(t, c.Dispatch(EventHeader))
	assert.Equal(t, Collapsed, c.State())

	c.EditClick()
	c.SetTitle("")
	assert.ErrorIs(t, c.Dispatch(EventSave), ErrFieldsRequired)
	assert.Len(t, spy.toggles, 1)
}

func TestSync_ReplacesSnapshotKeepsBuffers(t *testing.T) {
	c, _, _ := setup(t)
	c.EditClick()
	c.SetTitle("typing")

	updated := c.Task()
	updated.Completed = true
	c.Sync(updated)

	assert.True(t, c.Task().Completed)
	assert.Equal(t, "typing", c.TitleBuffer())

	c.EditClick()
	assert.Equal(t, "Buy milk", c.TitleBuffer())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "collapsed", Collapsed.String())
	assert.Equal(t, "expanded", ExpandedView.String())
	assert.Equal(t, "editing", ExpandedEdit.String())
}
