package grouping_test

import (
	"testing"

	"grouping-service/internal/domain"
	"grouping-service/internal/grouping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScenarioEditor(readOnly bool) (*grouping.Editor, *recordingAssigner) {
	assigner := &recordingAssigner{}
	editor := grouping.NewEditor(grouping.Props{
		Teams:    []*domain.Team{team("t1", nil)},
		Stages:   []*domain.Stage{stage("s1", "Pool A")},
		OnAssign: assigner,
		ReadOnly: readOnly,
	})
	return editor, assigner
}

func TestEditor_ScenarioA_DropOnPool(t *testing.T) {
	editor, assigner := newScenarioEditor(false)

	editor.BeginDrag("t1")
	outcome := editor.EndDrag(strPtr("Pool A"))

	assert.Equal(t, grouping.OutcomeAssigned, outcome)
	require.Len(t, assigner.calls, 1)
	assert.Equal(t, "t1", assigner.calls[0].teamID)
	assert.Equal(t, strPtr("Pool A"), assigner.calls[0].poolName)
	assert.Equal(t, grouping.Idle{}, editor.Session())
}

func TestEditor_ScenarioB_DropOnUnassigned(t *testing.T) {
	editor, assigner := newScenarioEditor(false)

	editor.BeginDrag("t1")
	outcome := editor.EndDrag(strPtr(grouping.UnassignedContainerID))

	assert.Equal(t, grouping.OutcomeUnassigned, outcome)
	require.Len(t, assigner.calls, 1)
	assert.Equal(t, "t1", assigner.calls[0].teamID)
	assert.Nil(t, assigner.calls[0].poolName)
}

func TestEditor_ScenarioC_UnknownContainer(t *testing.T) {
	editor, assigner := newScenarioEditor(false)

	editor.BeginDrag("t1")
	outcome := editor.EndDrag(strPtr("Pool B"))

	assert.Equal(t, grouping.OutcomeUnmatched, outcome)
	assert.Empty(t, assigner.calls)
	assert.Equal(t, grouping.Idle{}, editor.Session())
}

func TestEditor_ScenarioD_ReadOnly(t *testing.T) {
	editor, assigner := newScenarioEditor(true)

	started := editor.BeginDrag("t1")
	board := editor.Render()
	outcome := editor.EndDrag(strPtr("Pool A"))
	editor.BeginDrag("t1")
	editor.EndDrag(strPtr(grouping.UnassignedContainerID))

	assert.False(t, started)
	assert.Nil(t, board.Overlay)
	assert.Equal(t, grouping.OutcomeIgnored, outcome)
	assert.Empty(t, assigner.calls)
	assert.Equal(t, grouping.Idle{}, editor.Session())
}

func TestEditor_CancelDoesNotResolve(t *testing.T) {
	editor, assigner := newScenarioEditor(false)

	editor.BeginDrag("t1")
	assert.Equal(t, grouping.Dragging{TeamID: "t1"}, editor.Session())

	outcome := editor.Cancel()

	assert.Equal(t, grouping.OutcomeCancelled, outcome)
	assert.Empty(t, assigner.calls)
	assert.Equal(t, grouping.Idle{}, editor.Session())
	assert.Nil(t, editor.Render().Overlay)
}

func TestEditor_NestedBeginDragIgnored(t *testing.T) {
	assigner := &recordingAssigner{}
	editor := grouping.NewEditor(grouping.Props{
		Teams:    []*domain.Team{team("t1", nil), team("t2", nil)},
		Stages:   []*domain.Stage{stage("s1", "Pool A")},
		OnAssign: assigner,
	})

	assert.True(t, editor.BeginDrag("t1"))
	assert.False(t, editor.BeginDrag("t2"))
	editor.EndDrag(strPtr("Pool A"))

	require.Len(t, assigner.calls, 1)
	assert.Equal(t, "t1", assigner.calls[0].teamID)
}

func TestEditor_EndDragWithoutBegin(t *testing.T) {
	editor, assigner := newScenarioEditor(false)

	outcome := editor.EndDrag(strPtr("Pool A"))

	assert.Equal(t, grouping.OutcomeIgnored, outcome)
	assert.Empty(t, assigner.calls)
}

func TestEditor_UnassignedDropRepeatedIsSafe(t *testing.T) {
	editor, assigner := newScenarioEditor(false)

	for i := 0; i < 2; i++ {
		editor.BeginDrag("t1")
		editor.EndDrag(strPtr(grouping.UnassignedContainerID))
	}

	require.Len(t, assigner.calls, 2)
	assert.Equal(t, assigner.calls[0], assigner.calls[1])
}

func TestEditor_ReadOnlyNeverAssigns(t *testing.T) {
	editor, assigner := newScenarioEditor(true)
	containers := []*string{nil, strPtr("Pool A"), strPtr(grouping.UnassignedContainerID), strPtr("nope")}

	for _, over := range containers {
		editor.BeginDrag("t1")
		editor.EndDrag(over)
		editor.Cancel()
	}

	assert.Empty(t, assigner.calls)
}

func TestEditor_FilteredTeamIsNotDraggable(t *testing.T) {
	x := "X"
	y := "Y"
	assigner := &recordingAssigner{}
	editor := grouping.NewEditor(grouping.Props{
		Teams: []*domain.Team{
			{ID: "t1", Name: "Lions", TournamentCategoryID: &y, Category: "U18"},
			{ID: "t2", Name: "Tigers", TournamentCategoryID: &x},
		},
		Stages:     []*domain.Stage{stage("s1", "Pool A")},
		CategoryID: "X",
		OnAssign:   assigner,
	})

	assert.False(t, editor.BeginDrag("t1"))
	editor.EndDrag(strPtr("Pool A"))

	board := editor.Render()
	var shown []string
	for _, c := range board.Containers() {
		for _, card := range c.Cards {
			shown = append(shown, card.TeamID)
		}
	}

	assert.Empty(t, assigner.calls)
	assert.Equal(t, []string{"t2"}, shown)
}

func TestEditor_ReadOnlySwitchMidDragClearsSession(t *testing.T) {
	editor, assigner := newScenarioEditor(false)
	editor.BeginDrag("t1")

	props := editor.Props()
	props.ReadOnly = true
	editor.SetProps(props)

	assert.Nil(t, editor.Render().Overlay)
	assert.Equal(t, grouping.OutcomeIgnored, editor.EndDrag(strPtr("Pool A")))
	assert.Empty(t, assigner.calls)
	assert.Equal(t, grouping.Idle{}, editor.Session())
}

func TestEditor_NilAssigner(t *testing.T) {
	editor := grouping.NewEditor(grouping.Props{
		Teams:  []*domain.Team{team("t1", nil)},
		Stages: []*domain.Stage{stage("s1", "Pool A")},
	})

	editor.BeginDrag("t1")

	assert.NotPanics(t, func() {
		assert.Equal(t, grouping.OutcomeAssigned, editor.EndDrag(strPtr("Pool A")))
	})
}
