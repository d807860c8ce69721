package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapes/internal/ui"
)

func TestStore_NotifiesInOrder(t *testing.T) {
	s := ui.NewStore()
	var got []string
	s.Subscribe(func(prev, next ui.State) { got = append(got, "a:"+next.Kind.String()) })
	s.Subscribe(func(prev, next ui.State) { got = append(got, "b:"+next.Kind.String()) })

	s.Set(ui.LoadingState())
	s.Set(ui.HelloState())

	assert.Equal(t, []string{"a:loading", "b:loading", "a:hello", "b:hello"}, got)
	assert.Equal(t, ui.Hello, s.Current().Kind)
}

func TestStore_CancelStopsNotifications(t *testing.T) {
	s := ui.NewStore()
	calls := 0
	cancel := s.Subscribe(func(prev, next ui.State) { calls++ })

	s.Set(ui.LoadingState())
	cancel()
	cancel()
	s.Set(ui.HelloState())

	assert.Equal(t, 1, calls)
}

func TestState_ExactlyOneScreenRegionVisible(t *testing.T) {
	states := []ui.State{
		{},
		ui.LoadingState(),
		ui.HelloState(),
		ui.ShapeState("circle"),
		ui.ConfusedState(errors.New("boom")),
	}
	screens := []ui.Region{ui.RegionStart, ui.RegionSpinner, ui.RegionHello, ui.RegionShape, ui.RegionConfused}
	for _, st := range states {
		visible := 0
		for _, r := range screens {
			if st.Visible(r) {
				visible++
			}
		}
		require.Equal(t, 1, visible, "state %s", st.Kind)
	}
}

func TestState_DerivedDetails(t *testing.T) {
	assert.Equal(t, "shape-square", ui.ShapeState("square").ShapeClass())
	assert.Empty(t, ui.HelloState().ShapeClass())
	assert.Equal(t, "503 Service Unavailable", ui.ConfusedState(errors.New("503 Service Unavailable")).Message)
	assert.True(t, ui.HelloState().Visible(ui.RegionSuccess))
	assert.False(t, ui.ConfusedState(nil).Visible(ui.RegionSuccess))
}
