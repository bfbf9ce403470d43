package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huepick/pkg/colorpicker"
)

func TestNewModelInitialisesState(t *testing.T) {
	t.Parallel()

	m := newPickerModel(Options{})

	require.Equal(t, "huepick", m.title)
	require.Equal(t, colorpicker.Red, m.Color())
	require.False(t, m.IsFinished())
	require.True(t, m.widget.(PickerWidget).picker.Focused(), "the widget starts focused")

	c, ok := m.Result()
	require.Equal(t, colorpicker.Red, c)
	require.False(t, ok)
}

func TestNewModelDefaultsCopyToClipboard(t *testing.T) {
	t.Parallel()

	m := NewModel(NewInputsWidget(cyan), Options{Title: "inputs"})
	require.NotNil(t, m.copy)
	require.Equal(t, "inputs", m.title)
	require.Equal(t, cyan, m.Color())
}

func TestModelInit(t *testing.T) {
	t.Parallel()

	m := newPickerModel(Options{})
	require.Nil(t, m.Init())
}

func TestModelOffsetCentersWidget(t *testing.T) {
	t.Parallel()

	m := newPickerModel(Options{})
	x, y := m.offset()
	require.Zero(t, x)
	require.Equal(t, headerRows, y)

	m.width = 81
	x, _ = m.offset()
	require.Equal(t, (81-m.widget.Width())/2, x)

	m.width = 10
	x, _ = m.offset()
	require.Zero(t, x, "narrow terminals pin the widget to the left")
}
