package colorpicker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestColorPickerDefaults(t *testing.T) {
	t.Parallel()

	m := New()
	require.Equal(t, Red, m.Color())
	require.Equal(t, HSV{H: 0, S: 1, V: 1}, m.HSV())
	require.Equal(t, 36, m.SaturationValue().Width())
	require.Equal(t, 17, m.SaturationValue().Height())
	require.Equal(t, 36, m.Hue().Width())
	require.Equal(t, 6, m.Preview().Height())
	require.Equal(t, m.Inputs().Width(), m.Preview().Width())
	require.False(t, m.Focused())
}

func TestColorPickerColorIsClamped(t *testing.T) {
	t.Parallel()

	m := New(WithColor(Color{R: 999, G: -5, B: 0}))
	require.Equal(t, Red, m.Color())

	m.SetColor(Color{R: -1, G: 300, B: 300})
	require.Equal(t, cyan, m.Color())
}

func TestColorPickerSetColorUpdatesChildren(t *testing.T) {
	t.Parallel()

	m := New()
	cmd := m.SetColor(cyan)

	require.Equal(t, []tea.Msg{ColorChangedMsg{ID: m.ID(), Color: cyan, HSV: cyan.HSV()}}, collect(cmd))
	require.Equal(t, 0.5, m.Hue().Hue())
	require.Equal(t, cyan.HSV(), m.SaturationValue().HSV())
	require.Equal(t, cyan, m.Preview().Color())
	require.Equal(t, cyan, m.Inputs().Color())
	require.Equal(t, "#00FFFF", m.Inputs().Hex().Value())

	require.Nil(t, m.SetColor(cyan), "unchanged color emits nothing")
}

func TestColorPickerChildChanges(t *testing.T) {
	t.Parallel()

	t.Run("inputs", func(t *testing.T) {
		t.Parallel()

		m := New()
		m, msgs := settle(t, m, m.inputs.SetColor(cyan))
		require.Equal(t, cyan, m.Color())
		require.Equal(t, 0.5, m.Hue().Hue())
		require.Equal(t, cyan, m.Preview().Color())
		require.Contains(t, msgs, tea.Msg(ColorChangedMsg{ID: m.ID(), Color: cyan, HSV: cyan.HSV()}))
	})

	t.Run("hue", func(t *testing.T) {
		t.Parallel()

		m := New()
		m, _ = settle(t, m, m.hue.SetHue(0.5))
		require.Equal(t, cyan, m.Color())
		require.Equal(t, 0.5, m.SaturationValue().HSV().H)
		require.Equal(t, cyan, m.Inputs().RGB().Color())
	})

	t.Run("saturation and value", func(t *testing.T) {
		t.Parallel()

		m := New()
		m, _ = settle(t, m, m.sv.SetHSV(HSV{H: 0, S: 0, V: 1}))
		require.Equal(t, White, m.Color())
		require.Equal(t, "#FFFFFF", m.Inputs().Hex().Value())
		require.Equal(t, 0.0, m.Hue().Hue())
	})

	t.Run("rgb field edit", func(t *testing.T) {
		t.Parallel()

		m := New()
		m, msgs := settle(t, m, m.inputs.rgbIn.SetColor(yellow))
		require.Equal(t, yellow, m.Color())
		require.Equal(t, yellow.HSV().H, m.Hue().Hue())
		require.Len(t, msgs, 3)
	})
}

func TestColorPickerGrayKeepsHue(t *testing.T) {
	t.Parallel()

	m := New(WithColor(cyan))
	m, _ = settle(t, m, m.sv.SetHSV(HSV{H: 0.5, S: 0, V: 0.5}))
	require.Equal(t, Color{R: 128, G: 128, B: 128}, m.Color())
	require.Equal(t, 0.5, m.Hue().Hue())

	m.SetColor(Black)
	require.Equal(t, HSV{H: 0.5, S: 0, V: 0}, m.HSV())
	require.Equal(t, 0.5, m.Hue().Hue())
}

func TestColorPickerMouse(t *testing.T) {
	t.Parallel()

	t.Run("hue strip", func(t *testing.T) {
		t.Parallel()

		m := New(WithPickerSize(35, 17))
		m, cmd := m.Update(press(17, 18))
		require.Equal(t, partHue, m.focus)
		m, _ = settle(t, m, cmd)
		require.Equal(t, cyan, m.Color())
		require.True(t, m.Hue().Focused())
	})

	t.Run("saturation value drag", func(t *testing.T) {
		t.Parallel()

		m := New(WithPickerSize(35, 17))
		m, cmd := m.Update(press(0, 0))
		require.Equal(t, partSaturationValue, m.focus)
		m, _ = settle(t, m, cmd)
		require.Equal(t, White, m.Color())

		m, cmd = m.Update(motion(34, 16))
		m, _ = settle(t, m, cmd)
		require.Equal(t, Black, m.Color())
		require.Equal(t, HSV{H: 0, S: 1, V: 0}, m.HSV())

		m, cmd = m.Update(motion(100, 100))
		require.Nil(t, collect(cmd), "drag is clamped to the grid")

		m, _ = m.Update(release(100, 100))
		m, cmd = m.Update(motion(17, 8))
		require.Nil(t, collect(cmd), "motion after release is ignored")
		require.Equal(t, Black, m.Color())
	})

	t.Run("inputs", func(t *testing.T) {
		t.Parallel()

		m := New(WithPickerSize(35, 17))
		x := m.rightX() + 3
		y := m.inputsY() + 4
		m, _ = m.Update(press(x, y))
		require.Equal(t, partInputs, m.focus)
		require.Equal(t, 1, m.Inputs().RGB().fields.focus)

		m, _ = m.Update(press(m.Width()+5, 0))
		require.Equal(t, partInputs, m.focus, "clicks outside every part are ignored")
	})
}

func TestColorPickerFocusRing(t *testing.T) {
	t.Parallel()

	m := New()
	m.Focus()
	require.Equal(t, partSaturationValue, m.focus)
	require.True(t, m.SaturationValue().Focused())

	m, _ = m.Update(tabKey)
	require.Equal(t, partHue, m.focus)
	require.False(t, m.SaturationValue().Focused())
	require.True(t, m.Hue().Focused())

	m, _ = m.Update(tabKey)
	require.Equal(t, partInputs, m.focus)
	require.Equal(t, sectionRGB, m.Inputs().focus)

	for range 6 {
		m, _ = m.Update(tabKey)
	}
	require.Equal(t, sectionHex, m.Inputs().focus)

	m, _ = m.Update(tabKey)
	require.Equal(t, partSaturationValue, m.focus)
	require.False(t, m.Inputs().Focused())

	m, _ = m.Update(shiftTabKey)
	require.Equal(t, partInputs, m.focus)
	require.Equal(t, sectionHex, m.Inputs().focus)

	m.Blur()
	require.False(t, m.Focused())
	require.False(t, m.Inputs().Focused())
}

func TestColorPickerKeyboard(t *testing.T) {
	t.Parallel()

	m := New()
	m.Focus()
	m, cmd := m.Update(keyMsg(tea.KeyDown))
	m, _ = settle(t, m, cmd)
	require.InDelta(t, 0.99, m.HSV().V, 1e-9)

	m, _ = m.Update(tabKey)
	m, cmd = m.Update(keyMsg(tea.KeyEnd))
	m, _ = settle(t, m, cmd)
	require.Equal(t, 1.0, m.HSV().H)
	require.Equal(t, ColorFromHSV(HSV{H: 0, S: 1, V: 0.99}), m.Color())

	// Typing into a field through the picker.
	m, _ = m.Update(tabKey)
	for range 3 {
		m, _ = m.Update(keyMsg(tea.KeyBackspace))
	}
	m, _ = m.Update(runes("0"))
	m, cmd = m.Update(tabKey)
	m, _ = settle(t, m, cmd)
	require.Equal(t, Black, m.Color(), "leaving the field commits it")
	for range 3 {
		m, _ = m.Update(keyMsg(tea.KeyBackspace))
	}
	m, _ = m.Update(runes("255"))
	m, cmd = m.Update(enterKey)
	m, _ = settle(t, m, cmd)
	require.Equal(t, Color{R: 0, G: 255, B: 0}, m.Color())
	require.Equal(t, m.Color(), m.Preview().Color())
}

func TestColorPickerDisabled(t *testing.T) {
	t.Parallel()

	m := New(WithDisabled(true), WithPickerSize(35, 17))
	require.True(t, m.Disabled())
	require.Nil(t, m.Focus())
	require.False(t, m.Focused())

	m, cmd := m.Update(press(17, 18))
	require.Nil(t, cmd)
	require.Equal(t, Red, m.Color())

	m.SetDisabled(false)
	m.Focus()
	require.True(t, m.Focused())
}

func TestColorPickerView(t *testing.T) {
	t.Parallel()

	m := New(WithPickerSize(35, 17))
	view := m.View()

	require.Equal(t, m.Height(), lipgloss.Height(view))
	require.Equal(t, m.Width(), lipgloss.Width(view))
	require.Contains(t, view, "#FF0000")
	require.Contains(t, view, "R:")
	require.Contains(t, view, "H:")

	lines := strings.Split(view, "\n")
	require.Contains(t, lines[m.hueY()], "▼")
	require.Contains(t, lines[m.hueY()+1], "▲")
}

func TestColorPickerBlurAppliesPendingEdit(t *testing.T) {
	t.Parallel()

	m := New()
	m.Focus()
	m, _ = m.Update(tabKey)
	m, _ = m.Update(tabKey)
	require.Equal(t, partInputs, m.focus)
	m.inputs.rgbIn.fields.fields[1].SetValue("255")

	cmd := m.Blur()
	require.Equal(t, yellow, m.Color())
	require.Equal(t, yellow, m.Preview().Color())
	require.Equal(t, yellow.HSV().H, m.Hue().Hue())
	require.Equal(t, []tea.Msg{ColorChangedMsg{ID: m.ID(), Color: yellow, HSV: yellow.HSV()}}, collect(cmd))
}

func TestColorPickerPreviewClickSwitchesLabel(t *testing.T) {
	t.Parallel()

	m := New(WithPickerSize(35, 17))
	m, cmd := m.Update(press(m.rightX()+2, 1))
	require.Nil(t, cmd)
	require.Equal(t, PreviewRGB, m.Preview().Format())
	require.Contains(t, m.View(), "rgb(255, 0, 0)")
	require.Equal(t, Red, m.Color())
	require.False(t, m.Focused())
}
