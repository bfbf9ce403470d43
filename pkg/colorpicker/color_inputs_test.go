package colorpicker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var yellow = Color{R: 255, G: 255, B: 0}

func TestColorInputsColorIsClamped(t *testing.T) {
	t.Parallel()

	m := NewColorInputs(Color{R: 999, G: 999, B: 999})
	require.Equal(t, White, m.Color())
	require.Equal(t, "#FFFFFF", m.Hex().Value())
}

func TestColorInputsSetColorUpdatesChildren(t *testing.T) {
	t.Parallel()

	m := NewColorInputs(Red)
	cmd := m.SetColor(cyan)

	require.Equal(t, cyan, m.Color())
	require.Equal(t, cyan, m.RGB().Color())
	require.Equal(t, cyan.HSV(), m.HSVInputs().HSV())
	require.Equal(t, "#00FFFF", m.Hex().Value())
	require.Equal(t, []tea.Msg{InputsChangedMsg{ID: m.ID(), Color: cyan, HSV: cyan.HSV()}}, collect(cmd))

	require.Nil(t, m.SetColor(cyan))
}

func TestColorInputsChildChangesSync(t *testing.T) {
	t.Parallel()

	t.Run("rgb", func(t *testing.T) {
		t.Parallel()

		m := NewColorInputs(Red)
		m, msgs := settle(t, m, m.rgbIn.SetColor(cyan))
		require.Equal(t, cyan, m.Color())
		require.Equal(t, cyan.HSV(), m.HSVInputs().HSV())
		require.Equal(t, "#00FFFF", m.Hex().Value())
		require.Equal(t, []tea.Msg{
			RGBChangedMsg{ID: m.RGB().ID(), Color: cyan},
			InputsChangedMsg{ID: m.ID(), Color: cyan, HSV: cyan.HSV()},
		}, msgs)
	})

	t.Run("hsv", func(t *testing.T) {
		t.Parallel()

		m := NewColorInputs(Red)
		m, _ = settle(t, m, m.hsvIn.SetHSV(HSV{H: 0.5, S: 1, V: 1}))
		require.Equal(t, cyan, m.Color())
		require.Equal(t, cyan, m.RGB().Color())
		require.Equal(t, "#00FFFF", m.Hex().Value())
	})

	t.Run("hex", func(t *testing.T) {
		t.Parallel()

		m := NewColorInputs(Red)
		cmd, err := m.hexIn.SetValue("#00ffff")
		require.NoError(t, err)
		m, _ = settle(t, m, cmd)
		require.Equal(t, cyan, m.Color())
		require.Equal(t, cyan, m.RGB().Color())
		require.Equal(t, cyan.HSV(), m.HSVInputs().HSV())
	})

	t.Run("foreign messages are ignored", func(t *testing.T) {
		t.Parallel()

		m := NewColorInputs(Red)
		other := NewRGBInputs(Red)
		m, msgs := settle(t, m, other.SetColor(cyan))
		require.Equal(t, Red, m.Color())
		require.Len(t, msgs, 1)
	})
}

func TestColorInputsAchromaticKeepsHue(t *testing.T) {
	t.Parallel()

	m := NewColorInputs(cyan)

	m, _ = settle(t, m, m.hsvIn.SetHSV(HSV{H: 0.5, S: 0, V: 0.5}))
	require.Equal(t, Color{R: 128, G: 128, B: 128}, m.Color())
	require.Equal(t, HSV{H: 0.5, S: 0, V: 0.5}, m.HSVInputs().HSV())

	m, _ = settle(t, m, m.rgbIn.SetColor(Color{R: 100, G: 100, B: 100}))
	require.Equal(t, 0.5, m.HSV().H)
	require.Equal(t, 0.0, m.HSV().S)

	m.SetColor(cyan)
	m.SetColor(Black)
	require.Equal(t, HSV{H: 0.5, S: 1, V: 0}, m.HSV())
}

func TestColorInputsTyping(t *testing.T) {
	t.Parallel()

	m := NewColorInputs(Red)
	m.Focus()
	m, _ = m.Update(tabKey)
	require.Equal(t, 1, m.RGB().fields.focus)

	m, _ = m.Update(keyMsg(tea.KeyBackspace))
	m, _ = m.Update(runes("255"))
	m, cmd := m.Update(enterKey)
	m, _ = settle(t, m, cmd)

	require.Equal(t, yellow, m.Color())
	require.Equal(t, yellow.HSV(), m.HSVInputs().HSV())
	require.Equal(t, "#FFFF00", m.Hex().Value())
}

func TestColorInputsFocusCycle(t *testing.T) {
	t.Parallel()

	type position struct {
		section inputSection
		field   int
	}
	current := func(m ColorInputs) position {
		switch m.focus {
		case sectionRGB:
			return position{sectionRGB, m.rgbIn.fields.focus}
		case sectionHSV:
			return position{sectionHSV, m.hsvIn.fields.focus}
		case sectionHex:
			return position{sectionHex, m.hexIn.fields.focus}
		}
		return position{sectionNone, -1}
	}

	m := NewColorInputs(Red)
	require.Equal(t, position{sectionNone, -1}, current(m))

	m.Focus()
	want := []position{
		{sectionRGB, 1}, {sectionRGB, 2},
		{sectionHSV, 0}, {sectionHSV, 1}, {sectionHSV, 2},
		{sectionHex, 0},
		{sectionRGB, 0},
	}
	for _, w := range want {
		m, _ = m.Update(tabKey)
		require.Equal(t, w, current(m))
	}

	m, _ = m.Update(shiftTabKey)
	require.Equal(t, position{sectionHex, 0}, current(m))
	m, _ = m.Update(shiftTabKey)
	require.Equal(t, position{sectionHSV, 2}, current(m))

	require.False(t, m.RGB().Focused())
	require.False(t, m.Hex().Focused())

	m.Blur()
	require.False(t, m.Focused())
	require.False(t, m.HSVInputs().Focused())
}

func TestColorInputsClicks(t *testing.T) {
	t.Parallel()

	m := NewColorInputs(Red)
	rgbWidth := m.RGB().Width()

	m, _ = m.Update(press(rgbWidth+3, 4))
	require.Equal(t, sectionHSV, m.focus)
	require.Equal(t, 1, m.hsvIn.fields.focus)

	m, _ = m.Update(press(3, 7))
	require.Equal(t, sectionRGB, m.focus)
	require.Equal(t, 2, m.rgbIn.fields.focus)
	require.False(t, m.HSVInputs().Focused(), "clicking another section blurs the old one")

	// Leaving an edited field commits it.
	m.rgbIn.fields.fields[1].SetValue("255")
	m.rgbIn.fields.fields[2].SetValue("0")
	m, cmd := m.Update(press(hexOffset.x+2, m.topHeight()+hexOffset.y+1))
	require.Equal(t, sectionHex, m.focus)
	m, _ = settle(t, m, cmd)
	require.Equal(t, yellow, m.Color())

	// The gap beside the hex input is empty.
	m, _ = m.Update(press(0, m.topHeight()+hexOffset.y))
	require.Equal(t, sectionHex, m.focus)
}

func TestColorInputsView(t *testing.T) {
	t.Parallel()

	m := NewColorInputs(cyan)
	view := m.View()
	for _, want := range []string{"R:", "G:", "B:", "H:", "S:", "V:", "#", "00FFFF", "180"} {
		require.Contains(t, view, want)
	}
}

func TestColorInputsBlurAppliesPendingEdit(t *testing.T) {
	t.Parallel()

	m := NewColorInputs(Red)
	m.Focus()
	m.rgbIn.fields.fields[1].SetValue("255")

	cmd := m.Blur()
	require.False(t, m.Focused())
	require.Equal(t, yellow, m.Color())
	require.Equal(t, yellow, m.Hex().Color())
	require.Equal(t, yellow.HSV(), m.HSVInputs().HSV())
	require.Equal(t, []tea.Msg{InputsChangedMsg{ID: m.ID(), Color: yellow, HSV: yellow.HSV()}}, collect(cmd))

	require.Nil(t, m.Blur())
}
