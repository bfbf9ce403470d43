package colorpicker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func hsvFieldValues(m HSVInputs) []string {
	values := make([]string, len(m.fields.fields))
	for i, f := range m.fields.fields {
		values[i] = f.Value()
	}
	return values
}

func TestHSVInputsShowScaledValues(t *testing.T) {
	t.Parallel()

	m := NewHSVInputs(HSV{H: 0, S: 1, V: 1})
	require.Equal(t, []string{"0", "100", "100"}, hsvFieldValues(m))

	m.SetHSV(HSV{H: 0.1, S: 0.1, V: 0.1})
	require.Equal(t, []string{"36", "10", "10"}, hsvFieldValues(m))

	m.SetHSV(HSV{H: 2, S: -1, V: 0.555})
	require.Equal(t, HSV{H: 1, S: 0, V: 0.555}, m.HSV())
	require.Equal(t, []string{"360", "0", "56"}, hsvFieldValues(m))
}

func TestHSVInputsUpdatingInputsChangesValue(t *testing.T) {
	t.Parallel()

	m := NewHSVInputs(HSV{H: 0, S: 1, V: 1})

	m.Focus()
	m.fields.fields[0].SetValue("36")
	m, cmd := m.Update(enterKey)
	require.Equal(t, HSV{H: 0.1, S: 1, V: 1}, m.HSV())
	require.Equal(t, []tea.Msg{HSVChangedMsg{ID: m.ID(), HSV: HSV{H: 0.1, S: 1, V: 1}}}, collect(cmd))

	m, _ = m.Update(tabKey)
	m.fields.fields[1].SetValue("10")
	m.Blur()
	require.Equal(t, HSV{H: 0.1, S: 0.1, V: 1}, m.HSV())

	m.FocusLast()
	m.fields.fields[2].SetValue("10")
	m, _ = m.Update(enterKey)
	require.Equal(t, HSV{H: 0.1, S: 0.1, V: 0.1}, m.HSV())
}

func TestHSVInputsUntouchedFieldsKeepPrecision(t *testing.T) {
	t.Parallel()

	precise := HSV{H: 0.123456, S: 0.654321, V: 0.5}
	m := NewHSVInputs(precise)

	m.Focus()
	for range 3 {
		var cmd tea.Cmd
		m, cmd = m.Update(tabKey)
		require.Nil(t, collect(cmd))
	}
	m, cmd := m.Update(enterKey)
	require.Nil(t, cmd)
	require.Nil(t, m.Blur())
	require.Equal(t, precise, m.HSV())
}

func TestHSVInputsCommitRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		field     int
		input     string
		wantField string
		want      HSV
		wantMsg   bool
	}{
		{"not a number becomes zero", 1, "NOT A NUMBER", "0", HSV{H: 0, S: 0, V: 1}, true},
		{"nan becomes zero", 1, "nan", "0", HSV{H: 0, S: 0, V: 1}, true},
		{"fraction rounds", 2, "50.2", "50", HSV{H: 0, S: 1, V: 0.5}, true},
		{"fraction rounds half up", 0, "179.5", "180", HSV{H: 0.5, S: 1, V: 1}, true},
		{"too large is clamped", 1, "999", "100", HSV{H: 0, S: 1, V: 1}, false},
		{"hue too large is clamped", 0, "999", "360", HSV{H: 1, S: 1, V: 1}, true},
		{"negative is clamped", 1, "-999", "0", HSV{H: 0, S: 0, V: 1}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewHSVInputs(HSV{H: 0, S: 1, V: 1})
			m.Focus()
			m.fields.fields[tt.field].SetValue(tt.input)
			m, cmd := m.Update(enterKey)

			require.Equal(t, tt.wantField, m.fields.fields[tt.field].Value())
			require.Equal(t, tt.want, m.HSV())
			if tt.wantMsg {
				require.Len(t, collect(cmd), 1)
			} else {
				require.Nil(t, cmd)
			}
		})
	}
}

func TestHSVInputsClickFocusesField(t *testing.T) {
	t.Parallel()

	m := NewHSVInputs(HSV{})
	m, _ = m.Update(press(3, 7))
	require.True(t, m.Focused())
	require.Equal(t, 2, m.fields.focus)
}

func TestHSVInputsView(t *testing.T) {
	t.Parallel()

	m := NewHSVInputs(HSV{H: 0.5, S: 0.25, V: 0.75})
	view := m.View()
	for _, want := range []string{"H:", "S:", "V:", "180", "25", "75"} {
		require.Contains(t, view, want)
	}
}
