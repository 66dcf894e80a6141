package main

import (
	"fmt"
	"strings"

	"github.com/chabad360/bitwig-osc/bitwig"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
)

var keysBase int

// keyOffsets lays out one octave on the home row, sharps on the row above.
var keyOffsets = map[string]int{
	"a": 0, "w": 1, "s": 2, "e": 3, "d": 4, "f": 5, "t": 6,
	"g": 7, "y": 8, "h": 9, "u": 10, "j": 11, "k": 12,
}

var keyOrder = []string{"a", "w", "s", "e", "d", "f", "t", "g", "y", "h", "u", "j", "k"}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	keyStyle   = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	heldStyle  = keyStyle.Background(lipgloss.Color("205")).Foreground(lipgloss.Color("0"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// keysModel turns the computer keyboard into a latching keyboard: a key press
// starts its note, the next press of the same key stops it.
type keysModel struct {
	client *bitwig.Client
	base   int
	timbre bitwig.Timbre
	err    error
}

func (m keysModel) Init() tea.Cmd { return nil }

func (m keysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil
	switch k := key.String(); k {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "z":
		if m.base-12 >= bitwig.MinNote {
			m.base -= 12
		}
	case "x":
		if m.base+12 <= bitwig.MaxNote {
			m.base += 12
		}
	case "tab":
		if m.timbre == bitwig.Melodic {
			m.timbre = bitwig.Percussive
		} else {
			m.timbre = bitwig.Melodic
		}
	case " ", "space":
		for _, t := range bitwig.Timbres {
			if err := m.client.StopAllPlayingNotes(t); err != nil {
				m.err = err
			}
		}
	default:
		offset, ok := keyOffsets[k]
		if !ok {
			return m, nil
		}
		note := m.base + offset
		if m.client.IsOn(note, m.timbre) {
			m.err = m.client.StopNote(note, m.timbre)
		} else {
			m.err = m.client.PlayNote(note, bitwig.MaxVelocity, m.timbre)
		}
	}
	return m, nil
}

func (m keysModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s from %s\n\n", titleStyle.Render("bitwig keys"), m.timbre, noteName(m.base))

	keys := make([]string, 0, len(keyOrder))
	for _, k := range keyOrder {
		note := m.base + keyOffsets[k]
		label := k + " " + noteName(note)
		if m.client.IsOn(note, m.timbre) {
			keys = append(keys, heldStyle.Render(label))
		} else {
			keys = append(keys, keyStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	b.WriteString("\n")

	for _, t := range bitwig.Timbres {
		fmt.Fprintf(&b, "%s playing: %v\n", t, m.client.PlayingNotes(t))
	}
	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString(helpStyle.Render("z/x octave  tab drums  space all off  q quit"))
	return b.String()
}

func noteName(note int) string {
	if note < bitwig.MinNote || note > bitwig.MaxNote {
		return "-"
	}
	return midi.Note(uint8(note)).String()
}

// keysCmd runs the interactive keyboard.
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Play the virtual keyboard from the terminal",
	Long: `Play the virtual keyboard from the terminal. Keys latch: press once to
start a note and again to stop it. All notes are turned off on exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(false)
		if err != nil {
			return err
		}

		m := keysModel{client: s.Client, base: keysBase, timbre: bitwig.Melodic}
		if _, err := tea.NewProgram(m).Run(); err != nil {
			_ = s.Close()
			return err
		}
		return s.Close()
	},
}

func init() {
	keysCmd.Flags().IntVar(&keysBase, "base", 60, "note played by the a key")
	RootCmd.AddCommand(keysCmd)
}
