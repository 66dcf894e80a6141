package main

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/chabad360/bitwig-osc/bitwig"
	"github.com/chabad360/bitwig-osc/osc"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zaptest"
)

type addressRecorder struct {
	mu   sync.Mutex
	sent []string
}

func (r *addressRecorder) Send(p osc.Packet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, p.(*osc.Message).String())
	return nil
}

func (r *addressRecorder) take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	sent := r.sent
	r.sent = nil
	return sent
}

func press(t *testing.T, m keysModel, key tea.KeyMsg) (keysModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	km := next.(keysModel)
	if km.err != nil {
		t.Fatalf("after %q: %v", key.String(), km.err)
	}
	return km, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysModel(t *testing.T) {
	rec := &addressRecorder{}
	c, err := bitwig.Dial(bitwig.WithTransport(rec), bitwig.WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	m := keysModel{client: c, base: 60, timbre: bitwig.Melodic}

	m, _ = press(t, m, runes("a"))
	if !c.IsOn(60, bitwig.Melodic) {
		t.Fatal("a did not start note 60")
	}
	m, _ = press(t, m, runes("a"))
	if c.IsOn(60, bitwig.Melodic) {
		t.Fatal("second a did not stop note 60")
	}
	if got, want := rec.take(), []string{"/vkb_midi/1/note/60 ,i 127", "/vkb_midi/1/note/60 ,i 0"}; strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("sent %q, want %q", got, want)
	}

	m, _ = press(t, m, runes("x"))
	m, _ = press(t, m, runes("w"))
	if !c.IsOn(73, bitwig.Melodic) {
		t.Errorf("w after x did not start note 73, playing %v", c.PlayingNotes(bitwig.Melodic))
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, runes("a"))
	if !c.IsOn(72, bitwig.Percussive) {
		t.Errorf("a after tab did not start drum 72, playing %v", c.PlayingNotes(bitwig.Percussive))
	}

	view := m.View()
	if !strings.Contains(view, "drum playing: [72]") || !strings.Contains(view, "note playing: [73]") {
		t.Errorf("view does not list the held notes:\n%s", view)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for _, timbre := range bitwig.Timbres {
		if n := len(c.PlayingNotes(timbre)); n != 0 {
			t.Errorf("%d %v notes still playing after space", n, timbre)
		}
	}

	if _, cmd := press(t, m, runes("q")); cmd == nil {
		t.Error("q did not quit")
	}
}

func TestKeysModel_OctaveBounds(t *testing.T) {
	c, err := bitwig.Dial(bitwig.WithTransport(&addressRecorder{}), bitwig.WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	m := keysModel{client: c, base: 5, timbre: bitwig.Melodic}
	m, _ = press(t, m, runes("z"))
	if m.base != 5 {
		t.Errorf("base = %d after z, want 5", m.base)
	}

	m.base = 120
	m, _ = press(t, m, runes("x"))
	if m.base != 120 {
		t.Errorf("base = %d after x, want 120", m.base)
	}
}

func TestPrintMessage(t *testing.T) {
	var buf bytes.Buffer
	method := printMessage(&buf, "")
	method.HandleMessage(osc.NewMessage("/vkb_midi/1/note/60", int32(100)))
	method.HandleMessage(osc.NewMessage("/undo"))

	out := buf.String()
	for _, want := range []string{"/vkb_midi/1/note/60", "100", "/undo"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestPrintMessage_Match(t *testing.T) {
	var buf bytes.Buffer
	method := printMessage(&buf, "/vkb_midi/1/{note,drum}/60")
	method.HandleMessage(osc.NewMessage("/vkb_midi/1/drum/60", int32(100)))
	method.HandleMessage(osc.NewMessage("/undo"))
	method.HandleMessage(osc.NewMessage("/vkb_midi/1/note/61", int32(100)))

	out := buf.String()
	if !strings.Contains(out, "/vkb_midi/1/drum/60") {
		t.Errorf("matching message missing from %q", out)
	}
	for _, unwanted := range []string{"/undo", "/vkb_midi/1/note/61"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("output %q contains %q", out, unwanted)
		}
	}
}
