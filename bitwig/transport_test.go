package bitwig

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestCommands_Wire(t *testing.T) {
	tests := []struct {
		name   string
		action func(c *Client) error
		want   []interface{} // address followed by arguments
	}{
		{"arm", func(c *Client) error { return c.ArmTrack(3) }, []interface{}{"/track/3/recarm", int32(1)}},
		{"disarm", func(c *Client) error { return c.DisarmTrack(3) }, []interface{}{"/track/3/recarm", int32(0)}},
		{"toggle arm", func(c *Client) error { return c.ToggleArmTrack(3) }, []interface{}{"/track/3/recarm"}},
		{"record arm switch", func(c *Client) error { return c.RecordArm(2, Toggle) }, []interface{}{"/track/2/recarm"}},
		{"preroll", func(c *Client) error { return c.Preroll(4) }, []interface{}{"/preroll", int32(4)}},
		{"preroll off", func(c *Client) error { return c.Preroll(0) }, []interface{}{"/preroll", int32(0)}},
		{"undo", (*Client).Undo, []interface{}{"/undo"}},
		{"redo", (*Client).Redo, []interface{}{"/redo"}},
		{"next project", (*Client).NextProject, []interface{}{"/project/+"}},
		{"previous project", (*Client).PreviousProject, []interface{}{"/project/-"}},
		{"engine on", func(c *Client) error { return c.Engine(On) }, []interface{}{"/project/engine", int32(1)}},
		{"engine off", func(c *Client) error { return c.Engine(Off) }, []interface{}{"/project/engine", int32(0)}},
		{"engine toggle", func(c *Client) error { return c.Engine(Toggle) }, []interface{}{"/project/engine"}},
		{"save", (*Client).SaveProject, []interface{}{"/project/save"}},
		{"stop", (*Client).Stop, []interface{}{"/stop", int32(1)}},
		{"play", (*Client).Play, []interface{}{"/play", int32(1)}},
		{"restart", (*Client).Restart, []interface{}{"/restart", int32(1)}},
		{"repeat", (*Client).Repeat, []interface{}{"/repeat", int32(1)}},
		{"record", (*Client).Record, []interface{}{"/record", int32(1)}},
		{"overdub", (*Client).Overdub, []interface{}{"/overdub", int32(1)}},
		{"punch in", (*Client).PunchIn, []interface{}{"/punchIn", int32(1)}},
		{"punch out", (*Client).PunchOut, []interface{}{"/punchOut", int32(1)}},
		{"click on", func(c *Client) error { return c.Click(On) }, []interface{}{"/click", int32(1)}},
		{"click toggle", func(c *Client) error { return c.Click(Toggle) }, []interface{}{"/click"}},
		{"click volume", func(c *Client) error { return c.ClickVolume(90) }, []interface{}{"/click/volume", int32(90)}},
		{"click preroll", func(c *Client) error { return c.ClickPreroll(Toggle) }, []interface{}{"/click/preroll"}},
		{"crossfade", func(c *Client) error { return c.Crossfade(127) }, []interface{}{"/crossfade", int32(127)}},
		{"autowrite", func(c *Client) error { return c.Autowrite(true) }, []interface{}{"/autowrite", int32(1)}},
		{"autowrite launcher", func(c *Client) error { return c.AutowriteLauncher(false) }, []interface{}{"/autowrite/launcher", int32(0)}},
		{"write mode", func(c *Client) error { return c.AutomationWriteMode(Touch) }, []interface{}{"/automationWriteMode", "touch"}},
		{"tempo", func(c *Client) error { return c.Tempo(666) }, []interface{}{"/tempo/raw", int32(666)}},
		{"tap", (*Client).TapTempo, []interface{}{"/tempo/tap"}},
		{"position +", (*Client).PositionForward, []interface{}{"/position/+"}},
		{"position -", (*Client).PositionBackward, []interface{}{"/position/-"}},
		{"position ++", (*Client).PositionFastForward, []interface{}{"/position/++"}},
		{"position --", (*Client).PositionFastBackward, []interface{}{"/position/--"}},
		{"nudge", func(c *Client) error { return c.Nudge(-4) }, []interface{}{"/position", int32(-4)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestClient(t)
			if err := tt.action(c); err != nil {
				t.Fatal(err)
			}
			assertSent(t, rec, msg(tt.want[0].(string), tt.want[1:]...))
		})
	}
}

func TestArmToggleIsDistinct(t *testing.T) {
	c, rec := newTestClient(t)
	for _, s := range []Switch{Toggle, On, Off} {
		if err := c.RecordArm(3, s); err != nil {
			t.Fatal(err)
		}
	}
	got := rec.messages()
	var args [][]interface{}
	for _, m := range got {
		args = append(args, m.Arguments)
	}
	want := [][]interface{}{nil, {int32(1)}, {int32(0)}}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("arguments = %v, want %v", args, want)
	}
}

func TestDisarmTracks(t *testing.T) {
	c, rec := newTestClient(t)
	if err := c.DisarmTracks(0); err != nil {
		t.Fatal(err)
	}
	got := rec.messages()
	if len(got) != TrackBankSize {
		t.Fatalf("sent %d messages, want %d", len(got), TrackBankSize)
	}
	if !reflect.DeepEqual(got[7], msg("/track/8/recarm", int32(0))) {
		t.Errorf("last message = %v", got[7])
	}
}

func TestCommands_InvalidArguments(t *testing.T) {
	c, rec := newTestClient(t)
	for name, action := range map[string]func() error{
		"track 0":        func() error { return c.ArmTrack(0) },
		"switch":         func() error { return c.Engine(Switch(9)) },
		"preroll 3":      func() error { return c.Preroll(3) },
		"crossfade 128":  func() error { return c.Crossfade(128) },
		"click volume":   func() error { return c.ClickVolume(-1) },
		"tempo 667":      func() error { return c.Tempo(667) },
		"write mode":     func() error { return c.AutomationWriteMode("scribble") },
		"click switch":   func() error { return c.Click(Switch(-1)) },
		"record arm bad": func() error { return c.RecordArm(1, Switch(3)) },
	} {
		if err := action(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: error = %v, want ErrInvalidArgument", name, err)
		}
	}
	assertSent(t, rec)
}

func TestParse(t *testing.T) {
	if tb, err := ParseTimbre("drum"); err != nil || tb != Percussive {
		t.Errorf("ParseTimbre(drum) = %v, %v", tb, err)
	}
	if tb, err := ParseTimbre("Melodic"); err != nil || tb != Melodic {
		t.Errorf("ParseTimbre(Melodic) = %v, %v", tb, err)
	}
	if _, err := ParseTimbre("cowbell"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseTimbre(cowbell) error = %v", err)
	}
	for in, want := range map[string]Switch{"on": On, "1": On, "off": Off, "0": Off, "toggle": Toggle, "-": Toggle} {
		if s, err := ParseSwitch(in); err != nil || s != want {
			t.Errorf("ParseSwitch(%q) = %v, %v", in, s, err)
		}
	}
	if _, err := ParseSwitch("maybe"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseSwitch(maybe) error = %v", err)
	}
	if m, err := ParseWriteMode("LATCH"); err != nil || m != Latch {
		t.Errorf("ParseWriteMode(LATCH) = %v, %v", m, err)
	}
}
