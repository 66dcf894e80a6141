package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/chabad360/bitwig-osc/bitwig"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// actions take no value.
var actions = map[string]func(c *bitwig.Client) error{
	"play":             (*bitwig.Client).Play,
	"stop":             (*bitwig.Client).Stop,
	"restart":          (*bitwig.Client).Restart,
	"repeat":           (*bitwig.Client).Repeat,
	"record":           (*bitwig.Client).Record,
	"overdub":          (*bitwig.Client).Overdub,
	"punch-in":         (*bitwig.Client).PunchIn,
	"punch-out":        (*bitwig.Client).PunchOut,
	"undo":             (*bitwig.Client).Undo,
	"redo":             (*bitwig.Client).Redo,
	"save":             (*bitwig.Client).SaveProject,
	"next-project":     (*bitwig.Client).NextProject,
	"previous-project": (*bitwig.Client).PreviousProject,
	"tap":              (*bitwig.Client).TapTempo,
	"forward":          (*bitwig.Client).PositionForward,
	"backward":         (*bitwig.Client).PositionBackward,
	"fast-forward":     (*bitwig.Client).PositionFastForward,
	"fast-backward":    (*bitwig.Client).PositionFastBackward,
}

// settings take exactly one value.
var settings = map[string]func(c *bitwig.Client, value string) error{
	"preroll":       intSetting((*bitwig.Client).Preroll),
	"crossfade":     intSetting((*bitwig.Client).Crossfade),
	"click-volume":  intSetting((*bitwig.Client).ClickVolume),
	"tempo":         intSetting((*bitwig.Client).Tempo),
	"nudge":         intSetting((*bitwig.Client).Nudge),
	"engine":        switchSetting((*bitwig.Client).Engine),
	"click":         switchSetting((*bitwig.Client).Click),
	"click-preroll": switchSetting((*bitwig.Client).ClickPreroll),
	"autowrite": func(c *bitwig.Client, v string) error {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "parsing %q", v)
		}
		return c.Autowrite(on)
	},
	"autowrite-launcher": func(c *bitwig.Client, v string) error {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "parsing %q", v)
		}
		return c.AutowriteLauncher(on)
	},
	"write-mode": func(c *bitwig.Client, v string) error {
		mode, err := bitwig.ParseWriteMode(v)
		if err != nil {
			return err
		}
		return c.AutomationWriteMode(mode)
	},
}

func intSetting(fn func(*bitwig.Client, int) error) func(*bitwig.Client, string) error {
	return func(c *bitwig.Client, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parsing %q", v)
		}
		return fn(c, n)
	}
}

func switchSetting(fn func(*bitwig.Client, bitwig.Switch) error) func(*bitwig.Client, string) error {
	return func(c *bitwig.Client, v string) error {
		s, err := bitwig.ParseSwitch(v)
		if err != nil {
			return err
		}
		return fn(c, s)
	}
}

func names(m interface{}) string {
	var list []string
	switch m := m.(type) {
	case map[string]func(*bitwig.Client) error:
		for k := range m {
			list = append(list, k)
		}
	case map[string]func(*bitwig.Client, string) error:
		for k := range m {
			list = append(list, k)
		}
	}
	sort.Strings(list)
	return strings.Join(list, ", ")
}

// doCmd runs a transport or project action.
var doCmd = &cobra.Command{
	Use:   "do <action>",
	Short: "Run a transport or project action",
	Long:  "Run a transport or project action: " + names(actions) + ".",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		action, ok := actions[args[0]]
		if !ok {
			return errors.Errorf("unknown action %q, want one of %s", args[0], names(actions))
		}
		return withSession(func(s *session) error {
			return action(s.Client)
		})
	},
}

// setCmd changes a global setting.
var setCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Change a global setting",
	Long:  "Change a global setting: " + names(settings) + ".",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting, ok := settings[args[0]]
		if !ok {
			return errors.Errorf("unknown setting %q, want one of %s", args[0], names(settings))
		}
		return withSession(func(s *session) error {
			return setting(s.Client, args[1])
		})
	},
}

func init() {
	RootCmd.AddCommand(doCmd, setCmd)
}
