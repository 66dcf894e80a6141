package osc

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Method is an interface for OSC Methods.
type Method interface {
	HandleMessage(msg *Message)
}

// MethodFunc implements the Method interface. Type definition for an OSC Method function.
type MethodFunc func(msg *Message)

// HandleMessage calls itself with the given OSC Message. Implements the Method interface.
func (f MethodFunc) HandleMessage(msg *Message) {
	f(msg)
}

// Dispatcher handles the dispatching of received OSC Packets to Methods for their given Address.
// Messages that match no registered Method are handed to NotFound, if set.
type Dispatcher struct {
	methods  map[string]Method
	NotFound Method
}

// AddMethod adds a new OSC Method for the given OSC Address.
func (d *Dispatcher) AddMethod(addr string, method Method) error {
	if d.methods == nil {
		d.methods = make(map[string]Method)
	}

	if strings.ContainsAny(addr, "*?,[]{}# ") {
		return errors.New("AddMethod: OSC Method may not contain any characters in \"*?,[]{}# \"")
	}

	if _, ok := d.methods[addr]; ok {
		return errors.Errorf("AddMethod: OSC Method %s exists already", addr)
	}

	d.methods[addr] = method
	return nil
}

// AddMethodFunc allows you to just pass a MethodFunc.
func (d *Dispatcher) AddMethodFunc(addr string, method MethodFunc) error {
	return d.AddMethod(addr, method)
}

// Dispatch dispatches OSC Packets. It returns an error for packet types it cannot dispatch.
func (d *Dispatcher) Dispatch(packet Packet) error {
	p, ok := packet.(*Message)
	if !ok {
		return errors.Errorf("Dispatch: invalid Packet: %T", packet)
	}

	r, err := getRegEx(p.Address)
	if err != nil {
		return errors.Wrapf(err, "Dispatch: invalid address %s", p.Address)
	}
	r.Longest()

	matched := false
	aParts := strings.Count(p.Address, "/")
	for addr, method := range d.methods {
		if aParts == strings.Count(addr, "/") && r.FindString(addr) == addr {
			method.HandleMessage(p)
			matched = true
		}
	}

	if !matched && d.NotFound != nil {
		d.NotFound.HandleMessage(p)
	}
	return nil
}

// getRegEx returns a regexp.Regexp for the given address pattern.
func getRegEx(pattern string) (*regexp.Regexp, error) {
	r := strings.NewReplacer(
		".", `\.`,
		"(", `\(`,
		")", `\)`,
		"+", `\+`,
		"*", "[^/]*",
		"{", "(",
		",", "|",
		"}", ")",
		"?", "[^/]",
		"!", "^",
	)

	return regexp.Compile(r.Replace(pattern))
}
