package osc

import (
	"reflect"
	"testing"
)

type testCase struct {
	name    string
	obj     *Message
	raw     []byte
	wantErr bool
}

var messageTestCases = []testCase{
	{
		name: "note on",
		obj:  NewMessage("/vkb_midi/1/note/60", int32(100)),
		raw: []byte("/vkb_midi/1/note/60\x00" +
			",i\x00\x00" +
			"\x00\x00\x00\x64"),
	},
	{
		name: "no arguments",
		obj:  NewMessage("/undo"),
		raw: []byte("/undo\x00\x00\x00" +
			",\x00\x00\x00"),
	},
	{
		name: "string argument",
		obj:  NewMessage("/automationWriteMode", "latch"),
		raw: []byte("/automationWriteMode\x00\x00\x00\x00" +
			",s\x00\x00" +
			"latch\x00\x00\x00"),
	},
	{
		name: "mixed arguments",
		obj:  NewMessage("/mixed", int32(-1), float32(0.5), true, nil, int64(7), []byte{0xff}),
		raw: []byte("/mixed\x00\x00" +
			",ifTNhb\x00" +
			"\xff\xff\xff\xff" +
			"\x3f\x00\x00\x00" +
			"\x00\x00\x00\x00\x00\x00\x00\x07" +
			"\x00\x00\x00\x01\xff\x00\x00\x00"),
	},
}

func TestMessage_Append(t *testing.T) {
	message := NewMessage("/address")

	if err := message.Append("string argument", int32(123456789), true); err != nil {
		t.Fatal(err)
	}
	if len(message.Arguments) != 3 {
		t.Errorf("Number of arguments should be %d and is %d", 3, len(message.Arguments))
	}

	if err := message.Append(42); err == nil {
		t.Error("Append(int) should fail, plain ints have no OSC type tag")
	}
	if len(message.Arguments) != 3 {
		t.Errorf("failed Append changed the arguments: %v", message.Arguments)
	}
}

func TestOscMessageMatch(t *testing.T) {
	tc := []struct {
		desc        string
		addr        string
		addrPattern string
		want        bool
	}{
		{"match everything", "*", "/a/b", true},
		{"don't match", "/a/b", "/a", false},
		{"match alternatives", "/a/{foo,bar}", "/a/foo", true},
		{"don't match if address is not part of the alternatives", "/a/{foo,bar}", "/a/bob", false},
		{"plus is literal", "/position/++", "/position/++", true},
		{"plus is not a quantifier", "/position/+", "/position/", false},
	}

	for _, tt := range tc {
		msg := NewMessage(tt.addr)

		got := msg.Match(tt.addrPattern)
		if got != tt.want {
			t.Errorf("%s: msg.Match('%s') = '%t', want = '%t'", tt.desc, tt.addrPattern, got, tt.want)
		}
	}
}

func TestMessage_String(t *testing.T) {
	for _, tt := range []struct {
		msg  *Message
		want string
	}{
		{NewMessage("/undo"), "/undo"},
		{NewMessage("/vkb_midi/1/drum/36", int32(127)), "/vkb_midi/1/drum/36 ,i 127"},
		{NewMessage("/automationWriteMode", "touch"), "/automationWriteMode ,s touch"},
		{nil, ""},
	} {
		if got := tt.msg.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMessage_MarshalBinary(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.obj.MarshalBinary()
			if (err != nil) != tt.wantErr {
				t.Errorf("MarshalBinary() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.raw) {
				t.Errorf("MarshalBinary() got = %q, want %q", got, tt.raw)
			}
		})
	}
}

func TestMessage_MarshalBinaryInvalid(t *testing.T) {
	for _, m := range []*Message{
		NewMessage("no/leading/slash"),
		NewMessage("/plain/int", 1),
	} {
		if _, err := m.MarshalBinary(); err == nil {
			t.Errorf("MarshalBinary(%v) should fail", m.Address)
		}
	}
}

func TestMessage_UnmarshalBinary(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			m := new(Message)
			if err := m.UnmarshalBinary(tt.raw); (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalBinary() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(m, tt.obj) {
				t.Errorf("UnmarshalBinary() got = %v, want %v", m, tt.obj)
			}
		})
	}
}

var result interface{}

func BenchmarkMessageMarshalBinary(b *testing.B) {
	m := NewMessage("/vkb_midi/1/note/60", int32(100))
	var buf []byte
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		buf, _ = m.MarshalBinary()
	}
	result = buf
}
