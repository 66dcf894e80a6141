package osc

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func BenchmarkParsePacket(b *testing.B) {
	raw, _ := NewMessage("/vkb_midi/1/note/60", int32(100)).MarshalBinary()
	b.ResetTimer()
	b.ReportAllocs()
	var p Packet
	for n := 0; n < b.N; n++ {
		p, _ = parsePacket(raw)
	}
	result = p
}

func TestParsePacket(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePacket(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePacket() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.obj) {
				t.Errorf("ParsePacket() got = %v, want %v", got, tt.obj)
			}
		})
	}
}

func TestParsePacketRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want error
	}{
		{"empty", nil, nil},
		{"garbage", []byte("xyz\x00"), nil},
		{"bundle", []byte("#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01"), ErrBundleUnsupported},
		{"unaligned", []byte("/a\x00"), nil},
		{"short int", []byte("/a\x00\x00,ii\x00\x00\x00\x00\x01"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePacket(tt.raw)
			if err == nil {
				t.Fatal("ParsePacket() should fail")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("ParsePacket() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func FuzzParsePacket(f *testing.F) {
	for _, tc := range messageTestCases {
		f.Add(tc.raw)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		packet, err := ParsePacket(data)
		if err != nil {
			return
		}

		dataNew, err := packet.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary(): err != nil on parsed packet %#v: %v", packet, err)
		}

		packet, err = ParsePacket(dataNew)
		if err != nil {
			t.Fatalf("ParsePacket(): err != nil on marshaled packet %#v: %v", packet, err)
		}

		dataNew2, err := packet.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary(): err != nil on double-parsed packet %#v: %v", packet, err)
		}

		if !reflect.DeepEqual(dataNew, dataNew2) {
			t.Fatalf("dataNew != dataNew2: dataNew: %s %v\ndataNew2: %s %v\npacket: %v\n", dataNew, dataNew, dataNew2, dataNew2, packet)
		}
	})
}
