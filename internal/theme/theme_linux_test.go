//go:build linux

package theme

import (
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestLightFromScheme(t *testing.T) {
	tests := []struct {
		name    string
		v       dbus.Variant
		want    bool
		wantErr bool
	}{
		{"no preference", dbus.MakeVariant(uint32(0)), true, false},
		{"prefer dark", dbus.MakeVariant(uint32(1)), false, false},
		{"prefer light", dbus.MakeVariant(uint32(2)), true, false},
		{"wrapped by Read", dbus.MakeVariant(dbus.MakeVariant(uint32(1))), false, false},
		{"double wrapped", dbus.MakeVariant(dbus.MakeVariant(dbus.MakeVariant(uint32(2)))), true, false},
		{"wrong type", dbus.MakeVariant("dark"), false, true},
		{"signed int", dbus.MakeVariant(int32(1)), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lightFromScheme(tt.v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("light = %v, want %v", got, tt.want)
			}
		})
	}
}
