package reg_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vladislavmarkov/data-registry/pkg/reg"
)

func TestGetNeverStored(t *testing.T) {
	var missing *reg.Entry[reg.Mutable, reg.None, int, int]

	assert.PanicsWithValue(t, reg.ErrNotStored, func() { reg.Get(missing) })
	assert.PanicsWithValue(t, reg.ErrNotStored, func() { reg.Set(missing, 1) })
	assert.Equal(t, reg.KindUnknown, missing.Kind())
}

func TestZeroEntryIsNotStored(t *testing.T) {
	e := new(reg.Entry[reg.Readonly, reg.None, string, string])
	assert.PanicsWithValue(t, reg.ErrNotStored, func() { reg.Get(e) })
}

func TestInfo(t *testing.T) {
	tests := []struct {
		name string
		info reg.Info
		want reg.Info
		str  string
	}{
		{
			name: "static scalar",
			info: speed.Info(),
			want: reg.Info{Kind: reg.KindStatic, Exposure: reg.ByValue, Value: reflect.TypeFor[uint16]()},
			str:  "static uint16 by value",
		},
		{
			name: "static compound",
			info: where.Info(),
			want: reg.Info{Kind: reg.KindStatic, Exposure: reg.ByRef, Value: reflect.TypeFor[location]()},
			str:  "static reg_test.location by ref",
		},
		{
			name: "read-only",
			info: heartbeat.Info(),
			want: reg.Info{Kind: reg.KindReadOnly, Exposure: reg.ByValue, Value: reflect.TypeFor[uint32]()},
			str:  "read-only uint32 by value",
		},
		{
			name: "read-write with context",
			info: reg.ReadWriteWith(
				func(ctx ...int) string { return "" },
				func(v string, ctx ...int) {},
			).Info(),
			want: reg.Info{
				Kind:     reg.KindReadWrite,
				Exposure: reg.ByValue,
				Value:    reflect.TypeFor[string](),
				Context:  reflect.TypeFor[int](),
			},
			str: "read-write string by value, context int",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info)
			assert.Equal(t, tt.str, tt.info.String())
		})
	}
}

func TestKindAndExposureStrings(t *testing.T) {
	assert.Equal(t, "static", reg.KindStatic.String())
	assert.Equal(t, "read-only", reg.KindReadOnly.String())
	assert.Equal(t, "read-write", reg.KindReadWrite.String())
	assert.Equal(t, "unknown", reg.Kind(99).String())
	assert.Equal(t, "value", reg.ByValue.String())
	assert.Equal(t, "ref", reg.ByRef.String())
	assert.Equal(t, "unknown", reg.Exposure(0).String())
}

// Get and Set resolve every shape through the same call syntax.
func TestUniformFrontDoor(t *testing.T) {
	var static uint16 = reg.Get(speed)
	var readOnly uint32 = reg.Get(heartbeat)
	var readWrite State = reg.Get(state)
	var ref reg.Ref[location] = reg.Get(where)

	_, _, _, _ = static, readOnly, readWrite, ref
}
