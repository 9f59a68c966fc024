package easyosc

import (
	"reflect"
	"testing"
	"time"

	"github.com/easyosc/go-easyosc/osc"
)

func packed(t *testing.T, args ...interface{}) []interface{} {
	t.Helper()
	m := osc.NewMessage("/test")
	for _, a := range args {
		if err := appendArg(m, a); err != nil {
			t.Fatalf("appendArg(%v): %v", a, err)
		}
	}
	return m.Arguments
}

func TestSendArgumentPacking(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want []interface{}
	}{
		{"bool_true", []interface{}{true}, []interface{}{int32(1)}},
		{"bool_false", []interface{}{false}, []interface{}{int32(0)}},
		{"int_variants", []interface{}{byte(3), 4, int32(5), int64(6)},
			[]interface{}{int32(3), int32(4), int32(5), int32(6)}},
		{"float_variants", []interface{}{float32(1.5), float64(2.5)},
			[]interface{}{float32(1.5), float32(2.5)}},
		{"string", []interface{}{"hi"}, []interface{}{"hi"}},
		{"vec3_flattens", []interface{}{Vec3{1, 2, 3}},
			[]interface{}{float32(1), float32(2), float32(3)}},
		{"mat3_flattens", []interface{}{Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}},
			[]interface{}{
				float32(1), float32(0), float32(0),
				float32(0), float32(1), float32(0),
				float32(0), float32(0), float32(1),
			}},
		{"int_slice_flattens", []interface{}{[]int{7, 8}},
			[]interface{}{int32(7), int32(8)}},
		{"byte_slice_flattens", []interface{}{[]byte{1, 2}},
			[]interface{}{int32(1), int32(2)}},
		{"vec2_slice_flattens", []interface{}{[]Vec2{{1, 2}, {3, 4}}},
			[]interface{}{float32(1), float32(2), float32(3), float32(4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := packed(t, tt.args...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSendRejectsUnsupportedType(t *testing.T) {
	m := osc.NewMessage("/test")
	if err := appendArg(m, struct{}{}); err == nil {
		t.Error("expected error for struct argument")
	}
}

func TestSendReceiveLoopback(t *testing.T) {
	r, err := ListenUDP("127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	src := r.src.(*osc.Receiver)
	s, err := NewSender(src.LocalAddr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var level float32
	var pos Vec2
	r.Add("/level", &level).Add("/pos", &pos)

	if err := s.Send("/level", 0.5); err != nil {
		t.Fatal(err)
	}
	if err := s.Send("/pos", Vec2{1.5, 2.5}); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		r.Update()
		if level == 0.5 && pos == (Vec2{1.5, 2.5}) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out: level = %v, pos = %v", level, pos)
}
