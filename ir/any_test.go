package ir

import (
	"errors"
	"testing"
	"time"
)

func TestFromAny(t *testing.T) {
	now := time.Date(2007, 1, 25, 12, 0, 0, 0, time.UTC)
	fts := []struct {
		in   any
		want *Node
	}{
		{in: nil, want: Null()},
		{in: true, want: FromBool(true)},
		{in: 5, want: FromInt(5)},
		{in: uint16(7), want: FromInt(7)},
		{in: 1.5, want: FromReal(1.5)},
		{in: "hi", want: FromString("hi")},
		{in: []byte{0, 1}, want: FromData([]byte{0, 1})},
		{in: now, want: FromDate(now)},
		{in: []any{1, "two"}, want: FromSlice([]*Node{FromInt(1), FromString("two")})},
		{
			in: map[string]any{"b": 2, "a": 1},
			want: FromMap(map[string]*Node{
				"a": FromInt(1),
				"b": FromInt(2),
			}),
		},
	}
	for _, ft := range fts {
		got, err := FromAny(ft.in)
		if err != nil {
			t.Errorf("FromAny(%v): %v", ft.in, err)
			continue
		}
		if !Equal(got, ft.want) {
			t.Errorf("FromAny(%v): got %v, want %v", ft.in, got, ft.want)
		}
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	_, err := FromAny(struct{ X int }{1})
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("got %v, want ErrUnsupportedValue", err)
	}
	_, err = FromAny([]any{make(chan int)})
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("nested: got %v, want ErrUnsupportedValue", err)
	}
}

func TestAnyRoundTrip(t *testing.T) {
	in := map[string]any{
		"bool":   true,
		"int":    int64(5),
		"real":   1.25,
		"string": "world",
		"list":   []any{int64(0), int64(1), int64(2)},
		"dict":   map[string]any{"example": "nesting"},
	}
	node, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromAny(ToAny(node))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(node, back) {
		t.Errorf("round trip differs:\nfirst  %v\nsecond %v", node, back)
	}
}
