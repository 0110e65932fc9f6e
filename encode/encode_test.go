package encode

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/flying-sheep/plist/ir"
)

func mustBody(n *ir.Node) string {
	return MustString(n, EncodeHeader(false))
}

func TestEncodeLeaves(t *testing.T) {
	ets := []struct {
		n    *ir.Node
		want string
	}{
		{n: ir.Null(), want: "<undef/>\n"},
		{n: ir.FromBool(true), want: "<true/>\n"},
		{n: ir.FromBool(false), want: "<false/>\n"},
		{n: ir.FromInt(1965), want: "<integer>1965</integer>\n"},
		{n: ir.FromReal(1), want: "<real>1.0</real>\n"},
		{n: ir.FromReal(0.5), want: "<real>0.5</real>\n"},
		{n: ir.FromString("Springfield"), want: "<string>Springfield</string>\n"},
		{n: ir.FromString(""), want: "<string/>\n"},
		{n: ir.FromSlice(nil), want: "<array/>\n"},
		{
			n:    ir.FromDate(time.Date(2007, 1, 25, 12, 0, 0, 0, time.UTC)),
			want: "<date>2007-01-25T12:00:00Z</date>\n",
		},
		{
			n:    ir.FromData([]byte("<B\x81\xa5\x81\xa5\x99\x81B<")),
			want: "<data>\n\tPEKBpYGlmYFCPA==\n</data>\n",
		},
	}
	for _, et := range ets {
		want := "<plist version=\"1.0\">\n" + et.want + "</plist>\n"
		if got := mustBody(et.n); got != want {
			t.Errorf("%s:\ngot  %q\nwant %q", et.n.Type, got, want)
		}
	}
}

func TestEncodeRealRoundTrips(t *testing.T) {
	// the emitted text must parse back to the same bits
	for _, v := range []float64{0, 1, -1, 0.1, 1e20, 1e-7, 3.141592653589793} {
		el, err := toElement(ir.FromReal(v))
		if err != nil {
			t.Fatal(err)
		}
		got := el.Text
		n, err := strconv.ParseFloat(got, 64)
		if err != nil {
			t.Fatalf("%q: %v", got, err)
		}
		if n != v {
			t.Errorf("%v encodes as %q which parses as %v", v, got, n)
		}
	}
}

func TestEncodeRealNonFinite(t *testing.T) {
	rts := []struct {
		v    float64
		want string
	}{
		{v: math.NaN(), want: "<real>NaN</real>\n"},
		{v: math.Inf(1), want: "<real>+Inf</real>\n"},
		{v: math.Inf(-1), want: "<real>-Inf</real>\n"},
	}
	for _, rt := range rts {
		want := "<plist version=\"1.0\">\n" + rt.want + "</plist>\n"
		if got := mustBody(ir.FromReal(rt.v)); got != want {
			t.Errorf("%v:\ngot  %q\nwant %q", rt.v, got, want)
		}
		// the bare name must parse straight back
		el, err := toElement(ir.FromReal(rt.v))
		if err != nil {
			t.Fatal(err)
		}
		back, err := strconv.ParseFloat(el.Text, 64)
		if err != nil {
			t.Fatalf("%q: %v", el.Text, err)
		}
		if math.IsNaN(rt.v) {
			if !math.IsNaN(back) {
				t.Errorf("%q parses as %v, want NaN", el.Text, back)
			}
		} else if back != rt.v {
			t.Errorf("%q parses as %v, want %v", el.Text, back, rt.v)
		}
	}
}

func TestEncodeDictOrder(t *testing.T) {
	ordered := ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromInt(1)},
		{Key: "a", Val: ir.FromInt(2)},
	})
	want := "<plist version=\"1.0\">\n<dict>\n" +
		"\t<key>b</key>\n\t<integer>1</integer>\n" +
		"\t<key>a</key>\n\t<integer>2</integer>\n" +
		"</dict>\n</plist>\n"
	if got := mustBody(ordered); got != want {
		t.Errorf("ordered dict:\ngot  %q\nwant %q", got, want)
	}

	unordered := ir.FromMap(map[string]*ir.Node{
		"b": ir.FromInt(1),
		"a": ir.FromInt(2),
	})
	want = "<plist version=\"1.0\">\n<dict>\n" +
		"\t<key>a</key>\n\t<integer>2</integer>\n" +
		"\t<key>b</key>\n\t<integer>1</integer>\n" +
		"</dict>\n</plist>\n"
	if got := mustBody(unordered); got != want {
		t.Errorf("unordered dict:\ngot  %q\nwant %q", got, want)
	}
}

func TestEncodeHeaderDefault(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(ir.FromSlice(nil), buf); err != nil {
		t.Fatal(err)
	}
	want := Header + "<plist version=\"1.0\">\n<array/>\n</plist>\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeUnsupported(t *testing.T) {
	err := Encode(&ir.Node{Type: ir.Type(99)}, bytes.NewBuffer(nil))
	if !errors.Is(err, ir.ErrUnsupportedValue) {
		t.Errorf("got %v, want ErrUnsupportedValue", err)
	}
}
