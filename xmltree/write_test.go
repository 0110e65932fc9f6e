package xmltree

import (
	"bytes"
	"testing"
)

type writeTest struct {
	name string
	el   *Element
	opts []EncodeOption
	want string
}

func TestEncode(t *testing.T) {
	wts := []writeTest{
		{
			name: "self-close",
			el:   New("array"),
			want: "<array/>\n",
		},
		{
			name: "text on one line",
			el:   NewText("string", "hello"),
			want: "<string>hello</string>\n",
		},
		{
			name: "attrs",
			el:   New("plist").WithAttr("version", "1.0"),
			want: "<plist version=\"1.0\"/>\n",
		},
		{
			name: "children indent one level",
			el: New("array",
				NewText("string", "a"),
				New("array")),
			want: "<array>\n\t<string>a</string>\n\t<array/>\n</array>\n",
		},
		{
			name: "nested children",
			el: New("array",
				New("array",
					NewText("integer", "1"))),
			want: "<array>\n\t<array>\n\t\t<integer>1</integer>\n\t</array>\n</array>\n",
		},
		{
			name: "grouping text is raw and indented",
			el:   New("data", NewGroup("UExJU1Q=")),
			want: "<data>\n\tUExJU1Q=\n</data>\n",
		},
		{
			name: "empty grouping text writes nothing",
			el:   New("data", NewGroup("")),
			want: "<data>\n</data>\n",
		},
		{
			name: "root increment zero keeps wrapper children at margin",
			el: New("plist",
				New("array",
					NewText("string", "a"))).WithAttr("version", "1.0"),
			opts: []EncodeOption{RootIncrement(0)},
			want: "<plist version=\"1.0\">\n<array>\n\t<string>a</string>\n</array>\n</plist>\n",
		},
		{
			name: "text escaping",
			el:   NewText("string", "a < b & c > d"),
			want: "<string>a &lt; b &amp; c &gt; d</string>\n",
		},
		{
			name: "attr escaping",
			el:   New("plist").WithAttr("version", `1.0 "x" & <y>`),
			want: "<plist version=\"1.0 &quot;x&quot; &amp; &lt;y&gt;\"/>\n",
		},
		{
			name: "custom indent",
			el: New("array",
				NewText("string", "a")),
			opts: []EncodeOption{Indent("  ")},
			want: "<array>\n  <string>a</string>\n</array>\n",
		},
	}
	for _, wt := range wts {
		buf := bytes.NewBuffer(nil)
		if err := Encode(wt.el, buf, wt.opts...); err != nil {
			t.Errorf("%s: %v", wt.name, err)
			continue
		}
		if got := buf.String(); got != wt.want {
			t.Errorf("%s:\ngot  %q\nwant %q", wt.name, got, wt.want)
		}
	}
}
