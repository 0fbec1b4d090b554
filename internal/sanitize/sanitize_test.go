package sanitize

import "testing"

func TestEscape(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"<b>hi</b>", "&lt;b&gt;hi&lt;/b&gt;"},
		{"a & b", "a &amp; b"},
		{`say "hi"`, "say &#34;hi&#34;"},
		{"it's", "it&#39;s"},
		{"plain text", "plain text"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Escape(c.in); got != c.want {
			t.Errorf("Escape(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEscapeIdempotentOnCleanText(t *testing.T) {
	once := Escape("<script>alert(1)</script>")
	for _, r := range once {
		if r == '<' || r == '>' {
			t.Fatalf("escaped output still contains %q: %s", r, once)
		}
	}
}
