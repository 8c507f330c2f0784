package session

import "testing"

func TestComplete(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "ab", want: "about", ok: true},
		{in: "PRO", want: "projects", ok: true},
		{in: "rel", want: "reload", ok: true},
		{in: "re", ok: false},
		{in: "s", ok: false},
		{in: "st", want: "stack", ok: true},
		{in: "", ok: false},
		{in: "zzz", ok: false},
	}
	for _, tc := range cases {
		got, ok := Complete(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Complete(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSuggest(t *testing.T) {
	if got, ok := Suggest("abt"); !ok || got != "about" {
		t.Fatalf("Suggest(abt) = %q, %v", got, ok)
	}
	if _, ok := Suggest("qqq"); ok {
		t.Fatalf("Suggest(qqq) should find nothing")
	}
}

func TestCommonPrefix(t *testing.T) {
	if got := commonPrefix([]string{"reload", "resume"}); got != "re" {
		t.Fatalf("commonPrefix = %q", got)
	}
	if got := commonPrefix(nil); got != "" {
		t.Fatalf("commonPrefix(nil) = %q", got)
	}
}
