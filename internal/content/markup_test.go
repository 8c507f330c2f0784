package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseInline(t *testing.T) {
	cases := []struct {
		name string
		src  string
		base Role
		want []Run
	}{
		{
			name: "strong emphasis is a bold name",
			src:  "Hello 👋 I'm ***Lucas Mori***.",
			base: RoleText,
			want: []Run{
				{Text: "Hello 👋 I'm ", Role: RoleText},
				{Text: "Lucas Mori", Role: RoleName, Bold: true},
				{Text: ".", Role: RoleText},
			},
		},
		{
			name: "bold code span is a bold keyword",
			src:  "type **`help`** and",
			base: RoleText,
			want: []Run{
				{Text: "type ", Role: RoleText},
				{Text: "help", Role: RoleKeyword, Bold: true},
				{Text: " and", Role: RoleText},
			},
		},
		{
			name: "fragment link selects a role",
			src:  "Tools: [Figma, Git](#highlight)",
			base: RoleText,
			want: []Run{
				{Text: "Tools: ", Role: RoleText},
				{Text: "Figma, Git", Role: RoleHighlight},
			},
		},
		{
			name: "link title selects a role and keeps href",
			src:  `[github.com/u](https://github.com/u "highlight")`,
			base: RoleText,
			want: []Run{{Text: "github.com/u", Role: RoleHighlight, Href: "https://github.com/u"}},
		},
		{
			name: "plain link defaults to name",
			src:  "[➜ View Code](https://example.com/x)",
			base: RoleText,
			want: []Run{{Text: "➜ View Code", Role: RoleName, Href: "https://example.com/x"}},
		},
		{
			name: "base role colors unmarked text",
			src:  "// Type **socials** to connect.",
			base: RoleComment,
			want: []Run{
				{Text: "// Type ", Role: RoleComment},
				{Text: "socials", Role: RoleComment, Bold: true},
				{Text: " to connect.", Role: RoleComment},
			},
		},
		{
			name: "block syntax without text falls back to source",
			src:  "----",
			base: RoleComment,
			want: []Run{{Text: "----", Role: RoleComment}},
		},
		{
			name: "unknown base role becomes text",
			src:  "plain",
			base: Role("neon"),
			want: []Run{{Text: "plain", Role: RoleText}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseInline(tc.src, tc.base)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("ParseInline(%q) mismatch (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}

func TestParseInline_Blank(t *testing.T) {
	if got := ParseInline("   ", RoleText); got != nil {
		t.Fatalf("expected nil runs for blank input, got %#v", got)
	}
}

func TestLinePlain(t *testing.T) {
	line := Line{Runs: ParseInline("`Python` & `SQL`", RoleText)}
	if got := line.Plain(); got != "Python & SQL" {
		t.Fatalf("Plain() = %q", got)
	}
	if line.Blank() {
		t.Fatalf("line with text should not be blank")
	}
	if !(Line{}).Blank() {
		t.Fatalf("empty line should be blank")
	}
}
