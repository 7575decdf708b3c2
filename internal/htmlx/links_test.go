package htmlx

import (
	"reflect"
	"testing"
)

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		expected []string
	}{
		{
			"plain text",
			"Just a paragraph of text, no markup at all.",
			nil,
		},
		{
			"single anchor",
			`<p>Read <a href="https://example.com/post">the post</a></p>`,
			[]string{"https://example.com/post"},
		},
		{
			"multiple anchors in order",
			`<a href="https://a.test">a</a> then <a href="https://b.test">b</a>`,
			[]string{"https://a.test", "https://b.test"},
		},
		{
			"skips fragment and javascript hrefs",
			`<a href="#section">jump</a><a href="javascript:void(0)">noop</a><a href="https://ok.test">ok</a>`,
			[]string{"https://ok.test"},
		},
		{
			"skips empty href",
			`<a href="">nothing</a><a href="   ">spaces</a>`,
			nil,
		},
		{
			"relative links kept",
			`<a href="/unsubscribe">unsubscribe</a>`,
			[]string{"/unsubscribe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractLinks(tt.fragment)
			if err != nil {
				t.Fatalf("ExtractLinks: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractLinks() = %v, want %v", got, tt.expected)
			}
		})
	}
}
