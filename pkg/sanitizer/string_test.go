package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fittrack/pkg/sanitizer"
)

func TestCleanString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes script element with content",
			input:    "<script>alert(1)</script>",
			expected: "",
		},
		{
			name:     "removes self-closing markup with handlers",
			input:    "<img src=x onerror=alert(1)>",
			expected: "",
		},
		{
			name:     "keeps text of stripped tags",
			input:    "<b>bold</b> text",
			expected: "bold text",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  Hello World  ",
			expected: "Hello World",
		},
		{
			name:     "escapes ampersand",
			input:    "Tom & Jerry",
			expected: "Tom &amp; Jerry",
		},
		{
			name:     "escapes stray angle bracket",
			input:    "5 > 3",
			expected: "5 &gt; 3",
		},
		{
			name:     "escapes quotes",
			input:    `She said "hi"`,
			expected: "She said &#34;hi&#34;",
		},
		{
			name:     "does not double escape entities",
			input:    "Tom &amp; Jerry",
			expected: "Tom &amp; Jerry",
		},
		{
			name:     "removes where operator",
			input:    "use $where clause",
			expected: "use  clause",
		},
		{
			name:     "removes javascript scheme ignoring case",
			input:    "JavaScript:alert(1)",
			expected: "alert(1)",
		},
		{
			name:     "removes function call with whitespace",
			input:    "function (x) {}",
			expected: "x) {}",
		},
		{
			name:     "removes eval ignoring case",
			input:    "EVAL(code)",
			expected: "code)",
		},
		{
			name:     "removes timers",
			input:    "setTimeout(a) setInterval(b)",
			expected: "(a) (b)",
		},
		{
			name:     "removes tokens that reassemble after removal",
			input:    "javajavascript:script:x",
			expected: "x",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "leaves plain text untouched",
			input:    "Run 5km every morning",
			expected: "Run 5km every morning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.CleanString(tt.input))
		})
	}
}

func TestCleanString_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"  Hello World  ",
		"Tom & Jerry",
		"5 > 3 < 7",
		`"quoted" 'single'`,
		"<b>bold</b> & <i>italic</i>",
		"javajavascript:script:x",
		"&lt;script&gt;",
		"plain",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			once := sanitizer.CleanString(input)
			assert.Equal(t, once, sanitizer.CleanString(once))
		})
	}
}

func TestCleanString_NoResidualMarkup(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<script>alert(1)</script>",
		"<a href=\"javascript:alert(1)\">click</a>",
		"<div><p>nested <span>tags</span></p></div>",
		"1 < 2 and 3 > 2",
		"&lt;b&gt;escaped&lt;/b&gt;",
		"<<script>script>alert(1)<</script>/script>",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			out := sanitizer.CleanString(input)
			assert.NotContains(t, out, "<")
			assert.NotContains(t, out, ">")
			assert.NotContains(t, out, "javascript:")
		})
	}
}

func TestStripTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", sanitizer.StripTags(""))
	assert.Equal(t, "hello", sanitizer.StripTags("<p>hello</p>"))
	assert.Equal(t, "", sanitizer.StripTags("<style>body{}</style>"))
}

func TestEscapeText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "&lt;b&gt;", sanitizer.EscapeText("<b>"))
	assert.Equal(t, "&lt;b&gt;", sanitizer.EscapeText("&lt;b&gt;"))
	assert.Equal(t, "a &amp; b", sanitizer.EscapeText("a & b"))
}

func TestRemoveScriptTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", sanitizer.RemoveScriptTokens("$WHERE$regex"))
	assert.Equal(t, "x", sanitizer.RemoveScriptTokens("eval  (x"))
	assert.Equal(t, "safe", sanitizer.RemoveScriptTokens("safe"))
}

func TestCompose(t *testing.T) {
	t.Parallel()

	exclaim := func(s string) string { return s + "!" }
	chain := sanitizer.Compose(sanitizer.StripTags, exclaim)
	assert.Equal(t, "hi!", chain("<b>hi</b>"))
	assert.Equal(t, 3, sanitizer.Apply(1, func(i int) int { return i + 2 }))
}
