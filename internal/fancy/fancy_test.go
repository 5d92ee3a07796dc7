package fancy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		max    int
		expect string
	}{
		{"short string untouched", "hello", 10, "hello"},
		{"exact length untouched", "hello", 5, "hello"},
		{"ascii truncated", "hello world", 8, "hello..."},
		{"multibyte runes kept whole", "專題伺服器已啟動", 5, "專題..."},
		{"tiny limit", "hello", 2, "he"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, TruncateString(tt.input, tt.max))
		})
	}
}

func TestTree(t *testing.T) {
	tr := Tree().Root("root")
	tr.Child("first")
	tr.Child(BranchNode("Section", "(2 items)").Child("a", "b"))

	out := tr.String()
	assert.Contains(t, out, "root")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "Section")
	assert.Contains(t, out, "(2 items)")
	assert.Contains(t, out, "a")
}

func TestStylesRender(t *testing.T) {
	sample := "Test Text"
	for _, rendered := range []string{
		RootStyle.Render(sample),
		HeaderStyle.Render(sample),
		InfoStyle.Render(sample),
		RouteText(sample),
		AppText(sample),
		SuccessStyle.Render(sample),
		ErrorStyle.Render(sample),
	} {
		assert.Contains(t, rendered, sample)
	}
}
