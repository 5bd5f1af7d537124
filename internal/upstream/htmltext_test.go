package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHTMLToText tests that markup is stripped and whitespace collapsed.
func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "Backend developer wanted", "Backend developer wanted"},
		{"tags stripped", "<p>We are <b>hiring</b> now.</p>", "We are hiring now."},
		{"script removed", "<script>alert(1)</script><div>Go developer</div>", "Go developer"},
		{"whitespace collapsed", "Remote   role\n\tin  Oslo", "Remote role in Oslo"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, htmlToText(tt.in))
		})
	}
}
