package participants

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePseudonym_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^\S+ \S+ \d{3}$`)
	for i := 0; i < 50; i++ {
		p := GeneratePseudonym()
		assert.Regexp(t, pattern, p)
	}
}
