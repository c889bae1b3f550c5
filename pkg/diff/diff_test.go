package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedIdentical(t *testing.T) {
	out, stats := Unified([]byte("a\nb\n"), []byte("a\nb\n"), "expected", "actual")

	assert.Empty(t, out)
	assert.False(t, stats.Changed())
}

func TestUnifiedLineChange(t *testing.T) {
	expected := []byte("{\n  \"--tm-bg\": \"0 0% 100%\",\n  \"--tm-fg\": \"222 47% 11%\"\n}\n")
	actual := []byte("{\n  \"--tm-bg\": \"0 0% 98%\",\n  \"--tm-fg\": \"222 47% 11%\"\n}\n")

	out, stats := Unified(expected, actual, "tokens.day.json", "generated")

	assert.True(t, strings.HasPrefix(out, "--- tokens.day.json\n+++ generated\n@@ -1,4 +1,4 @@\n"))
	assert.Contains(t, out, "-  \"--tm-bg\": \"0 0% 100%\",\n")
	assert.Contains(t, out, "+  \"--tm-bg\": \"0 0% 98%\",\n")
	assert.Contains(t, out, "   \"--tm-fg\": \"222 47% 11%\"\n")
	assert.Equal(t, Stats{Added: 1, Removed: 1}, stats)
	assert.Equal(t, "+1 -1", stats.String())
}

func TestUnifiedAddedAndRemovedLines(t *testing.T) {
	out, stats := Unified([]byte("a\nb\nc\n"), []byte("a\nc\nd\ne\n"), "old", "new")

	assert.Contains(t, out, "-b\n")
	assert.Contains(t, out, "+d\n")
	assert.Contains(t, out, "+e\n")
	assert.Equal(t, Stats{Added: 2, Removed: 1}, stats)
}

func TestUnifiedFromEmpty(t *testing.T) {
	out, stats := Unified(nil, []byte("x\n"), "missing", "generated")

	assert.Contains(t, out, "@@ -1,0 +1,1 @@")
	assert.Contains(t, out, "+x\n")
	assert.Equal(t, 1, stats.Added)
}

func TestUnifiedTruncatesLargeDiffs(t *testing.T) {
	var expected, actual strings.Builder
	for i := 0; i < 6000; i++ {
		fmt.Fprintf(&expected, "old %d\n", i)
		fmt.Fprintf(&actual, "new %d\n", i)
	}

	out, _ := Unified([]byte(expected.String()), []byte(actual.String()), "a", "b")

	assert.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
}
