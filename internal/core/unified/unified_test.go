package unified

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_IdenticalInputsProduceEmptyDiff(t *testing.T) {
	assert.Empty(t, Diff("a\nb\n", "a\nb\n", "old", "new", DefaultContext))
}

func TestDiff_InsertionMatchesDiffUFormat(t *testing.T) {
	original := "a\ncephfs: {\nb\n"
	modified := "a\nX:{\ncephfs: {\nb\n"

	actual := Diff(original, modified, "pvemanagerlib.js", "pvemanagerlib.patched.js", DefaultContext)

	assert.Equal(t, `--- pvemanagerlib.js
+++ pvemanagerlib.patched.js
@@ -1,3 +1,4 @@
 a
+X:{
 cephfs: {
 b
`, string(actual))
}

func TestDiff_SeparateHunksForDistantChanges(t *testing.T) {
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	original := strings.Join(lines, "\n") + "\n"
	modified := strings.Replace(original, "line 2\n", "new\nline 2\n", 1)
	modified = strings.Replace(modified, "line 17\n", "other\nline 17\n", 1)

	diff, err := Parse(Diff(original, modified, "a", "b", DefaultContext))

	require.NoError(t, err)
	require.Len(t, diff.Hunks, 2)
	assert.Equal(t, 1, diff.Hunks[0].OldStart)
	assert.Equal(t, 5, diff.Hunks[0].OldCount)
	assert.Equal(t, 6, diff.Hunks[0].NewCount)
	assert.Equal(t, 2, diff.AddedLines())
	assert.Equal(t, 0, diff.RemovedLines())
}

func TestDiff_MarksMissingNewlineOnUnterminatedLastLine(t *testing.T) {
	actual := Diff("a\nb", "x\na\nb", "old", "new", DefaultContext)

	assert.Equal(t, `--- old
+++ new
@@ -1,2 +1,3 @@
+x
 a
 b
\ No newline at end of file
`, string(actual))
}

func TestParse_ReadsHeadersHunksAndMarkers(t *testing.T) {
	patch := `garbage before the header
--- pvemanagerlib.js	2024-01-01 00:00:00
+++ pvemanagerlib.patched.js
@@ -3,2 +3,3 @@ context text
 one
+two
-three
+three
\ No newline at end of file
`

	diff, err := Parse([]byte(patch))

	require.NoError(t, err)
	assert.Equal(t, "pvemanagerlib.js", diff.OldName)
	assert.Equal(t, "pvemanagerlib.patched.js", diff.NewName)
	require.Len(t, diff.Hunks, 1)
	hunk := diff.Hunks[0]
	assert.Equal(t, Hunk{
		OldStart: 3,
		OldCount: 2,
		NewStart: 3,
		NewCount: 3,
		Lines: []Line{
			{Kind: LineContext, Text: "one"},
			{Kind: LineAdded, Text: "two"},
			{Kind: LineRemoved, Text: "three"},
			{Kind: LineAdded, Text: "three", NoNewline: true},
		},
	}, hunk)
}

func TestParse_EmptyInputHasNoHunks(t *testing.T) {
	diff, err := Parse(nil)

	require.NoError(t, err)
	assert.Empty(t, diff.Hunks)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		patch string
	}{
		{"hunk before header", "@@ -1 +1 @@\n-a\n+b\n"},
		{"malformed hunk header", "--- a\n+++ b\n@@ -x +1 @@\n"},
		{"truncated hunk", "--- a\n+++ b\n@@ -1,3 +1,3 @@\n a\n"},
		{"bad hunk line", "--- a\n+++ b\n@@ -1,2 +1,2 @@\n a\n?b\n"},
		{"stray marker", "\\ No newline at end of file\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.patch))
			assert.Error(t, err)
		})
	}
}

func TestApply_RejectsMismatchedContext(t *testing.T) {
	diff, err := Parse(Diff("a\nb\nc\n", "a\nX\nb\nc\n", "old", "new", DefaultContext))
	require.NoError(t, err)

	_, err = Apply("a\nB\nc\n", diff)

	assert.ErrorContains(t, err, "hunk 1")
}

func TestApply_RejectsHunkPastEndOfFile(t *testing.T) {
	diff, err := Parse(Diff("a\nb\nc\n", "a\nb\nc\nd\n", "old", "new", DefaultContext))
	require.NoError(t, err)

	_, err = Apply("a\n", diff)

	assert.Error(t, err)
}

func TestApply_InsertionAtStartOfFile(t *testing.T) {
	diff, err := Parse([]byte("--- a\n+++ b\n@@ -0,0 +1 @@\n+first\n"))
	require.NoError(t, err)

	actual, err := Apply("", diff)

	require.NoError(t, err)
	assert.Equal(t, "first\n", actual)
}

func TestDiffAndApply_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		original string
		modified string
	}{
		{"insertion", "a\ncephfs: {\nb\n", "a\nX:{\ncephfs: {\nb\n"},
		{"both unterminated", "a\nb", "a\nX\nb"},
		{"newline added", "a\nb", "a\nb\n"},
		{"newline removed", "a\nb\n", "a\nb"},
		{"from empty", "", "a\nb\n"},
		{"to empty", "a\nb\n", ""},
		{"carriage returns kept", "a\r\nb\r\n", "a\r\nX\nb\r\n"},
		{"empty lines", "\n\n\n", "\nX\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff, err := Parse(Diff(tt.original, tt.modified, "old", "new", DefaultContext))
			require.NoError(t, err)

			actual, err := Apply(tt.original, diff)

			require.NoError(t, err)
			assert.Equal(t, tt.modified, actual)
		})
	}
}

func TestDiffAndApply_RoundTripRandomInsertions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	words := []string{"a", "b", "c", "cephfs: {", "}", ""}

	for iteration := 0; iteration < 200; iteration++ {
		var original []string
		for i := rng.Intn(30); i > 0; i-- {
			original = append(original, words[rng.Intn(len(words))])
		}
		var modified []string
		for _, line := range original {
			if rng.Intn(4) == 0 {
				modified = append(modified, "inserted")
			}
			modified = append(modified, line)
		}
		originalText := strings.Join(original, "\n") + "\n"
		modifiedText := strings.Join(modified, "\n") + "\n"

		diff, err := Parse(Diff(originalText, modifiedText, "old", "new", DefaultContext))
		require.NoError(t, err)
		actual, err := Apply(originalText, diff)
		require.NoError(t, err)
		require.Equal(t, modifiedText, actual, "iteration %d", iteration)
	}
}
