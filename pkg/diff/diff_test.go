package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte(".acme-button { display: flex; }\n")
	require.Empty(t, GenerateUnifiedDiff(content, content, "expected", "actual"))
}

func TestGenerateUnifiedDiff_SingleLineChange(t *testing.T) {
	t.Parallel()

	expected := []byte("a {\n  color: red;\n}\n")
	actual := []byte("a {\n  color: blue;\n}\n")

	result := GenerateUnifiedDiff(expected, actual, "styles.css", "generated")

	require.Contains(t, result, "--- styles.css")
	require.Contains(t, result, "+++ generated")
	require.Contains(t, result, "@@ -1,3 +1,3 @@")
	require.Contains(t, result, "-  color: red;")
	require.Contains(t, result, "+  color: blue;")
	require.Contains(t, result, " a {")
}

func TestGenerateUnifiedDiff_AddedLines(t *testing.T) {
	t.Parallel()

	expected := []byte("one\n")
	actual := []byte("one\ntwo\n")

	result := GenerateUnifiedDiff(expected, actual, "old", "new")
	require.Contains(t, result, " one\n")
	require.Contains(t, result, "+two\n")
	require.NotContains(t, result, "-one")
}

func TestGenerateUnifiedDiff_Truncation(t *testing.T) {
	t.Parallel()

	var expectedLines, actualLines []string
	for i := 0; i < 11000; i++ {
		expectedLines = append(expectedLines, "expected line")
		actualLines = append(actualLines, "actual line")
	}

	result := GenerateUnifiedDiff(
		[]byte(strings.Join(expectedLines, "\n")+"\n"),
		[]byte(strings.Join(actualLines, "\n")+"\n"),
		"expected", "actual",
	)
	require.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
}
