package commitmsg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTitleIncludesAllSegments(t *testing.T) {
	t.Parallel()

	msg := Message{Kind: "feat", Emoji: "✨", Scope: " api ", Summary: "add x", Breaking: true}
	require.Equal(t, "feat(api)!: ✨ add x", msg.Title())
}

func TestTitleOmitsEmptySegments(t *testing.T) {
	t.Parallel()

	msg := Message{Kind: "fix", Scope: "  ", Emoji: " ", Summary: "add x"}
	require.Equal(t, "fix: add x", msg.Title())
}

func TestStringAppendsBodyAndFooter(t *testing.T) {
	t.Parallel()

	msg := Message{
		Kind:    "fix",
		Scope:   "core",
		Summary: "handle nil pointer",
		Body:    []string{"", "guard the lookup", "  "},
		Footer:  []string{"Closes #12"},
	}
	require.Equal(t, "fix(core): handle nil pointer\n\nguard the lookup\n\nCloses #12", msg.String())
}

func TestStringSkipsBlankBody(t *testing.T) {
	t.Parallel()

	msg := Message{Kind: "fix", Summary: "tidy", Body: []string{"", " "}, Footer: []string{"Refs #3"}}
	require.Equal(t, "fix: tidy\n\nRefs #3", msg.String())
	require.Equal(t, "fix: tidy", Message{Kind: "fix", Summary: "tidy"}.String())
}

func TestHeightAndWidth(t *testing.T) {
	t.Parallel()

	msg := Message{Kind: "docs", Summary: "readme", Body: []string{"one", "two"}}
	require.Equal(t, 4, msg.Height())
	require.Equal(t, len("docs: readme"), msg.Width())
}

func TestMaxSummaryLength(t *testing.T) {
	t.Parallel()

	require.Equal(t, 59, MaxSummaryLength(72, true, "feat", "✨", "api", false))
	require.Equal(t, 62, MaxSummaryLength(72, false, "feat", "✨", "api", false))
	require.Equal(t, 66, MaxSummaryLength(72, false, "feat", "", "", true))
	require.Equal(t, 0, MaxSummaryLength(4, true, "feat", "✨", "api", true))
}
