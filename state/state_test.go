package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrianJOC/coco/config"
)

func TestStepStatusDefaultsToInvalid(t *testing.T) {
	t.Parallel()

	st := New(nil)
	require.Equal(t, Invalid, st.StepStatus("type"))
	st.SetStepStatus("type", Valid)
	require.Equal(t, Valid, st.StepStatus("type"))
	require.Equal(t, Invalid, st.StepStatus("unknown"))
}

func TestCommitFieldsComplete(t *testing.T) {
	t.Parallel()

	st := New(nil)
	st.SetSummary("handle nil pointer")
	require.False(t, st.CommitFieldsComplete())
	st.SetBody(nil)
	require.False(t, st.CommitFieldsComplete())
	st.SetFooter([]string{})
	require.True(t, st.CommitFieldsComplete())

	st.SetSummary("   ")
	require.False(t, st.CommitFieldsComplete())
	require.Equal(t, Invalid, st.StepStatus(CommitStepKey))
}

func TestDraftIsCopy(t *testing.T) {
	t.Parallel()

	st := New(nil)
	st.SetKind(&config.CommitKind{Name: "fix", Emoji: "🚑"})
	st.SetBody([]string{"line"})

	draft := st.Draft()
	draft.Kind.Name = "feat"
	draft.Body[0] = "changed"

	again := st.Draft()
	require.Equal(t, "fix", again.Kind.Name)
	require.Equal(t, []string{"line"}, again.Body)
}

func TestMessageHonoursEmojiToggle(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.UseEmoji = false
	st := New(cfg)
	st.SetKind(&config.CommitKind{Name: "fix", Emoji: "🚑"})
	st.SetScope("core")
	st.SetSummary("handle nil pointer")
	require.Equal(t, "fix(core): handle nil pointer", st.Message().String())

	withEmoji := New(config.Default())
	withEmoji.SetKind(&config.CommitKind{Name: "feat", Emoji: "✨"})
	withEmoji.SetSummary("add x")
	withEmoji.SetBreaking(true)
	require.Equal(t, "feat!: ✨ add x", withEmoji.Message().Title())
}

func TestCommitResultUnsetUntilStored(t *testing.T) {
	t.Parallel()

	st := New(nil)
	_, ok := st.CommitResult()
	require.False(t, ok)

	st.SetCommitResult(CommitRecord{Hash: "abc123", Author: "Dev"})
	record, ok := st.CommitResult()
	require.True(t, ok)
	require.Equal(t, "abc123", record.Hash)
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	st := New(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.SetSummary("x")
			_ = st.Message()
			st.SetStepStatus("type", Valid)
		}()
	}
	wg.Wait()
	require.Equal(t, Valid, st.StepStatus("type"))
}

func TestNilStateIsSafe(t *testing.T) {
	t.Parallel()

	var st *AppState
	st.SetSummary("x")
	require.Equal(t, Invalid, st.StepStatus("commit"))
	require.NotNil(t, st.Config())
}
