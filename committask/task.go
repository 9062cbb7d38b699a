// Package committask runs the git commit for a finished draft off the UI
// loop and reports the outcome on the bus.
package committask

import (
	"context"
	"fmt"

	"github.com/BrianJOC/coco/component"
	"github.com/BrianJOC/coco/logger"
	"github.com/BrianJOC/coco/state"
	"github.com/BrianJOC/coco/utils/gitcli"
)

// Run commits the current draft and publishes exactly one of
// committing:committed or committing:failed. The state lock is only held
// while snapshotting and storing the result.
func Run(ctx context.Context, st *state.AppState, runner gitcli.Runner, dir string, pub component.Publisher) error {
	record, err := execute(ctx, st, runner, dir)
	if err != nil {
		logger.Error("commit failed: %v", err)
		publish(pub, component.MsgCommittingFailed)
		return err
	}
	st.SetCommitResult(record)
	logger.Info("created commit %s", record.Hash)
	publish(pub, component.MsgCommittingCommitted)
	return nil
}

// Spawn starts Run on its own goroutine. The returned channel yields Run's
// error once and is then closed.
func Spawn(ctx context.Context, st *state.AppState, runner gitcli.Runner, dir string, pub component.Publisher) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- Run(ctx, st, runner, dir, pub)
	}()
	return done
}

func execute(ctx context.Context, st *state.AppState, runner gitcli.Runner, dir string) (state.CommitRecord, error) {
	if runner == nil {
		return state.CommitRecord{}, fmt.Errorf("commit task: runner is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	message := st.Message().String()
	logger.Debug("running git commit in %q", dir)

	out, err := runner.Commit(ctx, message, dir)
	if err != nil {
		return state.CommitRecord{}, err
	}
	hash, branch, err := gitcli.ParseCommitOutput(out)
	if err != nil {
		return state.CommitRecord{}, err
	}
	logger.Debug("commit %s on %s", hash, branch)

	shown, err := runner.Show(ctx, hash, dir)
	if err != nil {
		return state.CommitRecord{}, err
	}
	info, err := gitcli.ParseShowOutput(shown)
	if err != nil {
		return state.CommitRecord{}, err
	}
	return state.CommitRecord{
		Hash:        info.Hash,
		Author:      info.Author,
		AuthorEmail: info.AuthorEmail,
		Date:        info.Date,
	}, nil
}

func publish(pub component.Publisher, msg component.Msg) {
	if pub == nil {
		return
	}
	pub.Publish(msg)
}
