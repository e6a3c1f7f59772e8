package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// SyncRepository clones url into dir, or pulls it when dir already holds a
// checkout. An empty branch means the remote's default branch.
func SyncRepository(ctx context.Context, url, branch, dir string) error {
	var ref plumbing.ReferenceName
	if branch != "" {
		ref = plumbing.NewBranchReferenceName(branch)
	}

	_, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("cloning repository", "url", url, "dir", dir)
		if _, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
			URL:           url,
			ReferenceName: ref,
			SingleBranch:  branch != "",
			Depth:         1,
		}); err != nil {
			return fmt.Errorf("clone %s: %w", url, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("check %s: %w", dir, err)
	}

	repo, err := git.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("open repository at %s: %w", dir, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("get worktree of %s: %w", dir, err)
	}
	slog.Info("pulling repository", "dir", dir)
	err = worktree.PullContext(ctx, &git.PullOptions{
		RemoteName:    "origin",
		ReferenceName: ref,
		SingleBranch:  branch != "",
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("pull %s: %w", dir, err)
	}
	return nil
}
