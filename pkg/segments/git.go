package segments

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"gitlab.com/tinyland/lab/pulse-line/pkg/config"
)

// GitSegment shows the branch and dirty-file count of the workspace
// repository. It is absent when the workspace directory is not inside a git
// repository or when git state cannot be read; probe failures are never
// surfaced as errors.
type GitSegment struct{}

func NewGitSegment() *GitSegment { return &GitSegment{} }

func (g *GitSegment) ID() ID { return IDGit }

func (g *GitSegment) Collect(in *config.InputData) *SegmentData {
	dir := in.Workspace.CurrentDir
	if dir == "" {
		dir = in.Cwd
	}
	if dir == "" {
		return nil
	}

	gitDir := findGitDir(dir)
	if gitDir == "" {
		return nil
	}

	head, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return nil
	}
	branch := BranchFromHead(string(head))
	if branch == "" {
		return nil
	}

	data := &SegmentData{
		Primary:  branch,
		Metadata: map[string]string{"git_dir": gitDir},
	}
	if dirty := dirtyCount(dir); dirty > 0 {
		data.Secondary = "±" + strconv.Itoa(dirty)
		data.Metadata["dirty"] = strconv.Itoa(dirty)
	}
	return data
}

// BranchFromHead parses the content of a .git/HEAD file. Symbolic refs
// yield the branch name; a detached HEAD yields the short commit SHA.
// Returns "" for content too short to identify.
func BranchFromHead(head string) string {
	head = strings.TrimSpace(head)
	if ref, ok := strings.CutPrefix(head, "ref: refs/heads/"); ok {
		return ref
	}
	if len(head) >= 7 {
		return head[:7]
	}
	return ""
}

// findGitDir walks up from dir looking for a .git directory.
func findGitDir(dir string) string {
	for {
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return gitDir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// dirtyCount returns the number of changed paths reported by git status.
// Any failure to run git counts as a clean tree.
func dirtyCount(dir string) int {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return 0
	}
	return CountPorcelainLines(string(out))
}

// CountPorcelainLines counts the entries in `git status --porcelain`
// output.
func CountPorcelainLines(out string) int {
	out = strings.TrimSpace(out)
	if out == "" {
		return 0
	}
	return len(strings.Split(out, "\n"))
}
