// Package vcs reads the working tree state of a git repository.
package vcs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/opsline/pkg/errors"
)

// ShortCommitLen is the length of the commit id shown for a detached HEAD.
const ShortCommitLen = 7

// Status is a snapshot of one repository.
type Status struct {
	Branch   string
	Commit   string
	Detached bool

	// HasUpstream is false when the branch tracks nothing; Ahead and
	// Behind are zero in that case.
	HasUpstream bool
	Ahead       int
	Behind      int

	Staged     int
	Modified   int
	Untracked  int
	Conflicted int
}

// Head returns the branch name, or the short commit id when detached.
// It is empty for a repository without commits in detached state.
func (s *Status) Head() string {
	if !s.Detached {
		return s.Branch
	}
	if len(s.Commit) > ShortCommitLen {
		return s.Commit[:ShortCommitLen]
	}
	return s.Commit
}

// Parse reads `git status --porcelain=v2 --branch` output.
func Parse(r io.Reader) (*Status, error) {
	st := &Status{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := st.parseLine(line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrDecode, "read git status")
	}
	return st, nil
}

func (s *Status) parseLine(line string) error {
	switch line[0] {
	case '#':
		return s.parseHeader(strings.Fields(line[1:]))
	case '1', '2':
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields[1]) != 2 {
			return errors.Newf(errors.ErrDecode, "malformed change entry %q", line)
		}
		s.countChange(fields[1][0], fields[1][1])
	case 'u':
		s.Conflicted++
	case '?':
		s.Untracked++
	}
	return nil
}

func (s *Status) parseHeader(fields []string) error {
	if len(fields) < 2 {
		return nil
	}
	switch fields[0] {
	case "branch.oid":
		if fields[1] != "(initial)" {
			s.Commit = fields[1]
		}
	case "branch.head":
		if fields[1] == "(detached)" {
			s.Detached = true
		} else {
			s.Branch = fields[1]
		}
	case "branch.ab":
		if len(fields) != 3 {
			return errors.Newf(errors.ErrDecode, "malformed ahead/behind header %q", strings.Join(fields, " "))
		}
		ahead, err := strconv.Atoi(strings.TrimPrefix(fields[1], "+"))
		if err != nil {
			return errors.Wrap(err, errors.ErrDecode, "parse ahead count")
		}
		behind, err := strconv.Atoi(strings.TrimPrefix(fields[2], "-"))
		if err != nil {
			return errors.Wrap(err, errors.ErrDecode, "parse behind count")
		}
		s.HasUpstream = true
		s.Ahead, s.Behind = ahead, behind
	}
	return nil
}

// countChange files each entry under exactly one bucket. Worktree changes
// win over index changes.
func (s *Status) countChange(index, worktree byte) {
	switch {
	case strings.IndexByte("MDT", worktree) >= 0:
		s.Modified++
	case strings.IndexByte("AMDRCT", index) >= 0:
		s.Staged++
	}
}
