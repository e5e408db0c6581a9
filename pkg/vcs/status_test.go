package vcs

import (
	"strings"
	"testing"

	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Status
	}{
		{
			name: "clean branch with upstream",
			input: `# branch.oid 4b825dc642cb6eb9a060e54bf8d69288fbee4904
# branch.head main
# branch.upstream origin/main
# branch.ab +2 -0
`,
			want: Status{
				Branch:      "main",
				Commit:      "4b825dc642cb6eb9a060e54bf8d69288fbee4904",
				HasUpstream: true,
				Ahead:       2,
			},
		},
		{
			name: "detached head",
			input: `# branch.oid 4b825dc642cb6eb9a060e54bf8d69288fbee4904
# branch.head (detached)
`,
			want: Status{
				Commit:   "4b825dc642cb6eb9a060e54bf8d69288fbee4904",
				Detached: true,
			},
		},
		{
			name: "fresh repository",
			input: `# branch.oid (initial)
# branch.head main
? notes.txt
`,
			want: Status{Branch: "main", Untracked: 1},
		},
		{
			name: "mixed changes",
			input: `# branch.oid 1111111111111111111111111111111111111111
# branch.head feature/x
1 .M N... 100644 100644 100644 aaa bbb README.md
1 MM N... 100644 100644 100644 aaa bbb both.go
1 A. N... 000000 100644 100644 000 bbb added.go
2 R. N... 100644 100644 100644 aaa bbb R100 new.go	old.go
1 .D N... 100644 100644 000000 aaa aaa gone.go
u UU N... 100644 100644 100644 100644 aaa bbb ccc conflict.go
? a.txt
? b.txt
! ignored.log
`,
			want: Status{
				Branch:     "feature/x",
				Commit:     "1111111111111111111111111111111111111111",
				Modified:   3,
				Staged:     2,
				Untracked:  2,
				Conflicted: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader("# branch.ab +x -1\n"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))

	_, err = Parse(strings.NewReader("1 M\n"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))
}

func TestHead(t *testing.T) {
	assert.Equal(t, "main", (&Status{Branch: "main"}).Head())
	assert.Equal(t, "4b825dc", (&Status{Commit: "4b825dc642cb", Detached: true}).Head())
	assert.Equal(t, "abc", (&Status{Commit: "abc", Detached: true}).Head())
}
