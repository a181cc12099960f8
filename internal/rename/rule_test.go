package rename

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveRule(t *testing.T) {
	tests := []struct {
		name        string
		current     string
		newExt      string
		match       MatchMode
		replace     ReplaceMode
		matchSuffix string
		strip       string
		stripOK     bool
		appendSfx   string
	}{
		{"add", "add", "dat", AddOnly, AppendExact, "", "", false, ".dat"},
		{"add is case-insensitive", "ADD", "dat", AddOnly, AppendExact, "", "", false, ".dat"},
		{"all", "all", "dat", MatchAll, AppendExact, "", ".", true, ".dat"},
		{"all to none", "All", "none", MatchAll, Remove, "", ".", true, ""},
		{"exact", "avi", "dat", MatchExact, AppendExact, ".avi", ".avi", true, ".dat"},
		{"exact to none", "avi", "NONE", MatchExact, Remove, ".avi", ".avi", true, ""},
		{"sentinels are not extensions on the other side", "none", "add", MatchExact, AppendExact, ".none", ".none", true, ".add"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DeriveRule(tt.current, tt.newExt)
			assert.Equal(t, tt.match, r.Match)
			assert.Equal(t, tt.replace, r.Replace)
			assert.Equal(t, tt.matchSuffix, r.MatchSuffix())

			strip, ok := r.StripSuffix()
			assert.Equal(t, tt.stripOK, ok)
			assert.Equal(t, tt.strip, strip)
			assert.Equal(t, tt.appendSfx, r.AppendSuffix())
		})
	}
}

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		current string
		newExt  string
		file    string
		want    string
	}{
		// add never strips
		{"add to bare name", "add", "dat", "video", "video.dat"},
		{"add keeps extension", "add", "dat", "video.avi", "video.avi.dat"},
		{"add keeps trailing dot", "add", "dat", "video.", "video..dat"},
		{"add none is identity", "add", "none", "video.avi", "video.avi"},

		// all cuts at the last dot, no dot leaves the name alone
		{"all replaces extension", "all", "dat", "video.avi", "video.dat"},
		{"all on bare name appends", "all", "dat", "video", "video.dat"},
		{"all only cuts last segment", "all", "dat", "archive.tar.gz", "archive.tar.dat"},
		{"all strips trailing dot", "all", "dat", "video.", "video.dat"},
		{"all on dotfile", "all", "dat", ".bashrc", ".dat"},
		{"all none strips extension", "all", "none", "video.avi", "video"},
		{"all none on bare name is identity", "all", "none", "video", "video"},

		// exact
		{"exact rewrites", "avi", "dat", "movie.avi", "movie.dat"},
		{"exact second file", "avi", "dat", "movie2.avi", "movie2.dat"},
		{"exact strips", "avi", "none", "movie.avi", "movie"},
		{"exact cuts only the last occurrence", "avi", "dat", "a.avi.b.avi", "a.avi.b.dat"},
		{"exact with multi-dot token", "tar.gz", "tgz", "backup.tar.gz", "backup.tgz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DeriveRule(tt.current, tt.newExt)
			assert.Equal(t, tt.want, r.NewName(tt.file))
		})
	}
}

func TestNewNameAddTwice(t *testing.T) {
	r := DeriveRule("add", "dat")
	once := r.NewName("file")
	twice := r.NewName(once)
	assert.Equal(t, "file.dat", once)
	assert.Equal(t, "file.dat.dat", twice)
}

func TestMatcher(t *testing.T) {
	tests := []struct {
		name    string
		current string
		file    string
		want    bool
	}{
		{"exact matches suffix", "avi", "movie.avi", true},
		{"exact rejects other ext", "avi", "note.txt", false},
		{"exact needs the dot", "avi", "movieavi", false},
		{"exact is case-sensitive on names", "avi", "MOVIE.AVI", false},
		{"all matches bare names", "all", "README", true},
		{"add matches dotfiles", "add", ".hidden", true},
		{"glob metacharacters are literal", "[ab]", "x.[ab]", true},
		{"glob metacharacters do not expand", "[ab]", "x.a", false},
		{"star is literal", "*", "x.*", true},
		{"star does not match everything", "*", "x.txt", false},
		{"braces are literal", "{a,b}", "x.{a,b}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := DeriveRule(tt.current, "dat").Matcher()
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.Match(tt.file))
		})
	}
}

func TestRuleString(t *testing.T) {
	assert.Contains(t, DeriveRule("add", "dat").String(), "add-only")
	assert.Contains(t, DeriveRule("add", "dat").String(), `strip="<nothing>"`)
	assert.Contains(t, DeriveRule("all", "none").String(), "match-all/remove")
	assert.Contains(t, DeriveRule("avi", "dat").String(), `match=".avi"`)
	assert.Equal(t, "MatchMode(9)", MatchMode(9).String())
	assert.Equal(t, "ReplaceMode(9)", ReplaceMode(9).String())
}
