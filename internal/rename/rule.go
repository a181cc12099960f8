package rename

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Sentinel tokens understood by DeriveRule. They are compared
// case-insensitively.
const (
	TokenAdd  = "add"
	TokenAll  = "all"
	TokenNone = "none"
)

// MatchMode selects which files a rule applies to and what it strips.
type MatchMode int

const (
	// MatchExact matches names ending in ".<ext>" and strips that suffix.
	MatchExact MatchMode = iota
	// MatchAll matches every file and strips from the last dot onwards.
	// A name without a dot is left unchanged before the append.
	MatchAll
	// AddOnly matches every file and strips nothing.
	AddOnly
)

func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "match-exact"
	case MatchAll:
		return "match-all"
	case AddOnly:
		return "add-only"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ReplaceMode selects what is appended after stripping.
type ReplaceMode int

const (
	// AppendExact appends ".<ext>".
	AppendExact ReplaceMode = iota
	// Remove appends nothing, dropping the extension.
	Remove
)

func (m ReplaceMode) String() string {
	switch m {
	case AppendExact:
		return "append-exact"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("ReplaceMode(%d)", int(m))
	}
}

// Rule is the matching and rewriting rule derived from the two user tokens.
// Preview and execution both compute new names through NewName.
type Rule struct {
	Match   MatchMode
	Replace ReplaceMode
	From    string // extension token for MatchExact, without the dot
	To      string // extension token for AppendExact, without the dot
}

// DeriveRule turns the current-extension and new-extension tokens into a
// Rule. Any token that is not a sentinel is taken literally as an extension.
func DeriveRule(currentToken, newToken string) Rule {
	var r Rule

	switch {
	case strings.EqualFold(currentToken, TokenAdd):
		r.Match = AddOnly
	case strings.EqualFold(currentToken, TokenAll):
		r.Match = MatchAll
	default:
		r.Match = MatchExact
		r.From = currentToken
	}

	if strings.EqualFold(newToken, TokenNone) {
		r.Replace = Remove
	} else {
		r.Replace = AppendExact
		r.To = newToken
	}

	return r
}

// MatchSuffix is the suffix a file name must end with to be matched.
// The empty string matches every name.
func (r Rule) MatchSuffix() string {
	if r.Match == MatchExact {
		return "." + r.From
	}
	return ""
}

// StripSuffix returns the separator cut at its last occurrence, and false
// when the rule only appends.
func (r Rule) StripSuffix() (string, bool) {
	switch r.Match {
	case MatchExact:
		return "." + r.From, true
	case MatchAll:
		return ".", true
	default:
		return "", false
	}
}

// AppendSuffix is the suffix added after stripping.
func (r Rule) AppendSuffix() string {
	if r.Replace == AppendExact {
		return "." + r.To
	}
	return ""
}

// Matcher compiles the match suffix into a glob over whole file names.
// The suffix is quoted so user tokens never act as glob syntax.
func (r Rule) Matcher() (glob.Glob, error) {
	pattern := "*" + glob.QuoteMeta(r.MatchSuffix())
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid match suffix %q: %w", r.MatchSuffix(), err)
	}
	return g, nil
}

// NewName cuts name at the last occurrence of the strip suffix and appends
// the replacement suffix. If the strip suffix does not occur the name is
// kept whole.
func (r Rule) NewName(name string) string {
	base := name
	if strip, ok := r.StripSuffix(); ok {
		if i := strings.LastIndex(name, strip); i >= 0 {
			base = name[:i]
		}
	}
	return base + r.AppendSuffix()
}

// String describes the rule for logs.
func (r Rule) String() string {
	strip, ok := r.StripSuffix()
	if !ok {
		strip = "<nothing>"
	}
	return fmt.Sprintf("%s/%s match=%q strip=%q append=%q",
		r.Match, r.Replace, r.MatchSuffix(), strip, r.AppendSuffix())
}
