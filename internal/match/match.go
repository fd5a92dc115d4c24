// Package match evaluates search patterns against token sequences and turns
// the resulting boolean match vectors into context windows and runs of
// subsequent matches.
package match

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	"github.com/corpuskit/corpuskit/pkg/errors"
)

// Mode selects how a pattern is compared against each token.
type Mode string

const (
	ModeExact Mode = "exact"
	ModeRegex Mode = "regex"
	ModeGlob  Mode = "glob"
)

// GlobMethod selects where a glob pattern may match inside a token.
type GlobMethod string

const (
	// GlobMatch anchors the pattern at the start of the token.
	GlobMatch GlobMethod = "match"
	// GlobSearch allows the pattern anywhere in the token.
	GlobSearch GlobMethod = "search"
)

// Options bundles the matching parameters shared by every search operation.
// The zero value means exact, case-sensitive matching.
type Options struct {
	Mode       Mode
	IgnoreCase bool
	GlobMethod GlobMethod
}

func (o Options) mode() (Mode, error) {
	switch o.Mode {
	case "":
		return ModeExact, nil
	case ModeExact, ModeRegex, ModeGlob:
		return o.Mode, nil
	default:
		return "", errors.Newf(errors.ErrUnknownMatchMode, "%q", o.Mode)
	}
}

func (o Options) globMethod() (GlobMethod, error) {
	switch o.GlobMethod {
	case "":
		return GlobMatch, nil
	case GlobMatch, GlobSearch:
		return o.GlobMethod, nil
	default:
		return "", errors.Newf(errors.ErrUnknownGlobMethod, "%q", o.GlobMethod)
	}
}

// Match compares pattern against every token and returns a boolean vector of
// the same length. Exact mode uses string equality, regex mode uses search
// semantics (a match anywhere in the token counts), glob mode compiles a
// shell-style pattern whose anchoring is controlled by Options.GlobMethod.
// An empty token sequence returns an empty vector without compiling the
// pattern.
func Match(pattern string, tokens []string, opts Options) ([]bool, error) {
	mode, err := opts.mode()
	if err != nil {
		return nil, err
	}

	out := make([]bool, len(tokens))
	if len(tokens) == 0 {
		return out, nil
	}

	switch mode {
	case ModeExact:
		for i, t := range tokens {
			if opts.IgnoreCase {
				out[i] = strings.EqualFold(t, pattern)
			} else {
				out[i] = t == pattern
			}
		}
	case ModeRegex:
		expr := pattern
		if opts.IgnoreCase {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, errors.Newf(errors.ErrInvalidInput, "compiling regex %q: %v", pattern, err)
		}
		for i, t := range tokens {
			out[i] = re.MatchString(t)
		}
	case ModeGlob:
		method, err := opts.globMethod()
		if err != nil {
			return nil, err
		}
		g, err := compileGlob(pattern, method, opts.IgnoreCase)
		if err != nil {
			return nil, err
		}
		for i, t := range tokens {
			if opts.IgnoreCase {
				t = strings.ToLower(t)
			}
			out[i] = g.Match(t)
		}
	}

	return out, nil
}

// MatchAny ORs the match vectors of all patterns over tokens.
func MatchAny(patterns []string, tokens []string, opts Options) ([]bool, error) {
	out := make([]bool, len(tokens))
	for _, pat := range patterns {
		m, err := Match(pat, tokens, opts)
		if err != nil {
			return nil, err
		}
		for i, b := range m {
			out[i] = out[i] || b
		}
	}
	return out, nil
}

// compileGlob builds the glob matcher for the given method. The match
// method anchors at the token start only, so a trailing wildcard is added;
// the search method wraps the pattern in wildcards on both sides. Case
// folding is done by lowercasing pattern and token, since the glob engine
// has no case-insensitive flag.
func compileGlob(pattern string, method GlobMethod, ignoreCase bool) (glob.Glob, error) {
	if ignoreCase {
		pattern = strings.ToLower(pattern)
	}
	switch method {
	case GlobSearch:
		pattern = "*" + pattern + "*"
	default:
		pattern = pattern + "*"
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Newf(errors.ErrInvalidInput, "compiling glob %q: %v", pattern, err)
	}
	return g, nil
}
