// Package split decomposes compound tokens into sub-tokens using split
// characters and/or letter-case shape changes, e.g. "US-Student" into
// "US" and "Student" or "CamelCase" into "Camel" and "Case".
package split

import (
	"strings"
	"unicode"

	"github.com/corpuskit/corpuskit/pkg/errors"
)

// MultiSplit splits s on every occurrence of any character in chars.
// Consecutive separators yield empty parts. An empty chars set returns
// the string unchanged as a single part.
func MultiSplit(s string, chars []rune) []string {
	parts := []string{s}
	for _, c := range chars {
		var next []string
		for _, p := range parts {
			next = append(next, strings.Split(p, string(c))...)
		}
		parts = next
	}
	return parts
}

// Shape returns the per-character class sequence of s: 0 for a lowercase
// letter, 1 for anything else.
func Shape(s string) []int {
	runes := []rune(s)
	shape := make([]int, len(runes))
	for i, r := range runes {
		if unicode.IsLower(r) {
			shape[i] = 0
		} else {
			shape[i] = 1
		}
	}
	return shape
}

// ShapeSplit splits s at letter-case shape boundaries. Chunks shorter than
// minPartLen are merged backward into the previous part during the scan.
// The empty string yields [""]. Concatenating the returned parts always
// reproduces s.
func ShapeSplit(s string, minPartLen int) ([]string, error) {
	if minPartLen < 1 {
		return nil, errors.Newf(errors.ErrInvalidInput, "minPartLen must be >= 1, got %d", minPartLen)
	}
	if s == "" {
		return []string{""}, nil
	}

	runes := []rune(s)
	shape := Shape(s)

	// change[i] marks a class transition between positions i-1 and i.
	change := make([]int, len(shape))
	for i := 1; i < len(shape); i++ {
		if shape[i] != shape[i-1] {
			change[i] = 1
		}
	}

	var parts []string
	n := 0
	for n < len(runes) {
		begin := 0
		if n > 0 {
			begin = indexOfChange(change, n)
			if begin < 0 {
				break
			}
		}

		offset := n + minPartLen
		if n == 0 && shape[0] == 0 {
			offset = n + 1
		}

		var chunk string
		if end := indexOfChange(change, offset); end >= 0 {
			chunk = string(runes[begin:end])
			n += end - begin
		} else {
			chunk = string(runes[begin:])
			n = len(runes)
		}

		if len(parts) == 0 ||
			(runeLen(parts[len(parts)-1]) >= minPartLen && runeLen(chunk) >= minPartLen) {
			parts = append(parts, chunk)
		} else {
			parts[len(parts)-1] += chunk
		}
	}

	return parts, nil
}

// ExpandCompound decomposes token into sub-tokens. With splitOnCase set and
// no splitChars given, segmentation is purely by letter-case shape;
// otherwise the token is split on splitChars, optionally followed by shape
// segmentation of each part. Adjacent parts are then re-merged: empty parts
// are dropped and a part shorter than minPartLen pulls the following part
// onto itself, except a still-short final part, which merges backward when
// at least two parts remain. Returns the token unchanged when splitting
// produces a single part.
func ExpandCompound(token string, splitChars []rune, minPartLen int, splitOnCase bool) ([]string, error) {
	if minPartLen < 1 {
		return nil, errors.Newf(errors.ErrInvalidInput, "minPartLen must be >= 1, got %d", minPartLen)
	}

	var parts []string
	if splitOnCase && len(splitChars) == 0 {
		var err error
		parts, err = ShapeSplit(token, minPartLen)
		if err != nil {
			return nil, err
		}
	} else {
		parts = MultiSplit(token, splitChars)
		if splitOnCase {
			var shaped []string
			for _, p := range parts {
				sub, err := ShapeSplit(p, minPartLen)
				if err != nil {
					return nil, err
				}
				shaped = append(shaped, sub...)
			}
			parts = shaped
		}
	}

	if len(parts) == 1 {
		return parts, nil
	}

	var merged []string
	add := false // signals that the current part is appended to the previous one
	for _, p := range parts {
		if p == "" {
			continue
		}
		if add && len(merged) > 0 {
			merged[len(merged)-1] += p
		} else {
			merged = append(merged, p)
		}

		add = runeLen(p) < minPartLen
		if splitOnCase {
			// all-uppercase parts ("US", "E") also pull the next part in
			add = add && isUpper(p)
		}
	}

	// a final part that still wants lengthening merges backward instead
	if add && len(merged) >= 2 {
		merged[len(merged)-2] += merged[len(merged)-1]
		merged = merged[:len(merged)-1]
	}

	if len(merged) == 0 {
		return []string{token}, nil
	}
	return merged, nil
}

// indexOfChange returns the first index >= from where change is 1, or -1.
func indexOfChange(change []int, from int) int {
	for i := from; i < len(change); i++ {
		if change[i] == 1 {
			return i
		}
	}
	return -1
}

func runeLen(s string) int {
	return len([]rune(s))
}

// isUpper reports whether s contains at least one cased character and all
// of its cased characters are uppercase.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}
