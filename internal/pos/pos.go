// Package pos maps part-of-speech tags from common tagsets to simplified
// forms used by the POS token filter.
package pos

import (
	"strings"

	"github.com/corpuskit/corpuskit/pkg/errors"
)

// Supported tagsets.
const (
	TagsetUD   = "ud"   // universal dependencies
	TagsetPenn = "penn" // Penn Treebank
	TagsetWN   = "wn"   // WordNet
)

// Simplify reduces tag to one of "N" (noun), "V" (verb), "ADJ", "ADV" or
// the empty string for everything else.
func Simplify(tag string, tagset string) (string, error) {
	switch tagset {
	case TagsetUD:
		switch tag {
		case "NOUN", "PROPN":
			return "N", nil
		case "VERB":
			return "V", nil
		case "ADJ", "ADV":
			return tag, nil
		}
		return "", nil
	case TagsetPenn:
		switch {
		case strings.HasPrefix(tag, "N"), strings.HasPrefix(tag, "V"):
			return tag[:1], nil
		case strings.HasPrefix(tag, "JJ"):
			return "ADJ", nil
		case strings.HasPrefix(tag, "RB"):
			return "ADV", nil
		}
		return "", nil
	case TagsetWN:
		switch {
		case strings.HasPrefix(tag, "N"), strings.HasPrefix(tag, "V"):
			return tag[:1], nil
		case strings.HasPrefix(tag, "ADJ"), strings.HasPrefix(tag, "ADV"):
			return tag[:3], nil
		}
		return "", nil
	default:
		return "", errors.Newf(errors.ErrUnknownTagset, "%q", tagset)
	}
}
