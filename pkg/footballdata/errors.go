package footballdata

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	ErrNotFound          = errors.New("endpoint not found")
	ErrMissingParam      = errors.New("missing template parameter")
	ErrMalformedTemplate = errors.New("malformed template")
)

// NotFoundError is returned when a resource, or an action under a known
// resource, is not in the endpoint table.
type NotFoundError struct {
	Resource    Resource
	Action      Action
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s: %s/%s", ErrNotFound, e.Resource, e.Action)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MissingParamError lists the placeholders of Template that had no value.
type MissingParamError struct {
	Template string
	Params   []string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("%s: %s in %q", ErrMissingParam, strings.Join(e.Params, ", "), e.Template)
}

func (e *MissingParamError) Is(target error) bool {
	return target == ErrMissingParam
}

const suggestionThreshold = 0.6

// suggest returns the candidates close enough to name to be a likely typo,
// best match first.
func suggest(name string, candidates []string) []string {
	type match struct {
		name       string
		similarity float64
	}

	var matches []match
	lower := strings.ToLower(name)
	for _, candidate := range candidates {
		distance := fuzzy.LevenshteinDistance(lower, candidate)
		maxLen := float64(max(len(lower), len(candidate)))
		if maxLen == 0 {
			continue
		}
		similarity := 1 - float64(distance)/maxLen
		if similarity >= suggestionThreshold {
			matches = append(matches, match{name: candidate, similarity: similarity})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].similarity > matches[j].similarity
	})

	suggestions := make([]string, len(matches))
	for i, m := range matches {
		suggestions[i] = m.name
	}
	return suggestions
}
