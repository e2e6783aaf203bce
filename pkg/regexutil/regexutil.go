// Package regexutil provides regular expression helpers with pattern caching
package regexutil

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/dperussina/code-library/pkg/errors"
)

// cache holds compiled patterns so repeated calls with the same pattern
// skip recompilation.
var cache sync.Map // pattern string -> *regexp.Regexp

func compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := cache.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrorTypeValidation, "invalid pattern %q", pattern)
	}

	cache.Store(pattern, re)
	return re, nil
}

// Find returns the first match of pattern in text, or "" when there is
// no match.
func Find(text, pattern string) (string, error) {
	re, err := compile(pattern)
	if err != nil {
		return "", err
	}
	return re.FindString(text), nil
}

// FindAll returns all non-overlapping matches of pattern in text.
func FindAll(text, pattern string) ([]string, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.FindAllString(text, -1), nil
}

// FindGroups returns named capture groups from the first match. Unnamed
// groups are keyed by their index.
func FindGroups(text, pattern string) (map[string]string, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	match := re.FindStringSubmatch(text)
	if match == nil {
		return nil, nil
	}

	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if i == 0 {
			continue
		}
		if name == "" {
			groups[strconv.Itoa(i)] = match[i]
		} else {
			groups[name] = match[i]
		}
	}
	return groups, nil
}

// Match reports whether pattern matches anywhere in text.
func Match(text, pattern string) (bool, error) {
	re, err := compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}
