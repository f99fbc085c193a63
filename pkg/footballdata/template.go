package footballdata

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Placeholders returns the names of the {name} placeholders in template, in
// order of appearance. Repeated names are reported once.
func Placeholders(template string) ([]string, error) {
	var names []string
	seen := make(map[string]bool)

	rest := template
	for {
		open := strings.IndexAny(rest, "{}")
		if open < 0 {
			return names, nil
		}
		if rest[open] == '}' {
			return nil, fmt.Errorf("%w: unmatched '}' in %q", ErrMalformedTemplate, template)
		}

		end := strings.IndexAny(rest[open+1:], "{}")
		if end < 0 || rest[open+1+end] != '}' {
			return nil, fmt.Errorf("%w: unmatched '{' in %q", ErrMalformedTemplate, template)
		}

		name := rest[open+1 : open+1+end]
		if name == "" {
			return nil, fmt.Errorf("%w: empty placeholder in %q", ErrMalformedTemplate, template)
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		rest = rest[open+1+end+1:]
	}
}

// Fill replaces every placeholder in template with its value from params.
// Values are inserted verbatim. Params not used by the template are ignored.
func Fill(template string, params map[string]string) (string, error) {
	return fill(template, params, func(s string) string { return s })
}

func fill(template string, params map[string]string, escape func(string) string) (string, error) {
	names, err := Placeholders(template)
	if err != nil {
		return "", err
	}

	var missing []string
	replacements := make([]string, 0, 2*len(names))
	for _, name := range names {
		value, ok := params[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		replacements = append(replacements, "{"+name+"}", escape(value))
	}
	if len(missing) > 0 {
		return "", &MissingParamError{Template: template, Params: missing}
	}

	return strings.NewReplacer(replacements...).Replace(template), nil
}

// FilterValues turns filter templates such as "season={year}" into query
// values. Filters are optional, so a template with any unbound placeholder is
// left out rather than reported.
func FilterValues(templates []string, params map[string]string) (url.Values, error) {
	values := url.Values{}
	for _, template := range templates {
		key, valueTemplate, ok := strings.Cut(template, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: filter %q is not key=value", ErrMalformedTemplate, template)
		}

		value, err := Fill(valueTemplate, params)
		if err != nil {
			if errors.Is(err, ErrMissingParam) {
				continue
			}
			return nil, err
		}
		values.Set(key, value)
	}
	return values, nil
}
