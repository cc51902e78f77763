package navigation

import (
	"fmt"
	"net/url"
	"strings"
)

type segment struct {
	literal  string
	param    string
	optional bool
}

// pattern is a compiled route path such as "/post/:date?".
// Only the final segment may be optional.
type pattern struct {
	raw      string
	segments []segment
}

func compilePattern(raw string) (pattern, error) {
	if !strings.HasPrefix(raw, "/") {
		return pattern{}, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, raw)
	}

	parts := splitPath(raw)
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for i, part := range parts {
		if part == "" {
			return pattern{}, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, raw)
		}
		if !strings.HasPrefix(part, ":") {
			segments = append(segments, segment{literal: part})
			continue
		}

		name := part[1:]
		optional := strings.HasSuffix(name, "?")
		name = strings.TrimSuffix(name, "?")

		if name == "" {
			return pattern{}, fmt.Errorf("%w: %q has an unnamed parameter", ErrInvalidPattern, raw)
		}
		if seen[name] {
			return pattern{}, fmt.Errorf("%w: %q repeats parameter %s", ErrInvalidPattern, raw, name)
		}
		if optional && i != len(parts)-1 {
			return pattern{}, fmt.Errorf("%w: %q optional parameter %s must be last", ErrInvalidPattern, raw, name)
		}

		seen[name] = true
		segments = append(segments, segment{param: name, optional: optional})
	}

	return pattern{raw: raw, segments: segments}, nil
}

// shapes lists the path shapes a pattern accepts. Parameter names do not
// contribute, so "/post/:date" and "/post/:id" share a shape, and an optional
// trailing parameter accepts both the shorter and the longer shape.
func (p pattern) shapes() []string {
	var b strings.Builder
	var out []string
	for _, seg := range p.segments {
		switch {
		case seg.param == "":
			b.WriteByte('/')
			b.WriteString(seg.literal)
		case seg.optional:
			out = append(out, shapeOf(b.String()))
			b.WriteString("/:")
		default:
			b.WriteString("/:")
		}
	}
	return append(out, shapeOf(b.String()))
}

func shapeOf(s string) string {
	if s == "" {
		return "/"
	}
	return s
}

func (p pattern) match(path string) (map[string]string, bool) {
	parts := splitPath(path)

	required := len(p.segments)
	if required > 0 && p.segments[required-1].optional {
		required--
	}
	if len(parts) < required || len(parts) > len(p.segments) {
		return nil, false
	}

	params := make(map[string]string)
	for i, part := range parts {
		seg := p.segments[i]
		if part == "" {
			return nil, false
		}
		if seg.param == "" {
			if seg.literal != part {
				return nil, false
			}
			continue
		}
		params[seg.param] = part
	}

	return params, true
}

func (p pattern) build(params map[string]string) (string, error) {
	var b strings.Builder
	for _, seg := range p.segments {
		if seg.param == "" {
			b.WriteByte('/')
			b.WriteString(seg.literal)
			continue
		}

		v := params[seg.param]
		if v == "" {
			if seg.optional {
				continue
			}
			return "", fmt.Errorf("%w: %s requires %s", ErrMissingParam, p.raw, seg.param)
		}
		b.WriteByte('/')
		b.WriteString(url.PathEscape(v))
	}

	if b.Len() == 0 {
		return "/", nil
	}
	return b.String(), nil
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
