package naming

import "strings"

// segments is a name before joining: prefixes in output order followed by the
// converted base name.
type segments struct {
	prefixes []string
	base     string
	sep      string
}

func (s segments) String() string {
	all := make([]string, 0, len(s.prefixes)+1)
	all = append(all, s.prefixes...)
	all = append(all, s.base)
	return strings.Join(all, s.sep)
}

func (s segments) prefixLen() int {
	if len(s.prefixes) == 0 {
		return 0
	}
	n := 0
	for _, p := range s.prefixes {
		n += len(p) + len(s.sep)
	}
	return n
}

// trim shortens s to fit maxLength according to mode. It never empties the
// base name; when no policy can fit the limit the result is left over-length
// for validateMaxLength to reject.
func trim(s segments, mode TrimMode, maxLength int) segments {
	if len(s.String()) <= maxLength {
		return s
	}
	switch mode {
	case TrimDropPrefixes:
		for len(s.prefixes) > 0 && len(s.String()) > maxLength {
			s.prefixes = s.prefixes[1:]
		}
		return truncateBase(s, maxLength)
	case TrimTruncateBase:
		return truncateBase(s, maxLength)
	default:
		return s
	}
}

func truncateBase(s segments, maxLength int) segments {
	budget := maxLength - s.prefixLen()
	if budget < 1 || len(s.base) <= budget {
		return s
	}
	base := s.base[:budget]
	if s.sep != "" {
		base = strings.TrimRight(base, s.sep)
	}
	s.base = base
	return s
}

func validateMaxLength(name string, maxLength int) error {
	if len(name) > maxLength {
		return &NameTooLongError{Name: name, MaxLength: maxLength}
	}
	return nil
}
