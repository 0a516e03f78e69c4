package naming

// DefaultMaxLength applies when Options.MaxLength is zero. It matches the IAM
// role name limit, the tightest of the common CloudFormation physical names.
const DefaultMaxLength = 64

// TrimMode selects how an over-length name is shortened.
type TrimMode int

const (
	// TrimDropPrefixes drops organization, then project, then environment, and
	// finally truncates the end of the base name.
	TrimDropPrefixes TrimMode = iota
	// TrimTruncateBase keeps every prefix and truncates the end of the base name.
	TrimTruncateBase
	// TrimNone leaves the name untouched; over-length names fail validation.
	TrimNone
)

func (m TrimMode) String() string {
	switch m {
	case TrimDropPrefixes:
		return "drop-prefixes"
	case TrimTruncateBase:
		return "truncate-base"
	case TrimNone:
		return "none"
	default:
		return "unknown"
	}
}

// Style selects how name segments are cased and joined.
type Style int

const (
	// StylePascal joins PascalCase segments without separators.
	StylePascal Style = iota
	// StyleKebab joins lower-case segments with "-".
	StyleKebab
)

func (s Style) String() string {
	switch s {
	case StylePascal:
		return "pascal"
	case StyleKebab:
		return "kebab"
	default:
		return "unknown"
	}
}

func (s Style) separator() string {
	if s == StyleKebab {
		return "-"
	}
	return ""
}

// Options tune a single naming call. A nil *Options means all defaults.
type Options struct {
	MaxLength int
	Trim      TrimMode
	Style     Style
}

func (o *Options) normalize() (Options, error) {
	var cfg Options
	if o != nil {
		cfg = *o
	}
	if cfg.MaxLength < 0 {
		return cfg, &InvalidOptionsError{Field: "MaxLength", Message: "must not be negative"}
	}
	if cfg.MaxLength == 0 {
		cfg.MaxLength = DefaultMaxLength
	}
	switch cfg.Trim {
	case TrimDropPrefixes, TrimTruncateBase, TrimNone:
	default:
		return cfg, &InvalidOptionsError{Field: "Trim", Message: "unknown trim mode"}
	}
	switch cfg.Style {
	case StylePascal, StyleKebab:
	default:
		return cfg, &InvalidOptionsError{Field: "Style", Message: "unknown style"}
	}
	return cfg, nil
}

// ParseTrimMode maps the textual form of a TrimMode back to its value.
func ParseTrimMode(value string) (TrimMode, error) {
	for _, m := range []TrimMode{TrimDropPrefixes, TrimTruncateBase, TrimNone} {
		if m.String() == value {
			return m, nil
		}
	}
	return 0, &InvalidOptionsError{Field: "Trim", Message: "unknown trim mode " + value}
}

// ParseStyle maps the textual form of a Style back to its value.
func ParseStyle(value string) (Style, error) {
	for _, s := range []Style{StylePascal, StyleKebab} {
		if s.String() == value {
			return s, nil
		}
	}
	return 0, &InvalidOptionsError{Field: "Style", Message: "unknown style " + value}
}
