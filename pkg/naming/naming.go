package naming

import (
	"strings"

	"github.com/theory-cloud/cdknaming/pkg/logger"
)

// Scope supplies the contextual information a name is prefixed with.
//
// Implementations live in pkg/projectcontext; any CDK construct can be adapted
// with projectcontext.FromConstruct.
type Scope interface {
	TryGetEnvironment() (string, bool)
	ProjectName() string
	TryGetOrganizationName() (string, bool)
}

// Strategy selects which contextual prefixes a name carries.
type Strategy int

const (
	// StrategyBasic prefixes the environment only.
	StrategyBasic Strategy = iota
	// StrategyWithProject prefixes project and environment.
	StrategyWithProject
	// StrategyGlobal prefixes organization, project and environment.
	StrategyGlobal
)

func (s Strategy) String() string {
	switch s {
	case StrategyBasic:
		return "basic"
	case StrategyWithProject:
		return "project"
	case StrategyGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// ParseStrategy maps the textual form of a Strategy back to its value.
func ParseStrategy(value string) (Strategy, error) {
	for _, s := range []Strategy{StrategyBasic, StrategyWithProject, StrategyGlobal} {
		if s.String() == value {
			return s, nil
		}
	}
	return 0, &InvalidOptionsError{Field: "Strategy", Message: "unknown strategy " + value}
}

// ContextualInfo is the PascalCase form of what a scope contributes. Empty
// fields contribute nothing to a name.
type ContextualInfo struct {
	Environment      string
	ProjectName      string
	OrganizationName string
}

type rawInfo struct {
	environment  string
	project      string
	organization string
}

func resolveRaw(scope Scope) rawInfo {
	if scope == nil {
		return rawInfo{}
	}
	var info rawInfo
	if env, ok := scope.TryGetEnvironment(); ok {
		info.environment = env
	}
	info.project = scope.ProjectName()
	if org, ok := scope.TryGetOrganizationName(); ok {
		info.organization = org
	}
	return info
}

// Resolve reads the contextual information of scope. The environment is
// stripped of everything but ASCII letters and digits.
func Resolve(scope Scope) ContextualInfo {
	raw := resolveRaw(scope)
	return ContextualInfo{
		Environment:      stripNonAlphanumeric(PascalCase(raw.environment)),
		ProjectName:      PascalCase(raw.project),
		OrganizationName: PascalCase(raw.organization),
	}
}

// NameBasic returns the environment-prefixed name: "DevMyBucket".
func NameBasic(scope Scope, baseName string, opts *Options) (string, error) {
	return Name(scope, StrategyBasic, baseName, opts)
}

// NameWithProject returns the project- and environment-prefixed name:
// "OrdersDevMyBucket".
func NameWithProject(scope Scope, baseName string, opts *Options) (string, error) {
	return Name(scope, StrategyWithProject, baseName, opts)
}

// NameGlobal returns the fully prefixed name: "AcmeOrdersDevMyBucket".
func NameGlobal(scope Scope, baseName string, opts *Options) (string, error) {
	return Name(scope, StrategyGlobal, baseName, opts)
}

// Name builds, trims and validates a resource name for the given strategy.
func Name(scope Scope, strategy Strategy, baseName string, opts *Options) (string, error) {
	cfg, err := opts.normalize()
	if err != nil {
		return "", err
	}
	switch strategy {
	case StrategyBasic, StrategyWithProject, StrategyGlobal:
	default:
		return "", &InvalidOptionsError{Field: "Strategy", Message: "unknown strategy"}
	}

	segs, err := buildSegments(resolveRaw(scope), strategy, baseName, cfg.Style)
	if err != nil {
		return "", err
	}

	full := segs.String()
	name := trim(segs, cfg.Trim, cfg.MaxLength).String()
	if name != full {
		logger.Logger().Debug("naming: trimmed resource name", map[string]any{
			"base_name":  baseName,
			"name":       full,
			"trimmed":    name,
			"max_length": cfg.MaxLength,
			"trim_mode":  cfg.Trim.String(),
		})
	}

	if err := validateMaxLength(name, cfg.MaxLength); err != nil {
		return "", err
	}
	return name, nil
}

func buildSegments(raw rawInfo, strategy Strategy, baseName string, style Style) (segments, error) {
	convert := PascalCase
	if style == StyleKebab {
		convert = KebabCase
	}

	base := convert(baseName)
	if base == "" {
		reason := "has no alphanumeric characters"
		if strings.TrimSpace(baseName) == "" {
			reason = "is empty"
		}
		return segments{}, &InvalidNameError{BaseName: baseName, Reason: reason}
	}

	env := stripNonAlphanumeric(PascalCase(raw.environment))
	if style == StyleKebab {
		env = strings.ToLower(env)
	}

	var prefixes []string
	if strategy == StrategyGlobal {
		prefixes = appendNonEmpty(prefixes, convert(raw.organization))
	}
	if strategy == StrategyWithProject || strategy == StrategyGlobal {
		prefixes = appendNonEmpty(prefixes, convert(raw.project))
	}
	prefixes = appendNonEmpty(prefixes, env)

	return segments{prefixes: prefixes, base: base, sep: style.separator()}, nil
}

func appendNonEmpty(list []string, value string) []string {
	if value == "" {
		return list
	}
	return append(list, value)
}
