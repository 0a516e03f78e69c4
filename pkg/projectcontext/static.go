package projectcontext

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/theory-cloud/cdknaming/pkg/naming"
)

// Static is a fixed naming scope. Blank fields are treated as absent.
type Static struct {
	Environment  string `yaml:"environment"`
	Project      string `yaml:"project"`
	Organization string `yaml:"organization"`
}

var _ naming.Scope = (*Static)(nil)

func (s *Static) TryGetEnvironment() (string, bool) {
	if s == nil {
		return "", false
	}
	env := strings.TrimSpace(s.Environment)
	return env, env != ""
}

func (s *Static) ProjectName() string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(s.Project)
}

func (s *Static) TryGetOrganizationName() (string, bool) {
	if s == nil {
		return "", false
	}
	org := strings.TrimSpace(s.Organization)
	return org, org != ""
}

// WithEnvironment returns a copy of s targeting env. A blank env keeps the
// current environment.
func (s *Static) WithEnvironment(env string) *Static {
	next := &Static{}
	if s != nil {
		*next = *s
	}
	if strings.TrimSpace(env) != "" {
		next.Environment = env
	}
	return next
}

// LoadFile reads a cdk.json-style context file. JSON and YAML are both
// accepted.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("projectcontext: read %s: %w", path, err)
	}
	static, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("projectcontext: %s: %w", path, err)
	}
	return static, nil
}

// Parse reads context keys from the "context" mapping of data, or from its top
// level when there is no such mapping.
func Parse(data []byte) (*Static, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse context: %w", err)
	}

	values := doc
	if nested, ok := doc["context"].(map[string]any); ok {
		values = nested
	}

	mapScope := FromNode(mapReader(values))
	env, _ := mapScope.TryGetEnvironment()
	org, _ := mapScope.TryGetOrganizationName()
	return &Static{
		Environment:  env,
		Project:      mapScope.ProjectName(),
		Organization: org,
	}, nil
}

type mapReader map[string]any

func (m mapReader) TryGetContext(key *string) interface{} {
	if key == nil {
		return nil
	}
	return m[*key]
}
