// Package projectcontext resolves the environment, project and organization a
// resource name is prefixed with.
//
// Values come from CDK context (cdk.json "context", or -c key=value on the
// command line) or from a fixed Static value.
package projectcontext

import (
	"fmt"
	"strings"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/cdknaming/pkg/naming"
)

// Context keys, in lookup order.
var (
	EnvironmentKeys  = []string{"environment", "env"}
	ProjectKeys      = []string{"project", "name"}
	OrganizationKeys = []string{"organization", "author-organization"}
)

// ContextReader is the part of constructs.Node a NodeScope needs.
type ContextReader interface {
	TryGetContext(key *string) interface{}
}

// NodeScope reads naming context from a construct tree node.
type NodeScope struct {
	node ContextReader
}

var _ naming.Scope = (*NodeScope)(nil)

// FromConstruct adapts any construct (App, Stack or a nested construct) into
// a naming scope. Context set on a construct is visible to its children.
func FromConstruct(c constructs.Construct) *NodeScope {
	return &NodeScope{node: c.Node()}
}

func FromNode(node ContextReader) *NodeScope {
	return &NodeScope{node: node}
}

func (s *NodeScope) TryGetEnvironment() (string, bool) {
	return s.lookup(EnvironmentKeys)
}

func (s *NodeScope) ProjectName() string {
	name, _ := s.lookup(ProjectKeys)
	return name
}

func (s *NodeScope) TryGetOrganizationName() (string, bool) {
	return s.lookup(OrganizationKeys)
}

func (s *NodeScope) lookup(keys []string) (string, bool) {
	if s == nil || s.node == nil {
		return "", false
	}
	for _, key := range keys {
		if value, ok := contextString(s.node.TryGetContext(jsii.String(key))); ok {
			return value, true
		}
	}
	return "", false
}

func contextString(value any) (string, bool) {
	var out string
	switch typed := value.(type) {
	case nil:
		return "", false
	case string:
		out = typed
	case *string:
		if typed == nil {
			return "", false
		}
		out = *typed
	default:
		out = fmt.Sprintf("%v", typed)
	}
	out = strings.TrimSpace(out)
	return out, out != ""
}
