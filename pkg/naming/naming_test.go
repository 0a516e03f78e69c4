package naming

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/cdknaming/pkg/logger"
	"github.com/theory-cloud/cdknaming/pkg/observability"
)

type fakeScope struct {
	env     string
	project string
	org     string
}

func (f fakeScope) TryGetEnvironment() (string, bool)      { return f.env, f.env != "" }
func (f fakeScope) ProjectName() string                    { return f.project }
func (f fakeScope) TryGetOrganizationName() (string, bool) { return f.org, f.org != "" }

var acme = fakeScope{env: "dev", project: "Orders", org: "Acme"}

func captureLogs(t *testing.T) *observability.TestLogger {
	t.Helper()
	captured := observability.NewTestLogger()
	prev := logger.SetLogger(captured)
	t.Cleanup(func() { logger.SetLogger(prev) })
	return captured
}

func TestStrategies(t *testing.T) {
	name, err := NameBasic(acme, "myBucket", nil)
	require.NoError(t, err)
	require.Equal(t, "DevMyBucket", name)

	name, err = NameWithProject(acme, "myBucket", nil)
	require.NoError(t, err)
	require.Equal(t, "OrdersDevMyBucket", name)

	name, err = NameGlobal(acme, "myBucket", nil)
	require.NoError(t, err)
	require.Equal(t, "AcmeOrdersDevMyBucket", name)
}

func TestStrategies_KebabStyle(t *testing.T) {
	opts := &Options{Style: StyleKebab}

	name, err := NameBasic(acme, "myBucket", opts)
	require.NoError(t, err)
	require.Equal(t, "dev-my-bucket", name)

	name, err = NameWithProject(acme, "myBucket", opts)
	require.NoError(t, err)
	require.Equal(t, "orders-dev-my-bucket", name)

	name, err = NameGlobal(fakeScope{env: "dev-01!", project: "Order Service", org: "Acme"}, "myBucket", opts)
	require.NoError(t, err)
	require.Equal(t, "acme-order-service-dev01-my-bucket", name)
}

func TestName_MissingContextContributesNothing(t *testing.T) {
	name, err := NameGlobal(fakeScope{project: "Orders"}, "table", nil)
	require.NoError(t, err)
	require.Equal(t, "OrdersTable", name)

	name, err = NameGlobal(fakeScope{}, "table", nil)
	require.NoError(t, err)
	require.Equal(t, "Table", name)

	name, err = NameGlobal(nil, "table", nil)
	require.NoError(t, err)
	require.Equal(t, "Table", name)
}

func TestName_EnvironmentIsAlphanumeric(t *testing.T) {
	name, err := NameBasic(fakeScope{env: "dev-01!"}, "queue", nil)
	require.NoError(t, err)
	require.Equal(t, "Dev01Queue", name)

	name, err = NameBasic(fakeScope{env: "feature/JIRA-123_fix"}, "queue", nil)
	require.NoError(t, err)
	require.Equal(t, "FeatureJira123FixQueue", name)
}

func TestName_InvalidBaseName(t *testing.T) {
	for _, base := range []string{"", "   ", "--!"} {
		for _, fn := range []func(Scope, string, *Options) (string, error){NameBasic, NameWithProject, NameGlobal} {
			_, err := fn(acme, base, nil)
			require.ErrorIs(t, err, ErrInvalidName)

			var invalid *InvalidNameError
			require.True(t, errors.As(err, &invalid))
			require.Equal(t, base, invalid.BaseName)
		}
	}

	_, err := NameBasic(acme, "", nil)
	require.Contains(t, err.Error(), "is empty")
	_, err = NameBasic(acme, "--!", nil)
	require.Contains(t, err.Error(), "no alphanumeric")
}

func TestName_TrimDropsPrefixesFirst(t *testing.T) {
	logs := captureLogs(t)

	name, err := NameBasic(fakeScope{env: "dev"}, "myBucket", &Options{MaxLength: 10})
	require.NoError(t, err)
	require.Equal(t, "MyBucket", name)

	debug := logs.EntriesAt("debug")
	require.Len(t, debug, 1)
	require.Equal(t, "DevMyBucket", debug[0].Fields["name"])
	require.Equal(t, "MyBucket", debug[0].Fields["trimmed"])
	require.Equal(t, 10, debug[0].Fields["max_length"])
}

func TestName_TrimDropsInPriorityOrder(t *testing.T) {
	// AcmeOrdersDevMyBucket = 21 characters.
	tests := []struct {
		max  int
		want string
	}{
		{21, "AcmeOrdersDevMyBucket"},
		{20, "OrdersDevMyBucket"},
		{17, "OrdersDevMyBucket"},
		{16, "DevMyBucket"},
		{11, "DevMyBucket"},
		{10, "MyBucket"},
		{8, "MyBucket"},
		{5, "MyBuc"},
		{1, "M"},
	}
	for _, tt := range tests {
		name, err := NameGlobal(acme, "myBucket", &Options{MaxLength: tt.max})
		require.NoError(t, err, "max %d", tt.max)
		require.Equal(t, tt.want, name, "max %d", tt.max)
	}
}

func TestName_TrimTruncateBase(t *testing.T) {
	opts := &Options{MaxLength: 15, Trim: TrimTruncateBase}

	name, err := NameWithProject(acme, "myBucket", opts)
	require.NoError(t, err)
	require.Equal(t, "OrdersDevMyBuck", name)

	_, err = NameWithProject(acme, "myBucket", &Options{MaxLength: 9, Trim: TrimTruncateBase})
	var tooLong *NameTooLongError
	require.ErrorAs(t, err, &tooLong)
	require.Equal(t, "OrdersDevMyBucket", tooLong.Name)
	require.Equal(t, 9, tooLong.MaxLength)

	name, err = NameWithProject(acme, "myBucket", &Options{MaxLength: 10, Trim: TrimTruncateBase})
	require.NoError(t, err)
	require.Equal(t, "OrdersDevM", name)
}

func TestName_TrimNone(t *testing.T) {
	_, err := NameBasic(acme, "myBucket", &Options{MaxLength: 10, Trim: TrimNone})
	require.ErrorIs(t, err, ErrNameTooLong)
	require.Contains(t, err.Error(), `"DevMyBucket" is 11 characters, limit is 10`)

	name, err := NameBasic(acme, "myBucket", &Options{MaxLength: 11, Trim: TrimNone})
	require.NoError(t, err)
	require.Equal(t, "DevMyBucket", name)
}

func TestName_KebabTrimDoesNotEndWithSeparator(t *testing.T) {
	name, err := NameBasic(acme, "myBucket", &Options{MaxLength: 3, Style: StyleKebab})
	require.NoError(t, err)
	require.Equal(t, "my", name)

	name, err = NameWithProject(acme, "myBucket", &Options{MaxLength: 14, Style: StyleKebab, Trim: TrimTruncateBase})
	require.NoError(t, err)
	require.Equal(t, "orders-dev-my", name)
}

func TestName_DefaultMaxLength(t *testing.T) {
	long := strings.Repeat("segment", 12)

	name, err := NameBasic(acme, long, nil)
	require.NoError(t, err)
	require.Len(t, name, DefaultMaxLength)
	require.True(t, strings.HasPrefix(name, "Segment"))

	_, err = NameBasic(acme, long, &Options{Trim: TrimNone})
	var tooLong *NameTooLongError
	require.ErrorAs(t, err, &tooLong)
	require.Equal(t, DefaultMaxLength, tooLong.MaxLength)
}

func TestName_InvalidOptions(t *testing.T) {
	_, err := NameBasic(acme, "bucket", &Options{MaxLength: -1})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = NameBasic(acme, "bucket", &Options{Trim: TrimMode(99)})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = NameBasic(acme, "bucket", &Options{Style: Style(99)})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = Name(acme, Strategy(99), "bucket", nil)
	var invalid *InvalidOptionsError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "Strategy", invalid.Field)
}

func TestName_NoLogWithoutTrim(t *testing.T) {
	logs := captureLogs(t)

	_, err := NameGlobal(acme, "myBucket", nil)
	require.NoError(t, err)
	require.Empty(t, logs.Entries())
}

func TestResolve(t *testing.T) {
	info := Resolve(fakeScope{env: "dev-01!", project: "order service", org: "acme corp"})
	require.Equal(t, ContextualInfo{
		Environment:      "Dev01",
		ProjectName:      "OrderService",
		OrganizationName: "AcmeCorp",
	}, info)

	require.Equal(t, ContextualInfo{}, Resolve(nil))
}

func TestParseEnums(t *testing.T) {
	for _, s := range []Strategy{StrategyBasic, StrategyWithProject, StrategyGlobal} {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	for _, m := range []TrimMode{TrimDropPrefixes, TrimTruncateBase, TrimNone} {
		got, err := ParseTrimMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	for _, s := range []Style{StylePascal, StyleKebab} {
		got, err := ParseStyle(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	_, err := ParseStrategy("regional")
	require.ErrorIs(t, err, ErrInvalidOptions)
	_, err = ParseTrimMode("middle")
	require.ErrorIs(t, err, ErrInvalidOptions)
	_, err = ParseStyle("snake")
	require.ErrorIs(t, err, ErrInvalidOptions)

	require.Equal(t, "unknown", Strategy(9).String())
	require.Equal(t, "unknown", TrimMode(9).String())
	require.Equal(t, "unknown", Style(9).String())
}
