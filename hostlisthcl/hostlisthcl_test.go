package hostlisthcl_test

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/specialistvlad/hostlist"
	"github.com/specialistvlad/hostlist/hostlisthcl"
)

// parseExpr is a test helper to quickly get an hcl.Expression from a string.
func parseExpr(t *testing.T, src string) hcl.Expression {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl.Pos{Line: 1, Column: 1})
	require.False(t, diags.HasErrors(), "expression parsing failed: %s", diags.Error())
	return expr
}

func TestDiagnostics(t *testing.T) {
	input := "web[1-3"
	_, err := hostlist.Parse(input)
	require.Error(t, err)

	diags := hostlisthcl.Diagnostics("cluster.hcl", input, err)
	require.True(t, diags.HasErrors())
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, "Invalid hostlist expression", d.Summary)
	assert.Contains(t, d.Detail, "unterminated bracket")
	require.NotNil(t, d.Subject)
	assert.Equal(t, "cluster.hcl", d.Subject.Filename)
	// The failure is anchored at the '[' that never closed.
	assert.Equal(t, 3, d.Subject.Start.Byte)
	assert.Equal(t, 1, d.Subject.Start.Line)
	assert.Equal(t, 4, d.Subject.Start.Column)
}

func TestDiagnosticsTokenSpan(t *testing.T) {
	input := "web[x]"
	_, err := hostlist.Parse(input)
	require.Error(t, err)

	diags := hostlisthcl.Diagnostics("cluster.hcl", input, err)
	require.Len(t, diags, 1)
	require.NotNil(t, diags[0].Subject)

	// The range covers the offending token's text.
	assert.Equal(t, 4, diags[0].Subject.Start.Byte)
	assert.Equal(t, 5, diags[0].Subject.End.Byte)
}

func TestDiagnosticsNilError(t *testing.T) {
	assert.Nil(t, hostlisthcl.Diagnostics("cluster.hcl", "web[1-3]", nil))
}

func TestExpandExpression(t *testing.T) {
	expr := parseExpr(t, `"db[1-2].local"`)

	hosts, diags := hostlisthcl.ExpandExpression(expr, nil)
	require.False(t, diags.HasErrors(), diags.Error())
	assert.Equal(t, []string{"db1.local", "db2.local"}, hosts)
}

func TestExpandExpressionWithVariables(t *testing.T) {
	expr := parseExpr(t, `var.hosts`)
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(map[string]cty.Value{
				"hosts": cty.StringVal("a,b"),
			}),
		},
	}

	hosts, diags := hostlisthcl.ExpandExpression(expr, ctx)
	require.False(t, diags.HasErrors(), diags.Error())
	assert.Equal(t, []string{"a", "b"}, hosts)
}

func TestExpandExpressionErrors(t *testing.T) {
	t.Run("not a string", func(t *testing.T) {
		hosts, diags := hostlisthcl.ExpandExpression(parseExpr(t, `5`), nil)
		assert.Nil(t, hosts)
		require.True(t, diags.HasErrors())
		assert.Contains(t, diags[0].Detail, "non-null string")
	})

	t.Run("invalid expression", func(t *testing.T) {
		hosts, diags := hostlisthcl.ExpandExpression(parseExpr(t, `"web["`), nil)
		assert.Nil(t, hosts)
		require.True(t, diags.HasErrors())
		require.NotNil(t, diags[0].Subject)
		assert.Equal(t, "test.hcl", diags[0].Subject.Filename)
	})
}

func TestExpandFunc(t *testing.T) {
	ctx := &hcl.EvalContext{
		Functions: map[string]function.Function{
			"hostexpand": hostlisthcl.ExpandFunc,
		},
	}

	val, diags := parseExpr(t, `hostexpand("web[1-3]")`).Value(ctx)
	require.False(t, diags.HasErrors(), diags.Error())

	want := cty.ListVal([]cty.Value{
		cty.StringVal("web1"),
		cty.StringVal("web2"),
		cty.StringVal("web3"),
	})
	assert.True(t, want.RawEquals(val), "got %#v", val)
}

func TestExpandFuncError(t *testing.T) {
	ctx := &hcl.EvalContext{
		Functions: map[string]function.Function{
			"hostexpand": hostlisthcl.ExpandFunc,
		},
	}

	_, diags := parseExpr(t, `hostexpand("a,")`).Value(ctx)
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error(), "trailing separator")
}
