package model

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestEntityType_RoundTrip(t *testing.T) {
	for _, et := range []EntityType{EntityProject, EntityBuild, EntityTemplate} {
		parsed, err := ParseEntityType(et.String())
		require.NoError(t, err)
		assert.Equal(t, et, parsed)
	}

	_, err := ParseEntityType("AGENT")
	assert.ErrorContains(t, err, `unknown entity type "AGENT"`)
	assert.Equal(t, "EntityType(7)", EntityType(7).String())
}

func TestOption_String(t *testing.T) {
	testCases := []struct {
		name  string
		value cty.Value
		want  string
	}{
		{"string", cty.StringVal("%a%"), "%a%"},
		{"bool", cty.True, "true"},
		{"integer", cty.NumberIntVal(30), "30"},
		{"float", cty.NumberVal(big.NewFloat(1.25)), "1.25"},
		{"null", cty.NullVal(cty.String), ""},
		{"unknown", cty.UnknownVal(cty.String), ""},
		{"nil", cty.NilVal, ""},
		{"list", cty.ListVal([]cty.Value{cty.StringVal("%a%"), cty.StringVal("b")}), `["%a%","b"]`},
		{"marked string", cty.StringVal("%a%").Mark("sensitive"), "%a%"},
		{"marked number", cty.NumberIntVal(3).Mark("sensitive"), "3"},
		{"marked null", cty.NullVal(cty.String).Mark("sensitive"), ""},
		{"marked element", cty.ListVal([]cty.Value{cty.StringVal("x").Mark("sensitive")}), `["x"]`},
		{"object", cty.ObjectVal(map[string]cty.Value{"k": cty.StringVal("%v%")}), `{"k":"%v%"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Option{Key: "k", Value: tc.value}.String())
		})
	}
}

func TestProject_FullNameAndParent(t *testing.T) {
	root := NewProject("root", "Root")
	child := NewProject("child", "Child")
	leaf := NewProject("leaf", "Leaf")
	root.AddProject(child)
	child.AddProject(leaf)

	assert.Equal(t, "Root", root.FullName())
	assert.Equal(t, "Root :: Child :: Leaf", leaf.FullName())
	assert.Same(t, child, leaf.Parent())
	assert.Nil(t, root.Parent())

	bt := NewBuildType("bt", "Build")
	leaf.AddBuildType(bt)
	assert.Equal(t, "Root :: Child :: Leaf :: Build", bt.FullName())
	assert.Same(t, leaf, bt.Project())
}

func TestProject_ParametersResolveThroughAncestors(t *testing.T) {
	root := NewProject("root", "Root")
	root.AddParameter("a", "root-a")
	root.AddParameter("b", "root-b")
	child := NewProject("child", "Child")
	child.AddParameter("b", "child-b")
	child.AddParameter("c", "child-c")
	root.AddProject(child)

	assert.Equal(t, []Parameter{
		{Name: "a", Value: "root-a"},
		{Name: "b", Value: "child-b"},
		{Name: "c", Value: "child-c"},
	}, child.Parameters())

	own, err := child.OwnParameters()
	require.NoError(t, err)
	assert.Len(t, own, 2)

	// Resolution must not leak overrides into the ancestor.
	assert.Equal(t, []Parameter{{Name: "a", Value: "root-a"}, {Name: "b", Value: "root-b"}}, root.Parameters())
}

func TestBuildType_ParametersLayerProjectTemplatesOwn(t *testing.T) {
	p := NewProject("p", "P")
	p.AddParameter("x", "project")
	p.AddParameter("y", "project")

	tmpl := NewTemplate("t", "T")
	tmpl.AddParameter("y", "template")
	tmpl.AddParameter("z", "template")
	p.AddTemplate(tmpl)

	bt := NewBuildType("bt", "BT")
	bt.AddParameter("z", "own")
	bt.AttachTemplate(tmpl)
	p.AddBuildType(bt)

	assert.Equal(t, []Parameter{
		{Name: "x", Value: "project"},
		{Name: "y", Value: "template"},
		{Name: "z", Value: "own"},
	}, bt.Parameters())

	own, err := bt.OwnParameters()
	require.NoError(t, err)
	assert.Equal(t, []Parameter{{Name: "z", Value: "own"}}, own)
}

func TestProject_FindTemplateSearchesAncestors(t *testing.T) {
	root := NewProject("root", "Root")
	shared := NewTemplate("shared", "Shared")
	root.AddTemplate(shared)
	child := NewProject("child", "Child")
	root.AddProject(child)

	found, ok := child.FindTemplate("shared")
	require.True(t, ok)
	assert.Same(t, shared, found)

	_, ok = root.FindTemplate("missing")
	assert.False(t, ok)
}

func TestProject_WalkIsPreOrder(t *testing.T) {
	root := NewProject("a", "A")
	b := NewProject("b", "B")
	c := NewProject("c", "C")
	d := NewProject("d", "D")
	root.AddProject(b)
	b.AddProject(c)
	root.AddProject(d)

	var ids []string
	root.Walk(func(p *ProjectNode) { ids = append(ids, p.ExternalID()) })

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestRequirement_PropertyValue(t *testing.T) {
	v := "%os%"
	assert.Equal(t, "%os%", Requirement{Property: "os", Value: &v}.PropertyValue())
	assert.Equal(t, "", Requirement{Property: "os"}.PropertyValue())
}
