package reference

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchingNames_ValueWithoutReference(t *testing.T) {
	names := MatchingNames("parameter", "parameter")
	assert.Empty(t, names)
}

func TestMatchingNames_ValueWithReference(t *testing.T) {
	names := MatchingNames("parameter", "%parameter%")
	assert.Equal(t, []string{"parameter"}, names)
}

func TestMatchingNames_SurroundingText(t *testing.T) {
	testCases := []struct {
		name  string
		value string
	}{
		{name: "leading text", value: "other value %parameter%"},
		{name: "trailing text", value: "%parameter% other value"},
		{name: "both", value: "-Dopt=%parameter% -x"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, []string{"parameter"}, MatchingNames("parameter", tc.value))
		})
	}
}

func TestMatchingNames_PartialTerm(t *testing.T) {
	testCases := []struct {
		name  string
		term  string
		value string
		want  []string
	}{
		{name: "prefix", term: "param", value: "-Dopt=%parameter%", want: []string{"parameter"}},
		{name: "suffix", term: "meter", value: "%parameter%", want: []string{"parameter"}},
		{name: "interior", term: "ram", value: "%env.parameter.x%", want: []string{"env.parameter.x"}},
		{name: "case sensitive", term: "PARAM", value: "%parameter%", want: nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MatchingNames(tc.term, tc.value))
		})
	}
}

func TestMatchingNames_ListOfNames(t *testing.T) {
	value := "-Dopt1=%my.parameter% -Dopt2=%my.para% -Dopt3=%my.param%test"

	names := MatchingNames("param", value)

	require.Len(t, names, 2)
	assert.ElementsMatch(t, []string{"my.parameter", "my.param"}, names)
}

func TestMatchingNames_SpansDoNotOverlap(t *testing.T) {
	// The text between the first closing and the next opening delimiter is
	// not a reference.
	names := MatchingNames("b", "%a% b %c%")
	assert.Empty(t, names)

	assert.Equal(t, []string{"a", "c"}, Names("%a% b %c%"))
}

func TestMatchingNames_Unterminated(t *testing.T) {
	assert.Empty(t, MatchingNames("param", "%param"))
	assert.Equal(t, []string{"param1"}, MatchingNames("param", "%param1% and %param2"))
}

func TestMatchingNames_EmptySpan(t *testing.T) {
	assert.Empty(t, MatchingNames("param", "%%"))
	assert.Equal(t, []string{""}, MatchingNames("", "%%"))
}

func TestMatchingNames_RepeatedReference(t *testing.T) {
	names := MatchingNames("param", "%param% %param%")
	assert.Equal(t, []string{"param", "param"}, names)
}

func TestMatchingNames_EveryNameIsAReferenceContainingTerm(t *testing.T) {
	values := []string{
		"",
		"%",
		"%%%",
		"a%b%c%d%e",
		"%x.param%%param.y%%",
		"-Dp=%param% %other% %%param%",
	}
	for _, v := range values {
		refs := Names(v)
		for _, name := range MatchingNames("param", v) {
			assert.Contains(t, name, "param")
			assert.Contains(t, refs, name)
			assert.True(t, strings.Contains(v, "%"+name+"%"), "name %q not delimited in %q", name, v)
		}
	}
}

func TestMatcher_ConcurrentUse(t *testing.T) {
	m := NewMatcher("param")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, []string{"my.param"}, m.MatchingNames("%my.param% %other%"))
		}()
	}
	wg.Wait()
	assert.Equal(t, "param", m.Term())
}
