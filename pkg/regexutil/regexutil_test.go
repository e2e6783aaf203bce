package regexutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dperussina/code-library/pkg/errors"
)

func TestFind(t *testing.T) {
	got, err := Find("order #1234 shipped", `#\d+`)
	require.NoError(t, err)
	assert.Equal(t, "#1234", got)
}

func TestFindNoMatch(t *testing.T) {
	got, err := Find("no digits here", `\d+`)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestFindAll(t *testing.T) {
	got, err := FindAll("a1 b22 c333", `\d+`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "22", "333"}, got)
}

func TestFindGroups(t *testing.T) {
	groups, err := FindGroups("alice@example.com", `(?P<user>\w+)@(?P<domain>[\w.]+)`)
	require.NoError(t, err)

	assert.Equal(t, "alice", groups["user"])
	assert.Equal(t, "example.com", groups["domain"])
}

func TestFindGroupsNoMatch(t *testing.T) {
	groups, err := FindGroups("plain text", `(?P<num>\d+)`)
	require.NoError(t, err)
	assert.Nil(t, groups)
}

func TestFindGroupsUnnamed(t *testing.T) {
	groups, err := FindGroups("2024-03-01", `(\d{4})-(\d{2})-(\d{2})`)
	require.NoError(t, err)

	assert.Equal(t, "2024", groups["1"])
	assert.Equal(t, "01", groups["3"])
}

func TestMatch(t *testing.T) {
	ok, err := Match("hello world", `wor`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Match("hello world", `^world`)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvalidPattern(t *testing.T) {
	_, err := Find("text", `([unclosed`)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestCacheReuse(t *testing.T) {
	// Same pattern twice hits the cache path; behavior must not change.
	for i := 0; i < 2; i++ {
		got, err := FindAll("x9y8", `\d`)
		require.NoError(t, err)
		assert.Equal(t, []string{"9", "8"}, got)
	}
}
