package canvas_test

import (
	"testing"

	"github.com/ntucool/canvas/pkg/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestFlatten(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tree     any
		expected []canvas.Pair
	}{
		{
			name:     "nil tree",
			tree:     nil,
			expected: nil,
		},
		{
			name: "flat map",
			tree: map[string]any{"a": 0},
			expected: []canvas.Pair{
				{Name: "a", Value: "0"},
			},
		},
		{
			name: "nested map",
			tree: map[string]any{"a": map[string]any{"b": 1}},
			expected: []canvas.Pair{
				{Name: "a[b]", Value: "1"},
			},
		},
		{
			name: "doubly nested map",
			tree: map[string]any{"a": map[string]any{"b": map[string]any{"c": 2}}},
			expected: []canvas.Pair{
				{Name: "a[b][c]", Value: "2"},
			},
		},
		{
			name: "map keys emitted in sorted order",
			tree: map[string]any{"b": 1, "a": 0, "c": 2},
			expected: []canvas.Pair{
				{Name: "a", Value: "0"},
				{Name: "b", Value: "1"},
				{Name: "c", Value: "2"},
			},
		},
		{
			name: "sequence of scalars",
			tree: map[string]any{"include": []string{"term", "total_students"}},
			expected: []canvas.Pair{
				{Name: "include[]", Value: "term"},
				{Name: "include[]", Value: "total_students"},
			},
		},
		{
			name: "sequence of maps",
			tree: map[string]any{"c": []any{map[string]any{"a": 0}, map[string]any{"b": 1}}},
			expected: []canvas.Pair{
				{Name: "c[][a]", Value: "0"},
				{Name: "c[][b]", Value: "1"},
			},
		},
		{
			name: "top-level sequence of maps",
			tree: []any{map[string]any{"a": 0}},
			expected: []canvas.Pair{
				{Name: "[a]", Value: "0"},
			},
		},
		{
			name: "explicit pair inside sequence",
			tree: []any{[]any{"per_page", 10}},
			expected: []canvas.Pair{
				{Name: "per_page", Value: "10"},
			},
		},
		{
			name: "member list keeps declaration order",
			tree: []canvas.Member{
				{Name: "page", Value: "bookmark:opaque"},
				{Name: "per_page", Value: 100},
				{Name: "include", Value: []string{"term"}},
			},
			expected: []canvas.Pair{
				{Name: "page", Value: "bookmark:opaque"},
				{Name: "per_page", Value: "100"},
				{Name: "include[]", Value: "term"},
			},
		},
		{
			name: "nil member elided",
			tree: []canvas.Member{
				{Name: "page", Value: nil},
				{Name: "per_page", Value: 10},
			},
			expected: []canvas.Pair{
				{Name: "per_page", Value: "10"},
			},
		},
		{
			name: "booleans render lowercase",
			tree: map[string]any{"active_only": true, "latest_only": false},
			expected: []canvas.Pair{
				{Name: "active_only", Value: "true"},
				{Name: "latest_only", Value: "false"},
			},
		},
		{
			name: "floats keep shortest form",
			tree: map[string]any{"min_score": 2.5},
			expected: []canvas.Pair{
				{Name: "min_score", Value: "2.5"},
			},
		},
		{
			name: "bare scalar",
			tree: "verbatim",
			expected: []canvas.Pair{
				{Name: "", Value: "verbatim"},
			},
		},
		{
			name: "bytes treated as scalar",
			tree: map[string]any{"data": []byte("blob")},
			expected: []canvas.Pair{
				{Name: "data", Value: "blob"},
			},
		},
		{
			name: "duplicate names survive",
			tree: []canvas.Member{
				{Name: "context_codes", Value: []string{"course_1"}},
				{Name: "context_codes", Value: []string{"course_2"}},
			},
			expected: []canvas.Pair{
				{Name: "context_codes[]", Value: "course_1"},
				{Name: "context_codes[]", Value: "course_2"},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			pairs, err := canvas.Flatten(testCase.tree)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, pairs)
		})
	}
}

func TestFlatten_IdempotentOnFlatPairs(t *testing.T) {
	t.Parallel()

	flat := []canvas.Pair{
		{Name: "page", Value: "2"},
		{Name: "include[]", Value: "term"},
	}

	once, err := canvas.Flatten(flat)
	require.NoError(t, err)
	assert.Equal(t, flat, once)

	twice, err := canvas.Flatten(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFlatten_MalformedPair(t *testing.T) {
	t.Parallel()

	_, err := canvas.Flatten([]any{[]any{"name", 1, 2}})
	require.Error(t, err)
	assert.ErrorIs(t, err, canvas.ErrMalformedPair)

	_, err = canvas.Flatten([]any{[]any{42, "value"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, canvas.ErrMalformedPair)
}

func TestFlatten_UnsupportedMapKey(t *testing.T) {
	t.Parallel()

	_, err := canvas.Flatten(map[int]any{1: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, canvas.ErrUnsupportedQueryType)
}

func TestJoin(t *testing.T) {
	t.Parallel()

	named := []canvas.Member{
		{Name: "page", Value: 2},
		{Name: "per_page", Value: 50},
	}
	extra := map[string]any{"include": []string{"term"}}

	pairs, err := canvas.Join(named, extra)
	require.NoError(t, err)

	assert.Equal(t, []canvas.Pair{
		{Name: "page", Value: "2"},
		{Name: "per_page", Value: "50"},
		{Name: "include[]", Value: "term"},
	}, pairs)
}

func TestJoin_DuplicatesAcrossTrees(t *testing.T) {
	t.Parallel()

	pairs, err := canvas.Join(
		[]canvas.Member{{Name: "per_page", Value: 10}},
		map[string]any{"per_page": 100},
	)
	require.NoError(t, err)

	// Both occurrences survive in argument order; the server decides.
	assert.Equal(t, []canvas.Pair{
		{Name: "per_page", Value: "10"},
		{Name: "per_page", Value: "100"},
	}, pairs)
}

func TestJoin_NilTreesDropped(t *testing.T) {
	t.Parallel()

	pairs, err := canvas.Join(nil, []canvas.Member{{Name: "page", Value: 1}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []canvas.Pair{{Name: "page", Value: "1"}}, pairs)
}

func TestEncodePairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pairs    []canvas.Pair
		expected string
	}{
		{
			name:     "empty",
			pairs:    nil,
			expected: "",
		},
		{
			name: "order preserved",
			pairs: []canvas.Pair{
				{Name: "b", Value: "2"},
				{Name: "a", Value: "1"},
			},
			expected: "b=2&a=1",
		},
		{
			name: "brackets and spaces escaped",
			pairs: []canvas.Pair{
				{Name: "include[]", Value: "total scores"},
			},
			expected: "include%5B%5D=total+scores",
		},
		{
			name: "duplicate names kept",
			pairs: []canvas.Pair{
				{Name: "include[]", Value: "term"},
				{Name: "include[]", Value: "sections"},
			},
			expected: "include%5B%5D=term&include%5B%5D=sections",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, canvas.EncodePairs(testCase.pairs))
		})
	}
}

func TestRequestURL(t *testing.T) {
	t.Parallel()

	u, err := canvas.RequestURL("https://cool.ntu.edu.tw", "/api/v1/courses", []canvas.Member{
		{Name: "per_page", Value: 100},
		{Name: "include", Value: []string{"term"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cool.ntu.edu.tw/api/v1/courses?per_page=100&include%5B%5D=term", u)
}

func TestRequestURL_NoQuery(t *testing.T) {
	t.Parallel()

	u, err := canvas.RequestURL("https://cool.ntu.edu.tw", "/api/v1/users/self/bookmarks", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cool.ntu.edu.tw/api/v1/users/self/bookmarks", u)
}
