package redblack

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestParseKeys(t *testing.T) {
	for _, tc := range []struct {
		input string
		keys  []int
		bad   bool
	}{
		{"", []int{}, false},
		{"   ", []int{}, false},
		{"10", []int{10}, false},
		{"10,20,15", []int{10, 20, 15}, false},
		{" 10 ,  20,15 ", []int{10, 20, 15}, false},
		{"-3, 0, +7", []int{-3, 0, 7}, false},
		{"5,5", []int{5, 5}, false},
		{"1,x,3", []int{1, 3}, true},
		{"1,,3", []int{1, 3}, true},
		{"a, b", []int{}, true},
	} {
		keys, err := ParseKeys(tc.input)
		require.Equal(t, tc.keys, keys, "input %q", tc.input)
		if tc.bad {
			require.Error(t, err, "input %q", tc.input)
			require.True(t, errors.Is(err, ErrInvalidKey), "input %q", tc.input)
		} else {
			require.NoError(t, err, "input %q", tc.input)
		}
	}
}

func TestParseKeysReportsEveryToken(t *testing.T) {
	_, err := ParseKeys("1, x, 2, y")
	require.Error(t, err)
	msg := fmt.Sprintf("%+v", err)
	require.Contains(t, msg, `"x"`)
	require.Contains(t, msg, `"y"`)
}
