package redblack

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseKeys reads a comma-separated list of decimal integers, e.g.
// "10, 20,15". Whitespace around tokens is ignored and blank input yields no
// keys.
//
// Tokens which are not integers are skipped. ParseKeys still returns the
// valid keys in input order, together with an error which combines one
// ErrInvalidKey for each token skipped.
func ParseKeys(input string) ([]int, error) {
	keys := []int{}
	if strings.TrimSpace(input) == "" {
		return keys, nil
	}
	var err error
	for i, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		k, e := strconv.Atoi(token)
		if e != nil {
			err = errors.CombineErrors(err,
				errors.Wrapf(ErrInvalidKey, "token %d: %q", i+1, token))
			continue
		}
		keys = append(keys, k)
	}
	return keys, err
}
