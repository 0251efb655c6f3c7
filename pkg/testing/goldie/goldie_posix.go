//go:build !windows

package goldie

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Assert compares actual with testdata/<name>.golden.
func Assert(t *testing.T, name string, actual []byte) {
	t.Helper()

	New(t).Assert(t, name, actual)
}

func New(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
}
