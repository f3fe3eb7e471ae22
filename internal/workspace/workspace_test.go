package workspace

import (
	"testing"
)

func TestFindRoot(t *testing.T) {
	root, err := FindRoot()
	if err != nil {
		t.Skipf("not running inside a git checkout: %v", err)
	}
	if root == "" {
		t.Fatal("FindRoot() returned empty string")
	}
	if root[0] != '/' {
		t.Errorf("FindRoot() returned non-absolute path: %s", root)
	}
}
