package compare

import (
	"testing"
	"testing/quick"
)

func TestFunction(t *testing.T) {
	f := func(a, b int64) bool {
		c := Function(a, b)
		switch {
		case a < b:
			return c < 0 && Less(a, b)
		case a > b:
			return c > 0 && !Less(a, b)
		default:
			return c == 0 && !Less(a, b)
		}
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestFunctionStrings(t *testing.T) {
	if c := Function("apple", "banana"); c >= 0 {
		t.Errorf("wrong comparison result: got=%d want<0", c)
	}
	if c := Function("b", "b"); c != 0 {
		t.Errorf("wrong comparison result: got=%d want=0", c)
	}
}
