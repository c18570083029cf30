package privilege

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	has bool
	err error
}

func (f *fakeChecker) HasSysNice() (bool, error) {
	return f.has, f.err
}

func TestHint(t *testing.T) {
	tests := []struct {
		name     string
		checker  *fakeChecker
		contains string
	}{
		{"Capability missing", &fakeChecker{has: false}, "CAP_SYS_NICE is not held"},
		{"Capability held", &fakeChecker{has: true}, "CAP_SYS_NICE is held"},
		{"Unknown state", &fakeChecker{err: errors.New("no procfs")}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := Hint(tt.checker)
			if tt.contains == "" {
				assert.Empty(t, hint)
				return
			}
			assert.Contains(t, hint, tt.contains)
		})
	}
}

func TestProcessCapabilities_HasSysNice(t *testing.T) {
	p := &ProcessCapabilities{}
	_, err := p.HasSysNice()
	if err != nil {
		t.Skipf("capabilities unavailable on this platform: %v", err)
	}
}
