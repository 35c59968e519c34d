package pathdsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeSegment(t *testing.T) {
	assert.Equal(t, "hello-world", SafeSegment("Hello, World!"))
	assert.Equal(t, "a-b", SafeSegment("a/b"))
	assert.Equal(t, "dot-dot", SafeSegment("dot..dot"))
}

func TestSafeSegmentAsInput(t *testing.T) {
	p := FromString("labels").Div(SafeSegment("My Report (final)"))
	assert.Equal(t, sys("labels/my-report-final"), p.String())
}
