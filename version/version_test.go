package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/jsdoc/version"
)

func TestString(t *testing.T) {
	t.Parallel()

	s := version.String()
	assert.Contains(t, s, version.GoVersion)
	assert.Contains(t, s, version.GoOS+"/"+version.GoArch)
	assert.Contains(t, s, "(rev ")
	assert.NotEmpty(t, version.Revision)
}
