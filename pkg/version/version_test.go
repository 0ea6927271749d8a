package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewer(t *testing.T) {
	assert.True(t, IsNewer("1.10.0", "1.9.3"))
	assert.True(t, IsNewer("v2.0", "1.9.9"))
	assert.True(t, IsNewer("1.2.1", "1.2"))
	assert.False(t, IsNewer("1.2.0", "1.2"))
	assert.False(t, IsNewer("1.2.3", "1.2.3-dirty"))
	assert.False(t, IsNewer("0.9.0", "1.0.0"))
}

func TestFormatVersion(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = origVersion, origCommit, origBuild })

	Version, Commit, BuildTime = "1.2.3", "", ""
	assert.Equal(t, "1.2.3 (development)", FormatVersion())

	Version, Commit, BuildTime = "1.2.3", "abc1234", ""
	assert.Equal(t, "1.2.3 (commit: abc1234)", FormatVersion())

	Version, Commit, BuildTime = "", "abc1234", "2026-10-19T10:00:00Z"
	assert.Equal(t, "0.0.0-dev (commit: abc1234, built at: 2026-10-19T10:00:00Z)", FormatVersion())
}
