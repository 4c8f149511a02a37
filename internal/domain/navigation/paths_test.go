package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInAuthArea(t *testing.T) {
	assert.True(t, InAuthArea(PathAuth))
	assert.True(t, InAuthArea(PathAuth+"/signup"))
	assert.True(t, InAuthArea(PathPasswordReset))
	assert.True(t, InAuthArea(PathPasswordReset+"?"+RecoveryMarker))
	assert.False(t, InAuthArea(PathHome))
	assert.False(t, InAuthArea("/authors"))
}

func TestInCompletionArea(t *testing.T) {
	assert.True(t, InCompletionArea(PathCompleteProfile))
	assert.True(t, InCompletionArea(PathCompleteProfile+"?"+PlayerIDParam+"=p-1"))
	assert.False(t, InCompletionArea(PathHome))
	assert.False(t, InCompletionArea("/complete-profilez"))
}

func TestIsLanding(t *testing.T) {
	assert.True(t, IsLanding(""))
	assert.True(t, IsLanding(PathRoot))
	assert.False(t, IsLanding(PathHome))
}
