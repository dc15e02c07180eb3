package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallsBackToMsgid(t *testing.T) {
	assert.Equal(t, "Color: Soft Red", T("Color: %s", "Soft Red"))
	assert.Equal(t, "Radio Playing", T("Radio Playing"))
}

func TestInitWithoutCatalogue(t *testing.T) {
	assert.False(t, Init("", "en_GB"))
	assert.False(t, Init(t.TempDir(), "fr_FR"))
}

func TestInitLoadsCatalogue(t *testing.T) {
	require.True(t, Init("../../assets/locales", "es"))
	assert.Equal(t, "[E] Encender/apagar radio", T("[%s] Toggle radio", "E"))
	assert.Equal(t, "Browser closed.", T("Browser closed."))
}
