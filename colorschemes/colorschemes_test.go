package colorschemes

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/shibukawa/configdir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xxxserxxx/gogauge/gauge"
)

func testDir(t *testing.T) configdir.ConfigDir {
	cd := configdir.New("", "gogauge-test-nonexistent")
	cd.LocalPath = t.TempDir()
	return cd
}

func TestBuiltinsValidate(t *testing.T) {
	names := Names()
	require.Contains(t, names, "default")
	require.Contains(t, names, "monokai")
	for _, n := range names {
		cs, err := FromName(testDir(t), n)
		require.NoError(t, err, n)
		assert.Equal(t, n, cs.Name)
		assert.NoError(t, cs.Validate(), n)
	}
}

func TestDefaultMatchesGaugeDefaults(t *testing.T) {
	cs, err := FromName(testDir(t), "default")
	require.NoError(t, err)
	g := gauge.New()
	g.SetNeedleColor(color.Black)
	require.NoError(t, cs.Apply(g))
	assert.Equal(t, gauge.DefaultBackground, g.BackgroundColor())
	assert.Equal(t, gauge.DefaultNeedle, g.NeedleColor())
	assert.Equal(t, gauge.DefaultTick, g.TickColor())
	assert.Equal(t, gauge.DefaultValueText, g.ValueTextColor())
	assert.Equal(t, gauge.DefaultTitle, g.TitleColor())
	assert.Equal(t, gauge.DefaultSafeColor, g.SafeZoneColor())
	assert.Equal(t, gauge.DefaultWarningColor, g.WarningZoneColor())
	assert.Equal(t, gauge.DefaultDangerColor, g.DangerZoneColor())
}

func TestApplyEmptyRestoresDefault(t *testing.T) {
	g := gauge.New()
	g.SetTickColor(color.White)
	require.NoError(t, Colorscheme{Name: "bare"}.Apply(g))
	assert.Equal(t, gauge.DefaultTick, g.TickColor())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0x80, B: 0x00, A: 0xFF}, c)

	c, err = ParseColor("#00ff0080")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{G: 0xFF, A: 0x80}, c)

	c, err = ParseColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, c)

	for _, bad := range []string{"", "red", "#12345", "#ff0000zz"} {
		_, err = ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestCustomFromFile(t *testing.T) {
	cd := testDir(t)
	js := `{"Needle": "#00ff00", "Danger": "#0000ff80", "Fg": 15, "BorderLine": 4}`
	require.NoError(t, os.WriteFile(filepath.Join(cd.LocalPath, "mine.json"), []byte(js), 0600))

	cs, err := FromName(cd, "mine")
	require.NoError(t, err)
	assert.Equal(t, "mine", cs.Name)
	assert.Equal(t, 15, cs.Fg)

	g := gauge.New()
	require.NoError(t, cs.Apply(g))
	assert.Equal(t, color.NRGBA{G: 0xFF, A: 0xFF}, g.NeedleColor())
	assert.Equal(t, color.NRGBA{B: 0xFF, A: 0x80}, g.DangerZoneColor())
	assert.Equal(t, gauge.DefaultTick, g.TickColor())
}

func TestCustomErrors(t *testing.T) {
	cd := testDir(t)
	_, err := FromName(cd, "missing")
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(cd.LocalPath, "broken.json"), []byte("{"), 0600))
	_, err = FromName(cd, "broken")
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(cd.LocalPath, "badhex.json"), []byte(`{"Tick":"#nothex"}`), 0600))
	_, err = FromName(cd, "badhex")
	assert.Error(t, err)
}
