package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		platform Platform
		want     Preset
	}{
		{"modal on ios slides up", ModeModal, PlatformIOS, ModalSlideFromBottomIOS},
		{"modal on android uses default", ModeModal, PlatformAndroid, FadeFromBottomAndroid},
		{"unset mode on ios uses default", "", PlatformIOS, SlideFromRightIOS},
		{"card on ios uses default", ModeCard, PlatformIOS, SlideFromRightIOS},
		{"unknown platform uses default", ModeModal, "web", FadeFromBottomAndroid},
		{"garbage mode degrades", Mode("sideways"), PlatformIOS, SlideFromRightIOS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.mode, tt.platform))
		})
	}
}

func TestSelect_DefaultMatchesDefault(t *testing.T) {
	assert.Equal(t, Default(PlatformAndroid), Select(ModeModal, PlatformAndroid))
	assert.Equal(t, Default(PlatformIOS), Select("", PlatformIOS))
}

func TestResolveHeaderMode(t *testing.T) {
	assert.Equal(t, HeaderFloat, ResolveHeaderMode(SlideFromRightIOS))
	assert.Equal(t, HeaderFloat, ResolveHeaderMode(SlideFromRightIOS, ""))
	assert.Equal(t, HeaderNone, ResolveHeaderMode(SlideFromRightIOS, HeaderNone))
	assert.Equal(t, HeaderScreen, ResolveHeaderMode(SlideFromRightIOS, "", HeaderScreen, HeaderNone))
}

func TestResolve(t *testing.T) {
	r := Resolve(Config{Mode: ModeModal}, PlatformIOS)
	assert.Equal(t, ModalSlideFromBottomIOS, r.Preset)
	assert.Equal(t, HeaderScreen, r.HeaderMode)

	r = Resolve(Config{Mode: ModeModal, HeaderMode: HeaderFloat}, PlatformIOS)
	assert.Equal(t, ModalSlideFromBottomIOS, r.Preset)
	assert.Equal(t, HeaderFloat, r.HeaderMode)
}

func TestPresetsCarryHeaderMode(t *testing.T) {
	for _, p := range []Preset{SlideFromRightIOS, ModalSlideFromBottomIOS, FadeFromBottomAndroid} {
		assert.NotEmpty(t, p.HeaderMode, p.Name)
		assert.Positive(t, p.Close.Duration, p.Name)
	}
}

func TestParse(t *testing.T) {
	assert.Equal(t, ModeModal, ParseMode(" Modal "))
	assert.Equal(t, ModeCard, ParseMode(""))
	assert.Equal(t, ModeCard, ParseMode("popover"))

	assert.Equal(t, PlatformIOS, ParsePlatform("iOS"))

	hm, err := ParseHeaderMode("Screen")
	require.NoError(t, err)
	assert.Equal(t, HeaderScreen, hm)

	hm, err = ParseHeaderMode("")
	require.NoError(t, err)
	assert.Equal(t, HeaderMode(""), hm)

	_, err = ParseHeaderMode("floating")
	assert.Error(t, err)
}
