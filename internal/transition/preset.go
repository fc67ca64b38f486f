// Package transition selects the animation preset for a stack from its
// presentation mode and the host platform.
package transition

import (
	"fmt"
	"strings"
	"time"
)

// Mode is the stack presentation mode.
type Mode string

const (
	ModeCard  Mode = "card"
	ModeModal Mode = "modal"
)

// Platform identifies the host the stack renders on.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// HeaderMode controls how headers are drawn. The empty value means "not set".
type HeaderMode string

const (
	HeaderFloat  HeaderMode = "float"  // one shared header above all cards
	HeaderScreen HeaderMode = "screen" // each card draws its own header
	HeaderNone   HeaderMode = "none"
)

// TransitionSpec names an animation. Duration is the nominal length the
// renderer waits before confirming the transition finished.
type TransitionSpec struct {
	Name     string
	Duration time.Duration
}

// Preset is a named bundle of animation and header configuration.
type Preset struct {
	Name        string
	HeaderMode  HeaderMode
	CardStyle   string
	HeaderStyle string
	Open        TransitionSpec
	Close       TransitionSpec
}

var (
	SlideFromRightIOS = Preset{
		Name:        "SlideFromRightIOS",
		HeaderMode:  HeaderFloat,
		CardStyle:   "horizontal-ios",
		HeaderStyle: "uikit",
		Open:        TransitionSpec{Name: "ios-spring", Duration: 500 * time.Millisecond},
		Close:       TransitionSpec{Name: "ios-spring", Duration: 500 * time.Millisecond},
	}

	ModalSlideFromBottomIOS = Preset{
		Name:        "ModalSlideFromBottomIOS",
		HeaderMode:  HeaderScreen,
		CardStyle:   "vertical-ios",
		HeaderStyle: "none",
		Open:        TransitionSpec{Name: "ios-spring", Duration: 500 * time.Millisecond},
		Close:       TransitionSpec{Name: "ios-spring", Duration: 500 * time.Millisecond},
	}

	FadeFromBottomAndroid = Preset{
		Name:        "FadeFromBottomAndroid",
		HeaderMode:  HeaderScreen,
		CardStyle:   "fade-from-bottom-android",
		HeaderStyle: "none",
		Open:        TransitionSpec{Name: "fade-in-from-bottom-android", Duration: 350 * time.Millisecond},
		Close:       TransitionSpec{Name: "fade-out-to-bottom-android", Duration: 150 * time.Millisecond},
	}
)

// Default returns the platform's standard push transition.
func Default(p Platform) Preset {
	if p == PlatformIOS {
		return SlideFromRightIOS
	}
	return FadeFromBottomAndroid
}

// Select returns the modal slide-up preset for modal stacks on iOS and the
// platform default otherwise.
func Select(mode Mode, p Platform) Preset {
	if mode == ModeModal && p == PlatformIOS {
		return ModalSlideFromBottomIOS
	}
	return Default(p)
}

// ResolveHeaderMode returns the first non-empty override, falling back to the
// preset's own header mode.
func ResolveHeaderMode(preset Preset, overrides ...HeaderMode) HeaderMode {
	for _, o := range overrides {
		if o != "" {
			return o
		}
	}
	return preset.HeaderMode
}

// Config is the caller-supplied part of transition selection.
type Config struct {
	Mode       Mode
	HeaderMode HeaderMode // optional override
}

// Resolved is a preset plus the header mode that applies to it.
type Resolved struct {
	Preset     Preset
	HeaderMode HeaderMode
}

// Resolve selects the preset for cfg on p and applies the header mode override.
func Resolve(cfg Config, p Platform) Resolved {
	preset := Select(cfg.Mode, p)
	return Resolved{
		Preset:     preset,
		HeaderMode: ResolveHeaderMode(preset, cfg.HeaderMode),
	}
}

// ParseMode maps a config string to a Mode. Anything but "modal" is a card stack.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeModal)) {
		return ModeModal
	}
	return ModeCard
}

// ParsePlatform normalizes a platform identifier. Unrecognized values are kept
// as-is and select the default preset.
func ParsePlatform(s string) Platform {
	return Platform(strings.ToLower(strings.TrimSpace(s)))
}

// ParseHeaderMode validates a header mode string. Empty means "not set".
func ParseHeaderMode(s string) (HeaderMode, error) {
	switch hm := HeaderMode(strings.ToLower(strings.TrimSpace(s))); hm {
	case "", HeaderFloat, HeaderScreen, HeaderNone:
		return hm, nil
	default:
		return "", fmt.Errorf("transition: invalid header mode %q", s)
	}
}
