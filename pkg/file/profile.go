package file

import (
	"errors"
	"slices"

	"github.com/oafilali/buy01/pkg/config"
)

// Preset names accepted by Preset.
const (
	PresetAvatar       = "avatar"
	PresetProductImage = "product_image"
)

// DefaultMaxImageBytes is the upload limit the media service enforces for images.
const DefaultMaxImageBytes int64 = 2 << 20

var imageMIMETypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Profile is a named, immutable bundle of upload limits. Copy it freely;
// methods never modify the receiver.
type Profile struct {
	Name             string   `json:"name"`
	MaxSizeBytes     int64    `json:"max_size_bytes"`
	AllowedMIMETypes []string `json:"allowed_mime_types"`
}

// NewProfile builds a profile. MIME types are normalized.
func NewProfile(name string, maxSizeBytes int64, allowed ...string) Profile {
	types := make([]string, 0, len(allowed))
	for _, t := range allowed {
		if t = normalizeMIMEType(t); t != "" && !slices.Contains(types, t) {
			types = append(types, t)
		}
	}
	return Profile{Name: name, MaxSizeBytes: maxSizeBytes, AllowedMIMETypes: types}
}

// Allows reports whether mimeType is accepted by the profile. A profile with
// no MIME types is unrestricted and accepts any type.
func (p Profile) Allows(mimeType string) bool {
	if len(p.AllowedMIMETypes) == 0 {
		return true
	}
	return slices.Contains(p.AllowedMIMETypes, normalizeMIMEType(mimeType))
}

// WithMaxSize returns a copy of p with a different size limit.
func (p Profile) WithMaxSize(maxSizeBytes int64) Profile {
	return Profile{
		Name:             p.Name,
		MaxSizeBytes:     maxSizeBytes,
		AllowedMIMETypes: slices.Clone(p.AllowedMIMETypes),
	}
}

// Avatar is the profile picture preset.
func Avatar() Profile {
	return NewProfile(PresetAvatar, DefaultMaxImageBytes, imageMIMETypes...)
}

// ProductImage is the product gallery preset.
func ProductImage() Profile {
	return NewProfile(PresetProductImage, DefaultMaxImageBytes, imageMIMETypes...)
}

// Preset returns a built-in profile by name.
func Preset(name string) (Profile, bool) {
	return DefaultPresets().Get(name)
}

// Presets is a set of profiles addressed by name.
type Presets map[string]Profile

// DefaultPresets returns the built-in profiles.
func DefaultPresets() Presets {
	return Presets{
		PresetAvatar:       Avatar(),
		PresetProductImage: ProductImage(),
	}
}

// Get returns a copy of the named profile.
func (ps Presets) Get(name string) (Profile, bool) {
	p, ok := ps[name]
	if !ok {
		return Profile{}, false
	}
	return p.WithMaxSize(p.MaxSizeBytes), true
}

// Limits holds the deploy-time size limits of the presets.
type Limits struct {
	AvatarMaxBytes       int64 `env:"UPLOAD_AVATAR_MAX_BYTES" envDefault:"2097152"`
	ProductImageMaxBytes int64 `env:"UPLOAD_PRODUCT_IMAGE_MAX_BYTES" envDefault:"2097152"`
}

// PresetsFromLimits applies limits to the built-in profiles. Non-positive
// limits keep the default.
func PresetsFromLimits(l Limits) Presets {
	ps := DefaultPresets()
	if l.AvatarMaxBytes > 0 {
		ps[PresetAvatar] = ps[PresetAvatar].WithMaxSize(l.AvatarMaxBytes)
	}
	if l.ProductImageMaxBytes > 0 {
		ps[PresetProductImage] = ps[PresetProductImage].WithMaxSize(l.ProductImageMaxBytes)
	}
	return ps
}

// LoadPresets reads Limits from the environment and returns the resulting presets.
func LoadPresets() (Presets, error) {
	var limits Limits
	if err := config.Load(&limits); err != nil {
		return nil, errors.Join(ErrFailedToLoadLimits, err)
	}
	return PresetsFromLimits(limits), nil
}
