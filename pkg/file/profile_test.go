package file_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oafilali/buy01/pkg/config"
	"github.com/oafilali/buy01/pkg/file"
)

func TestPresets(t *testing.T) {
	t.Parallel()
	t.Run("avatar preset", func(t *testing.T) {
		p, ok := file.Preset(file.PresetAvatar)
		require.True(t, ok)
		assert.Equal(t, "avatar", p.Name)
		assert.Equal(t, int64(2<<20), p.MaxSizeBytes)
		assert.Equal(t, []string{"image/jpeg", "image/png", "image/gif", "image/webp"}, p.AllowedMIMETypes)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, ok := file.Preset("video")
		assert.False(t, ok)
	})

	t.Run("presets cannot be changed through a copy", func(t *testing.T) {
		p, ok := file.Preset(file.PresetProductImage)
		require.True(t, ok)
		p.AllowedMIMETypes[0] = "application/x-evil"
		p.MaxSizeBytes = 1

		again, _ := file.Preset(file.PresetProductImage)
		assert.Equal(t, "image/jpeg", again.AllowedMIMETypes[0])
		assert.Equal(t, file.DefaultMaxImageBytes, again.MaxSizeBytes)
	})
}

func TestNewProfile(t *testing.T) {
	t.Parallel()
	p := file.NewProfile("docs", 100, "Application/PDF", "application/pdf", "", "text/plain; charset=utf-8")
	assert.Equal(t, []string{"application/pdf", "text/plain"}, p.AllowedMIMETypes)
	assert.True(t, p.Allows("application/pdf"))
	assert.False(t, p.Allows("image/png"))

	unrestricted := file.NewProfile("any", 100)
	assert.True(t, unrestricted.Allows("anything/at-all"))
	assert.Empty(t, file.Rule("upload", file.Descriptor{Size: 10, MIMEType: "application/zip"}, unrestricted)())
}

func TestPresetsFromLimits(t *testing.T) {
	t.Parallel()
	ps := file.PresetsFromLimits(file.Limits{AvatarMaxBytes: 1 << 20})

	avatar, ok := ps.Get(file.PresetAvatar)
	require.True(t, ok)
	assert.Equal(t, int64(1<<20), avatar.MaxSizeBytes)

	product, ok := ps.Get(file.PresetProductImage)
	require.True(t, ok)
	assert.Equal(t, file.DefaultMaxImageBytes, product.MaxSizeBytes)
}

func TestLoadPresets(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("UPLOAD_AVATAR_MAX_BYTES", "524288")

	ps, err := file.LoadPresets()
	require.NoError(t, err)

	avatar, ok := ps.Get(file.PresetAvatar)
	require.True(t, ok)
	assert.Equal(t, int64(524288), avatar.MaxSizeBytes)

	res := file.Validate(file.Descriptor{Size: 600_000, MIMEType: "image/png"}, avatar)
	require.False(t, res.Valid)
	assert.Equal(t, "File size must not exceed 512 KiB", res.First())
}
