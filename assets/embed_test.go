package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedImagesDecode(t *testing.T) {
	sizes := map[string][2]int{
		"earth.png":       {256, 256},
		"moon.png":        {128, 128},
		"rocket.png":      {128, 64},
		"crash.png":       {128, 128},
		"arrow.png":       {64, 64},
		"asteroid01.png":  {64, 64},
		"asteroid02.png":  {64, 64},
		"speedometer.png": {128, 128},
	}
	for name, size := range sizes {
		t.Run(name, func(t *testing.T) {
			img, err := DecodeImage(name)
			require.NoError(t, err)
			assert.Equal(t, size[0], img.Bounds().Dx())
			assert.Equal(t, size[1], img.Bounds().Dy())

			w, h, err := ImageSize(name)
			require.NoError(t, err)
			assert.Equal(t, size, [2]int{w, h})
		})
	}
}

func TestEmbeddedClipsPresent(t *testing.T) {
	for _, name := range []string{"launch.wav", "land.wav", "crash.wav"} {
		b, err := LoadFile("assets/" + name)
		require.NoError(t, err, name)
		assert.Equal(t, "RIFF", string(b[:4]))
	}
}

func TestCleanAssetPath(t *testing.T) {
	assert.Equal(t, "earth.png", cleanAssetPath("assets/earth.png"))
	assert.Equal(t, "earth.png", cleanAssetPath("/home/me/lander/assets/earth.png"))
	assert.Equal(t, "moon.png", cleanAssetPath("moon.png"))
	assert.Equal(t, "", cleanAssetPath(""))

	_, err := DecodeImage("missing.png")
	assert.Error(t, err)
}
