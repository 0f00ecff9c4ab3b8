package morebutton_test

import (
	"testing"

	"github.com/fwojciec/morebutton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAsset(name string, frames int) morebutton.Asset {
	return morebutton.Asset{
		Name:   name,
		Width:  3,
		Frames: frames,
		Keyframes: []morebutton.Keyframe{
			{Frame: 0, Glyph: "(⋯)"},
			{Frame: frames / 2, Glyph: "( )"},
			{Frame: frames, Glyph: "(⌕)"},
		},
	}
}

func testCatalog() morebutton.Catalog {
	return morebutton.Catalog{
		morebutton.AssetMoreToSearch:     testAsset(morebutton.AssetMoreToSearch, 90),
		morebutton.AssetBareMoreToSearch: testAsset(morebutton.AssetBareMoreToSearch, 90),
		morebutton.AssetCircledDotsSpin:  testAsset(morebutton.AssetCircledDotsSpin, 46),
		morebutton.AssetBareDotsSpin:     testAsset(morebutton.AssetBareDotsSpin, 46),
	}
}

func TestAsset_Glyph(t *testing.T) {
	t.Parallel()
	a := testAsset("x", 90)

	tests := []struct {
		frame int
		want  string
	}{
		{0, "(⋯)"},
		{44, "(⋯)"},
		{45, "( )"},
		{89, "( )"},
		{90, "(⌕)"},
		{-5, "(⋯)"},
		{500, "(⌕)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, a.Glyph(tt.frame), "frame %d", tt.frame)
	}
}

func TestAsset_Clamp(t *testing.T) {
	t.Parallel()
	a := testAsset("x", 46)
	assert.Equal(t, 0, a.Clamp(-1))
	assert.Equal(t, 20, a.Clamp(20))
	assert.Equal(t, 46, a.Clamp(47))
}

func TestCatalog_Merge(t *testing.T) {
	t.Parallel()
	base := testCatalog()
	replacement := testAsset(morebutton.AssetBareDotsSpin, 46)
	replacement.Keyframes[0].Glyph = " ⋯ "

	merged := base.Merge(morebutton.Catalog{
		morebutton.AssetBareDotsSpin: replacement,
		"extra":                      testAsset("extra", 10),
	})

	require.Len(t, merged, 5)
	assert.Equal(t, " ⋯ ", merged[morebutton.AssetBareDotsSpin].Glyph(0))
	assert.Equal(t, "(⋯)", base[morebutton.AssetBareDotsSpin].Glyph(0), "base is not modified")
}
