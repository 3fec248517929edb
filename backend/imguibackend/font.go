package imguibackend

import (
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/sugar"
)

// LoadFont rasterizes a TrueType font into the shared atlas and returns its
// handle for the font sections. Load fonts after creating the Platform and
// before creating the Renderer, which bakes the atlas into a texture once.
func LoadFont(path string, size float32) sugar.Font {
	font := imgui.CurrentIO().Fonts().AddFontFromFileTTF(path, size)
	return sugar.Font(font)
}
