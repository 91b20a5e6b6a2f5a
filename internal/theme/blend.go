package theme

// RenderMode describes how the blend theme should be drawn for a given color
// selection.
type RenderMode string

const (
	RenderDefault  RenderMode = "default"
	RenderSolid    RenderMode = "solid"
	RenderGradient RenderMode = "gradient"
)

// Render is the drawing instruction for the blend theme.
type Render struct {
	Mode   RenderMode `json:"mode"`
	Colors []string   `json:"colors,omitempty"`
}

// BlendRender maps a blend color selection to its drawing instruction: no
// colors fall back to the default, one color draws solid, two or more draw a
// linear gradient in selection order.
func BlendRender(colors []string) Render {
	switch len(colors) {
	case 0:
		return Render{Mode: RenderDefault}
	case 1:
		return Render{Mode: RenderSolid, Colors: colors}
	default:
		return Render{Mode: RenderGradient, Colors: colors}
	}
}
