package trace

import (
	"fmt"
	"strings"

	"github.com/san-kum/ballpit/internal/physics"
	"github.com/san-kum/ballpit/internal/world"
)

// FrameToSVG draws the bodies of one frame inside the container. Bodies
// above the open top edge are clipped by the viewBox.
func FrameToSVG(frame world.Frame, bounds physics.Bounds, fill string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="#444466" stroke-width="2" d="M0,0 L0,%.1f L%.1f,%.1f L%.1f,0"/>
<g fill="%s">
`, bounds.Width, bounds.Height, bounds.Width, bounds.Height,
		bounds.Height, bounds.Width, bounds.Height, bounds.Width, fill))

	for _, b := range frame {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, b.X, b.Y, b.Radius))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
