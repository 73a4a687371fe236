package config

// Frame is a read-through view of the frame geometry options on a live
// Config. It holds no state of its own: values inside an Override scope are
// the overridden ones. Reserved mostly for the renderer.
type Frame struct {
	cfg *Config
}

// NewFrame wraps the given live Config.
func NewFrame(cfg *Config) Frame {
	return Frame{cfg: cfg}
}

// Height returns the logical frame height in scene units.
func (f Frame) Height() float64 { return f.cfg.Float("frame.height") }

// Width returns the logical frame width in scene units.
func (f Frame) Width() float64 { return f.cfg.Float("frame.width") }

// Rate returns the frame rate in frames per second.
func (f Frame) Rate() float64 { return f.cfg.Float("frame.rate") }

// PixelHeight returns the rendered height in pixels.
func (f Frame) PixelHeight() int { return f.cfg.Int("frame.pixel_height") }

// PixelWidth returns the rendered width in pixels.
func (f Frame) PixelWidth() int { return f.cfg.Int("frame.pixel_width") }

// AspectRatio returns width divided by height.
func (f Frame) AspectRatio() float64 {
	height := f.Height()
	if height == 0 {
		return 0
	}
	return f.Width() / height
}

// XRadius returns half the frame width.
func (f Frame) XRadius() float64 { return f.Width() / 2 }

// YRadius returns half the frame height.
func (f Frame) YRadius() float64 { return f.Height() / 2 }
