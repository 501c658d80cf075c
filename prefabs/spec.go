package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/pixelcam/zoom"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CameraSpec describes a pixel camera. Surface is only set for cameras that
// render offscreen instead of to the window.
type CameraSpec struct {
	Name        string        `yaml:"name"`
	Transform   TransformSpec `yaml:"transform"`
	Target      string        `yaml:"target"`
	Smoothness  float64       `yaml:"smoothness"`
	SnapToPixel bool          `yaml:"snap_to_pixel"`
	Zoom        ZoomSpec      `yaml:"zoom"`
	Viewport    bool          `yaml:"viewport"`
	Order       int           `yaml:"order"`
	Clear       *YAMLColor    `yaml:"clear"`
	Surface     *SurfaceSpec  `yaml:"surface"`
}

// ParseCameraSpec decodes and validates a camera spec. An invalid zoom mode
// is rejected here so it never reaches a running world.
func ParseCameraSpec(data []byte) (*CameraSpec, error) {
	var spec CameraSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal camera: %w", err)
	}
	if _, err := spec.Zoom.Mode(); err != nil {
		return nil, fmt.Errorf("prefabs: camera %q: %w", spec.Name, err)
	}
	if spec.Surface != nil && (spec.Surface.Width <= 0 || spec.Surface.Height <= 0) {
		return nil, fmt.Errorf("prefabs: camera %q: surface %dx%d: %w", spec.Name, spec.Surface.Width, spec.Surface.Height, zoom.ErrInvalidTarget)
	}
	return &spec, nil
}

func LoadCameraSpec(filename string) (*CameraSpec, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec, err := ParseCameraSpec(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return spec, nil
}

type ZoomSpec struct {
	Kind   string `yaml:"mode"`
	Scale  int    `yaml:"scale"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Mode builds the zoom mode the spec names.
func (z ZoomSpec) Mode() (zoom.Mode, error) {
	return zoom.ParseMode(z.Kind, z.Scale, z.Width, z.Height)
}

type SurfaceSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SceneSpec lists the demo scene's generated sprites. Bounds, when set,
// limits how far following cameras may scroll.
type SceneSpec struct {
	Name    string            `yaml:"name"`
	Bounds  BoundsSpec        `yaml:"bounds"`
	Sprites []SceneSpriteSpec `yaml:"sprites"`
}

type BoundsSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SceneSpriteSpec struct {
	Name        string          `yaml:"name"`
	Player      bool            `yaml:"player"`
	Width       int             `yaml:"width"`
	Height      int             `yaml:"height"`
	Color       *YAMLColor      `yaml:"color"`
	Accent      *YAMLColor      `yaml:"accent"`
	Frames      int             `yaml:"frames"`
	FPS         float64         `yaml:"fps"`
	Transform   TransformSpec   `yaml:"transform"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadSceneSpec(filename string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Bounds.Width < 0 || spec.Bounds.Height < 0 {
		return nil, fmt.Errorf("prefabs: %s: negative bounds %vx%v", filename, spec.Bounds.Width, spec.Bounds.Height)
	}
	for i, s := range spec.Sprites {
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("prefabs: %s: sprite %d (%s) has size %dx%d", filename, i, s.Name, s.Width, s.Height)
		}
	}
	return &spec, nil
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
