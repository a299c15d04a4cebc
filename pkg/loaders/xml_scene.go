package loaders

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/raito/pkg/core"
	"github.com/df07/raito/pkg/geometry"
	"github.com/df07/raito/pkg/log"
	"github.com/df07/raito/pkg/scene"
	"github.com/df07/raito/pkg/shader"
)

// ErrInvalidSceneFile is returned for scene descriptions that parse but
// cannot be turned into a scene
var ErrInvalidSceneFile = errors.New("invalid scene file")

var logger = log.New("loader")

// xmlVec is a whitespace separated triple such as "0 0.5 -1"
type xmlVec struct {
	X, Y, Z float64
	set     bool
}

func (v *xmlVec) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	if len(fields) != 3 {
		return fmt.Errorf("expected 3 components, got %q", string(text))
	}
	var values [3]float64
	for i, f := range fields {
		value, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("invalid component %q: %w", f, err)
		}
		values[i] = value
	}
	*v = xmlVec{X: values[0], Y: values[1], Z: values[2], set: true}
	return nil
}

func (v xmlVec) vec3() core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

func (v xmlVec) color() core.Color {
	return core.NewColor(v.X, v.Y, v.Z)
}

type xmlScene struct {
	XMLName  xml.Name     `xml:"scene"`
	Name     string       `xml:"name,attr"`
	Settings *xmlSettings `xml:"settings"`
	Camera   *xmlCamera   `xml:"camera"`
	Spheres  []xmlSphere  `xml:"sphere"`
	Lights   []xmlSphere  `xml:"light"`
}

type xmlSettings struct {
	SamplesPerPixel *int `xml:"spp,attr"`
	MaxBounces      *int `xml:"bounces,attr"`
}

type xmlCamera struct {
	Width       int     `xml:"width,attr"`
	AspectRatio float64 `xml:"aspect,attr"`
	VFov        float64 `xml:"fov,attr"`
	From        xmlVec  `xml:"from,attr"`
	At          xmlVec  `xml:"at,attr"`
	Up          xmlVec  `xml:"up,attr"`
}

type xmlSphere struct {
	ID     string     `xml:"id,attr"`
	Type   string     `xml:"type,attr"`
	Center xmlVec     `xml:"center,attr"`
	Radius float64    `xml:"radius,attr"`
	Shader *xmlShader `xml:"shader"`
}

type xmlShader struct {
	Type      string   `xml:"type,attr"`
	Color     xmlVec   `xml:"color,attr"`
	Samples   int      `xml:"samples,attr"`
	Fuzz      float64  `xml:"fuzz,attr"`
	IOR       float64  `xml:"ior,attr"`
	Intensity *float64 `xml:"intensity,attr"`
	Channel   string   `xml:"channel,attr"`
	Sampling  string   `xml:"sampling,attr"`
}

// LoadXMLScene reads a scene description such as
//
//	<scene name="spheres">
//	  <settings spp="16" bounces="8"/>
//	  <camera width="400" aspect="1.7778" fov="90" from="0 0 0" at="0 0 -1" up="0 1 0"/>
//	  <sphere id="ball" center="0 0 -1" radius="0.5">
//	    <shader type="lambert" color="0.2 0.8 0.2" samples="2" sampling="uniform"/>
//	  </sphere>
//	  <light id="key" center="2 3 0" radius="0.5">
//	    <shader type="light" color="1 1 1" intensity="4"/>
//	  </light>
//	  <light id="shade" type="geometry" center="1.5 2 0" radius="0.3">
//	    <shader type="static" color="0 0 0"/>
//	  </light>
//	</scene>
//
// Entries of the light list default to type "light". An entry with
// type="geometry" stays in the light list as an occluder: it hides the
// lights behind it from light rays without emitting itself.
//
// Camera overrides replace the fields set in the file.
func LoadXMLScene(filename string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseXMLScene(file, cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return s, nil
}

// ParseXMLScene parses a scene description from r
func ParseXMLScene(r io.Reader, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	var doc xmlScene
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	settings := scene.DefaultSettings()
	if doc.Settings != nil {
		if doc.Settings.SamplesPerPixel != nil {
			settings.SamplesPerPixel = *doc.Settings.SamplesPerPixel
		}
		if doc.Settings.MaxBounces != nil {
			settings.MaxBounces = *doc.Settings.MaxBounces
		}
	}

	cameraConfig := geometry.DefaultCameraConfig()
	if doc.Camera != nil {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, doc.Camera.config())
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := scene.NewScene(doc.Name, geometry.NewCamera(cameraConfig), settings)

	for i, sphere := range doc.Spheres {
		obj, err := sphere.object(fmt.Sprintf("sphere%d", i), geometry.ObjectTypeGeometry)
		if err != nil {
			return nil, err
		}
		s.AddShape(obj)
	}
	for i, light := range doc.Lights {
		objectType, err := lightListType(light.Type)
		if err != nil {
			return nil, err
		}
		obj, err := light.object(fmt.Sprintf("light%d", i), objectType)
		if err != nil {
			return nil, err
		}
		s.AddLight(obj)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	logger.Debugf("parsed scene %q: %d shapes, %d lights, %d spp, %d bounces",
		s.Name, len(s.Shapes), len(s.Lights), settings.SamplesPerPixel, settings.MaxBounces)

	return s, nil
}

func (c *xmlCamera) config() geometry.CameraConfig {
	config := geometry.CameraConfig{
		Width:       c.Width,
		AspectRatio: c.AspectRatio,
		VFov:        c.VFov,
	}
	if c.From.set {
		config.Center = c.From.vec3()
	}
	if c.At.set {
		config.LookAt = c.At.vec3()
	}
	if c.Up.set {
		config.Up = c.Up.vec3()
	}
	return config
}

func (x *xmlSphere) object(defaultID, objectType string) (*geometry.Object, error) {
	id := x.ID
	if id == "" {
		id = defaultID
	}
	if x.Radius <= 0 {
		return nil, fmt.Errorf("%w: %s %q needs a positive radius", ErrInvalidSceneFile, objectType, id)
	}
	if x.Shader == nil {
		return nil, fmt.Errorf("%w: %s %q has no shader", ErrInvalidSceneFile, objectType, id)
	}

	sh, err := x.Shader.build()
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", objectType, id, err)
	}
	return geometry.NewObject(id, objectType, geometry.NewSphere(x.Center.vec3(), x.Radius), sh), nil
}

// lightListType maps the type attribute of a <light> entry to an object type
func lightListType(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", geometry.ObjectTypeLight:
		return geometry.ObjectTypeLight, nil
	case geometry.ObjectTypeGeometry, "occluder":
		return geometry.ObjectTypeGeometry, nil
	}
	return "", fmt.Errorf("%w: unknown light list type %q", ErrInvalidSceneFile, name)
}

func (x *xmlShader) build() (core.Shader, error) {
	color := core.White
	if x.Color.set {
		color = x.Color.color()
	}

	switch strings.ToLower(x.Type) {
	case "static", "color":
		return shader.NewStaticColor(color), nil
	case "normal", "debug":
		debug, err := shader.NewDebugNormal(x.Channel)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSceneFile, err)
		}
		return debug, nil
	case "lambert", "":
		switch strings.ToLower(x.Sampling) {
		case "", "cosine":
			return shader.NewLambertSamples(color, x.Samples), nil
		case "uniform":
			return shader.NewLambertUniform(color, x.Samples), nil
		}
		return nil, fmt.Errorf("%w: unknown lambert sampling %q", ErrInvalidSceneFile, x.Sampling)
	case "metal":
		return shader.NewMetal(color, x.Fuzz), nil
	case "glass":
		glass, err := shader.NewGlass(x.IOR)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSceneFile, err)
		}
		return glass, nil
	case "light":
		intensity := 1.0
		if x.Intensity != nil {
			intensity = *x.Intensity
		}
		return shader.NewLight(color, intensity), nil
	}
	return nil, fmt.Errorf("%w: unknown shader type %q", ErrInvalidSceneFile, x.Type)
}

// validateFilePath rejects paths that cannot name a scene description
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("%w: filename cannot be empty", ErrInvalidSceneFile)
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("%w: null bytes not allowed in path", ErrInvalidSceneFile)
	}

	cleanPath := filepath.Clean(filename)
	if !strings.EqualFold(filepath.Ext(cleanPath), ".xml") {
		return fmt.Errorf("%w: only .xml files are allowed, got %q", ErrInvalidSceneFile, filename)
	}
	if len(cleanPath) > 512 {
		return fmt.Errorf("%w: file path too long, maximum 512 characters allowed", ErrInvalidSceneFile)
	}

	return nil
}
