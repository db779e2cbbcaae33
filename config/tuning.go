package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrTuningNotFound is returned when the tuning file does not exist.
var ErrTuningNotFound = errors.New("tuning file not found")

// Tuning is the optional YAML override file for gameplay values.
// Zero values mean "keep the compiled default"; snap and boundaryPadding
// are pointers so an explicit false or 0 is kept.
//
//	player:
//	  movementSpeed: 12
//	  laserSpeed: 25
//	  boundaryPadding: 0.5
//	camera:
//	  orthographicSize: 6
//	axis:
//	  sensitivity: 3
//	  gravity: 3
//	  snap: true
type Tuning struct {
	Player PlayerTuning `yaml:"player"`
	Camera CameraTuning `yaml:"camera"`
	Axis   AxisTuning   `yaml:"axis"`
}

type PlayerTuning struct {
	MovementSpeed   float64  `yaml:"movementSpeed"`
	LaserSpeed      float64  `yaml:"laserSpeed"`
	BoundaryPadding *float64 `yaml:"boundaryPadding"`
}

type CameraTuning struct {
	OrthographicSize float64 `yaml:"orthographicSize"`
}

type AxisTuning struct {
	Sensitivity    float64 `yaml:"sensitivity"`
	Gravity        float64 `yaml:"gravity"`
	Snap           *bool   `yaml:"snap"`
	AnalogDeadzone float64 `yaml:"analogDeadzone"`
}

// LoadTuning reads and validates a YAML tuning file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTuningNotFound, path)
		}
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes and validates tuning YAML.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning file: %w", err)
	}
	return &t, nil
}

// Validate checks that every overridden value is usable. The padding check
// runs against the effective camera size, so it must be called before Apply.
func (t *Tuning) Validate() error {
	if t.Player.MovementSpeed < 0 {
		return fmt.Errorf("player.movementSpeed must be positive, got %.2f", t.Player.MovementSpeed)
	}
	if t.Player.LaserSpeed < 0 {
		return fmt.Errorf("player.laserSpeed must be positive, got %.2f", t.Player.LaserSpeed)
	}
	if t.Player.BoundaryPadding != nil && *t.Player.BoundaryPadding < 0 {
		return fmt.Errorf("player.boundaryPadding must not be negative, got %.2f", *t.Player.BoundaryPadding)
	}
	if t.Camera.OrthographicSize < 0 {
		return fmt.Errorf("camera.orthographicSize must be positive, got %.2f", t.Camera.OrthographicSize)
	}

	// Check the values that will be in effect after Apply
	padding := Player.BoundaryPadding
	if t.Player.BoundaryPadding != nil {
		padding = *t.Player.BoundaryPadding
	}
	halfH := Camera.OrthographicSize
	if t.Camera.OrthographicSize > 0 {
		halfH = t.Camera.OrthographicSize
	}
	halfW := halfH * float64(C.Width) / float64(C.Height)
	if padding >= halfH || padding >= halfW {
		return fmt.Errorf("player.boundaryPadding (%.2f) leaves no room inside a view of %.2fx%.2f half-extents",
			padding, halfW, halfH)
	}

	if t.Axis.Sensitivity < 0 || t.Axis.Gravity < 0 {
		return fmt.Errorf("axis sensitivity and gravity must not be negative, got %.2f/%.2f",
			t.Axis.Sensitivity, t.Axis.Gravity)
	}
	if t.Axis.AnalogDeadzone < 0 || t.Axis.AnalogDeadzone >= 1 {
		return fmt.Errorf("axis.analogDeadzone must be in [0,1), got %.2f", t.Axis.AnalogDeadzone)
	}
	return nil
}

// Apply copies the overridden values onto the global configuration.
func (t *Tuning) Apply() {
	if t.Player.MovementSpeed > 0 {
		Player.MovementSpeed = t.Player.MovementSpeed
	}
	if t.Player.LaserSpeed > 0 {
		Player.LaserSpeed = t.Player.LaserSpeed
	}
	if t.Player.BoundaryPadding != nil {
		Player.BoundaryPadding = *t.Player.BoundaryPadding
	}
	if t.Camera.OrthographicSize > 0 {
		Camera.OrthographicSize = t.Camera.OrthographicSize
	}
	if t.Axis.Sensitivity > 0 {
		Axis.Sensitivity = t.Axis.Sensitivity
	}
	if t.Axis.Gravity > 0 {
		Axis.Gravity = t.Axis.Gravity
	}
	if t.Axis.Snap != nil {
		Axis.Snap = *t.Axis.Snap
	}
	if t.Axis.AnalogDeadzone > 0 {
		Axis.AnalogDeadzone = t.Axis.AnalogDeadzone
	}
}
