package glide

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration is a time.Duration that reads and writes as text ("300ms") in
// config files.
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds every threshold of the gesture recognizer and the viewport
// controller. Start from DefaultConfig and override fields as needed.
type Config struct {
	// PressDelay is how long a click is held back waiting for a second click
	// before it is reported as a tap.
	PressDelay Duration `toml:"press_delay"`
	// ClickTimeout is the press duration after which any movement starts a pan.
	ClickTimeout Duration `toml:"click_timeout"`
	// PanStartDistance is the per-axis movement in pixels that turns a press
	// into a pan.
	PanStartDistance float64 `toml:"pan_start_distance"`
	// DoubleTapSlop is the largest per-axis distance in pixels between the
	// first press and the second release still accepted as a double tap.
	DoubleTapSlop float64 `toml:"double_tap_slop"`

	// CommitDelay is the quiet period after the last zoom change before the
	// rendering cache is re-tuned and tile production resumes.
	CommitDelay Duration `toml:"commit_delay"`
	MinZoom     float64  `toml:"min_zoom"`
	MaxZoom     float64  `toml:"max_zoom"`
	// ZoomAnimDuration is the length of animated zoom transitions. Zero
	// applies animated zooms immediately.
	ZoomAnimDuration Duration `toml:"zoom_anim_duration"`
	// ZoomStepFactor is the scale multiplier of one wheel step.
	ZoomStepFactor float64 `toml:"zoom_step_factor"`
	// ZoomTargetMinWidth is the narrowest content width, in content pixels,
	// a double tap zooms in to.
	ZoomTargetMinWidth float64 `toml:"zoom_target_min_width"`
	// ZoomTargetPadding is added around a double tap target element.
	ZoomTargetPadding float64 `toml:"zoom_target_padding"`

	// AxisLock drops pan movement off the axis a pan started along.
	AxisLock bool `toml:"axis_lock"`
	// AxisLockRatio is how much larger one axis of the starting movement
	// must be than the other for the pan to count as axis-aligned.
	AxisLockRatio float64 `toml:"axis_lock_ratio"`
}

// DefaultConfig returns the reference thresholds.
func DefaultConfig() Config {
	return Config{
		PressDelay:         Duration(300 * time.Millisecond),
		ClickTimeout:       Duration(200 * time.Millisecond),
		PanStartDistance:   50,
		DoubleTapSlop:      50,
		CommitDelay:        Duration(500 * time.Millisecond),
		MinZoom:            0.01,
		MaxZoom:            10,
		ZoomAnimDuration:   Duration(400 * time.Millisecond),
		ZoomStepFactor:     1.25,
		ZoomTargetMinWidth: 300,
		ZoomTargetPadding:  5,
		AxisLockRatio:      2,
	}
}

// Validate reports every threshold that cannot work.
func (c Config) Validate() error {
	var errs []error
	if c.PressDelay <= 0 {
		errs = append(errs, fmt.Errorf("press_delay must be positive, got %v", c.PressDelay.Std()))
	}
	if c.ClickTimeout <= 0 {
		errs = append(errs, fmt.Errorf("click_timeout must be positive, got %v", c.ClickTimeout.Std()))
	}
	if c.PanStartDistance <= 0 {
		errs = append(errs, fmt.Errorf("pan_start_distance must be positive, got %v", c.PanStartDistance))
	}
	if c.DoubleTapSlop < 0 {
		errs = append(errs, fmt.Errorf("double_tap_slop must not be negative, got %v", c.DoubleTapSlop))
	}
	if c.CommitDelay <= 0 {
		errs = append(errs, fmt.Errorf("commit_delay must be positive, got %v", c.CommitDelay.Std()))
	}
	if c.MinZoom <= 0 || c.MaxZoom <= 0 {
		errs = append(errs, fmt.Errorf("zoom range must be positive, got [%v, %v]", c.MinZoom, c.MaxZoom))
	} else if c.MinZoom > c.MaxZoom {
		errs = append(errs, fmt.Errorf("min_zoom %v exceeds max_zoom %v", c.MinZoom, c.MaxZoom))
	}
	if c.ZoomAnimDuration < 0 {
		errs = append(errs, fmt.Errorf("zoom_anim_duration must not be negative, got %v", c.ZoomAnimDuration.Std()))
	}
	if c.ZoomStepFactor <= 1 {
		errs = append(errs, fmt.Errorf("zoom_step_factor must be greater than 1, got %v", c.ZoomStepFactor))
	}
	if c.AxisLockRatio < 1 {
		errs = append(errs, fmt.Errorf("axis_lock_ratio must be at least 1, got %v", c.AxisLockRatio))
	}
	return errors.Join(errs...)
}

// clampZoom bounds v to [MinZoom, MaxZoom].
func (c Config) clampZoom(v float64) float64 {
	if v < c.MinZoom {
		return c.MinZoom
	}
	if v > c.MaxZoom {
		return c.MaxZoom
	}
	return v
}

// DecodeConfig reads a TOML config. Keys missing from r keep their
// DefaultConfig values; unknown keys are an error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return finishConfig(cfg, md)
}

// LoadConfig reads a TOML config file. See DecodeConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return finishConfig(cfg, md)
}

func finishConfig(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Encode writes the config as TOML.
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
