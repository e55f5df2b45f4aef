// Command rotconv converts one attitude into every representation the
// rotation package supports.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/knei-knurow/rotation"
	"github.com/knei-knurow/rotation/internal/config"
)

var (
	configPath string
	kind       string
	values     string
	logLevel   string
	degrees    bool
	radians    bool
)

func main() {
	flag.StringVar(&configPath, "config", "", "TOML config file")
	flag.StringVar(&kind, "kind", "", "input kind: euler|quaternion|matrix|rotvec|fused")
	flag.StringVar(&values, "values", "", "comma separated input values")
	flag.StringVar(&logLevel, "log-level", "", "debug|info|warn|error")
	flag.BoolVar(&degrees, "deg", false, "angles in degrees")
	flag.BoolVar(&radians, "rad", false, "angles in radians")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "rotconv",
	})

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("configuration", "err", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	logger.Debug("input", "kind", cfg.Input.Kind, "values", cfg.Input.Values, "degrees", cfg.Degrees)

	q, err := attitude(logger, cfg)
	if err != nil {
		logger.Fatal("conversion", "err", err)
	}
	report(os.Stdout, q, cfg.Degrees)
}

// loadConfig applies the config file, then the command line flags.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}

	if kind != "" {
		cfg.Input.Kind = config.Kind(kind)
	}
	if values != "" {
		v, err := parseValues(values)
		if err != nil {
			return cfg, err
		}
		cfg.Input.Values = v
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if degrees {
		cfg.Degrees = true
	}
	if radians {
		cfg.Degrees = false
	}
	return cfg, cfg.Validate()
}

func parseValues(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: value %q: %w", config.ErrInvalidConfig, f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// attitude builds the unit quaternion of a validated configuration input.
func attitude(logger *log.Logger, cfg config.Config) (quat.Number, error) {
	v := cfg.Input.Values
	angle := func(a float64) float64 {
		if cfg.Degrees {
			return mgl64.DegToRad(a)
		}
		return a
	}

	switch cfg.Input.Kind {
	case config.KindEuler:
		return rotation.EulerToQuaternion(rotation.Euler{Roll: angle(v[0]), Pitch: angle(v[1]), Heading: angle(v[2])}), nil

	case config.KindQuaternion:
		q := quat.Number{Real: v[0], Imag: v[1], Jmag: v[2], Kmag: v[3]}
		if n := quat.Abs(q); math.Abs(n-1) > 1e-6 {
			logger.Warn("quaternion is not unit norm, normalising", "norm", n)
		}
		return rotation.NormalizeQuaternion(q), nil

	case config.KindMatrix:
		m := mgl64.Mat3FromRows(
			mgl64.Vec3{v[0], v[1], v[2]},
			mgl64.Vec3{v[3], v[4], v[5]},
			mgl64.Vec3{v[6], v[7], v[8]},
		)
		if det := m.Det(); math.Abs(det-1) > 1e-6 {
			logger.Warn("matrix is not a proper rotation", "det", det)
		}
		return rotation.MatrixToQuaternion(m), nil

	case config.KindRotVec:
		return rotation.RotationVectorToQuaternion(r3.Vector{X: angle(v[0]), Y: angle(v[1]), Z: angle(v[2])}), nil

	case config.KindFused:
		return rotation.FusedToQuaternion(rotation.Fused{Yaw: angle(v[0]), Pitch: angle(v[1]), Roll: angle(v[2]), Hemi: cfg.Input.Hemi}), nil
	}

	_, err := cfg.Input.Kind.Len()
	return rotation.Identity(), err
}

func report(w io.Writer, q quat.Number, deg bool) {
	angle := func(a float64) float64 {
		if deg {
			return mgl64.RadToDeg(a)
		}
		return a
	}
	unit := "rad"
	if deg {
		unit = "deg"
	}

	e := rotation.QuaternionToEuler(q)
	m := rotation.QuaternionToMatrix(q)
	v := rotation.QuaternionToRotationVector(q)
	f := rotation.QuaternionToFused(q)

	fmt.Fprintf(w, "quaternion  w=%.9f x=%.9f y=%.9f z=%.9f\n", q.Real, q.Imag, q.Jmag, q.Kmag)
	fmt.Fprintf(w, "euler (%s) roll=%.6f pitch=%.6f heading=%.6f\n", unit, angle(e.Roll), angle(e.Pitch), angle(e.Heading))
	fmt.Fprintf(w, "rotvec (%s) x=%.6f y=%.6f z=%.6f\n", unit, angle(v.X), angle(v.Y), angle(v.Z))
	fmt.Fprintf(w, "fused (%s) yaw=%.6f pitch=%.6f roll=%.6f hemi=%t\n", unit, angle(f.Yaw), angle(f.Pitch), angle(f.Roll), f.Hemi)
	fmt.Fprintln(w, "matrix")
	for r := 0; r < 3; r++ {
		fmt.Fprintf(w, "  %12.9f %12.9f %12.9f\n", m.At(r, 0), m.At(r, 1), m.At(r, 2))
	}
}
