package config

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if !(value > 0) {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if !(value >= 0) {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if !(value >= min && value <= max) {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

func validateNonZeroVector(field string, vec [3]float64) []ValidationError {
	length := math.Sqrt(vec[0]*vec[0] + vec[1]*vec[1] + vec[2]*vec[2])
	if !(length > 1e-12) || math.IsInf(length, 0) {
		return []ValidationError{{
			Field:   field,
			Message: "must be a finite non-zero vector",
		}}
	}
	return nil
}

func validateFinite(field string, values ...float64) []ValidationError {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return []ValidationError{{
				Field:   field,
				Message: "must be finite",
			}}
		}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors formats validation errors grouped by top-level section
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]ValidationError{}
	var order []string
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		if _, ok := categories[category]; !ok {
			order = append(order, category)
		}
		categories[category] = append(categories[category], err)
	}
	sort.Strings(order)

	for _, category := range order {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *ScanConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Sensor.Latitudes.validate("sensor.latitudes", 90)...)
	errors = append(errors, c.Sensor.Longitudes.validate("sensor.longitudes", 180)...)
	errors = append(errors, c.Scene.Validate()...)
	if len(c.Trajectory) == 0 {
		errors = append(errors, ValidationError{
			Field:   "trajectory",
			Message: "at least one pose is required",
		})
	}
	for i, p := range c.Trajectory {
		errors = append(errors, p.validate(fmt.Sprintf("trajectory.%d", i))...)
	}
	errors = append(errors, c.Output.Validate()...)
	return errors
}

// limitDeg is the largest absolute angle the grid may contain.
func (g *AngleGrid) validate(field string, limitDeg float64) []ValidationError {
	var errors []ValidationError

	given := 0
	if g.Values != nil {
		given++
	}
	if g.Span != nil {
		given++
	}
	if g.Profile != nil {
		given++
	}
	if given != 1 {
		return []ValidationError{{
			Field:   field,
			Message: "exactly one of values, span or profile must be specified",
		}}
	}

	switch {
	case g.Values != nil:
		if len(g.Values) == 0 {
			errors = append(errors, ValidationError{
				Field:   field + ".values",
				Message: "must not be empty",
			})
		}
		for i, v := range g.Values {
			errors = append(errors, validateInRange(fmt.Sprintf("%s.values.%d", field, i), v, -limitDeg, limitDeg)...)
		}
	case g.Span != nil:
		errors = append(errors, validatePositive(field+".span.count", float64(g.Span.Count))...)
		errors = append(errors, validateInRange(field+".span.min_deg", g.Span.MinDeg, -limitDeg, limitDeg)...)
		errors = append(errors, validateInRange(field+".span.max_deg", g.Span.MaxDeg, -limitDeg, limitDeg)...)
	case g.Profile != nil:
		errors = append(errors, validatePositive(field+".profile.count", float64(g.Profile.Count))...)
		if len(g.Profile.Knots) == 0 {
			errors = append(errors, ValidationError{
				Field:   field + ".profile.knots",
				Message: "at least one knot is required",
			})
		}
		for beam, deg := range g.Profile.Knots {
			errors = append(errors, validateInRange(fmt.Sprintf("%s.profile.knots.%v", field, beam), deg, -limitDeg, limitDeg)...)
		}
	}

	return errors
}

func (s *Scene) Validate() []ValidationError {
	var errors []ValidationError

	if s.Planes.Inline == nil && s.Planes.FromFile == "" {
		errors = append(errors, ValidationError{
			Field:   "scene.planes",
			Message: "either inline or from_file must be specified",
		})
		return errors
	}

	for i, p := range s.Planes.Inline {
		field := fmt.Sprintf("scene.planes.inline.%d", i)
		if p.Name != "" {
			field = fmt.Sprintf("scene.planes.inline.%s", p.Name)
		}
		errors = append(errors, validateNonZeroVector(field+".normal", p.Normal)...)
		errors = append(errors, validateFinite(field+".offset", p.Offset)...)
		if p.Point != nil {
			errors = append(errors, validateFinite(field+".point", p.Point[:]...)...)
			if p.Offset != 0 {
				errors = append(errors, ValidationError{
					Field:   field,
					Message: "point and offset are mutually exclusive",
				})
			}
		}
	}

	return errors
}

func (p *PoseSpec) validate(field string) []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateFinite(field+".position", p.Position[:]...)...)
	errors = append(errors, validateFinite(field+".axis", p.Axis[:]...)...)
	errors = append(errors, validateFinite(field+".angle_deg", p.AngleDeg)...)
	if p.AngleDeg != 0 && p.Axis == [3]float64{} {
		errors = append(errors, ValidationError{
			Field:   field + ".axis",
			Message: "required when angle_deg is set",
		})
	}
	return errors
}

func (o *Output) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validatePositive("output.max_range", o.MaxRange)...)
	errors = append(errors, validateNonNegative("output.cell_size", float64(o.CellSize))...)
	errors = append(errors, validateNonNegative("output.profile_row", float64(o.ProfileRow))...)
	return errors
}
