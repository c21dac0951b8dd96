package sim

import (
	"fmt"

	"edpulse/internal/domain"
)

// Course is one catalog entry with its popularity weight. Weights across the
// course list form the categorical distribution sessions draw from.
type Course struct {
	ID     string
	Weight float64
}

// Device is one device class with its selection probability and the session
// parameters keyed off it.
type Device struct {
	Kind               domain.DeviceKind
	Probability        float64
	MeanSessionMinutes float64
	BaseCompletionRate float64
}

// Catalog is the immutable reference data shared by every user simulation.
// Construct it once per run; it is safe for concurrent reads.
type Catalog struct {
	Courses []Course
	Devices []Device

	courseWeights []float64
	deviceWeights []float64
}

// NewCatalog validates both weight partitions and freezes the reference data.
func NewCatalog(courses []Course, devices []Device) (*Catalog, error) {
	if len(courses) == 0 {
		return nil, fmt.Errorf("no courses: %w", domain.ErrInvalidCatalog)
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("no devices: %w", domain.ErrInvalidCatalog)
	}

	c := &Catalog{
		Courses:       append([]Course(nil), courses...),
		Devices:       append([]Device(nil), devices...),
		courseWeights: make([]float64, len(courses)),
		deviceWeights: make([]float64, len(devices)),
	}

	var courseSum float64
	for i, course := range c.Courses {
		if course.Weight < 0 {
			return nil, fmt.Errorf("course %s has negative weight: %w", course.ID, domain.ErrInvalidCatalog)
		}
		c.courseWeights[i] = course.Weight
		courseSum += course.Weight
	}
	if courseSum <= 0 {
		return nil, fmt.Errorf("course weights sum to %v: %w", courseSum, domain.ErrInvalidCatalog)
	}

	var deviceSum float64
	for i, device := range c.Devices {
		if device.Probability < 0 {
			return nil, fmt.Errorf("device %s has negative probability: %w", device.Kind, domain.ErrInvalidCatalog)
		}
		c.deviceWeights[i] = device.Probability
		deviceSum += device.Probability
	}
	if deviceSum <= 0 {
		return nil, fmt.Errorf("device probabilities sum to %v: %w", deviceSum, domain.ErrInvalidCatalog)
	}

	return c, nil
}

// DrawCourse picks a course by popularity weight.
func (c *Catalog) DrawCourse(v *Variates) (Course, error) {
	i, err := v.Categorical(c.courseWeights)
	if err != nil {
		return Course{}, err
	}
	return c.Courses[i], nil
}

// DrawDevice picks a device by selection probability.
func (c *Catalog) DrawDevice(v *Variates) (Device, error) {
	i, err := v.Categorical(c.deviceWeights)
	if err != nil {
		return Device{}, err
	}
	return c.Devices[i], nil
}

// DeviceByKind looks a device class up by its kind label.
func (c *Catalog) DeviceByKind(kind domain.DeviceKind) (Device, bool) {
	for _, d := range c.Devices {
		if d.Kind == kind {
			return d, true
		}
	}
	return Device{}, false
}

// DefaultCatalog mirrors the platform's production course mix and device
// split closely enough for realistic aggregates.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(
		[]Course{
			{ID: "C101", Weight: 0.25},
			{ID: "C102", Weight: 0.20},
			{ID: "C103", Weight: 0.20},
			{ID: "C104", Weight: 0.15},
			{ID: "C105", Weight: 0.12},
			{ID: "C106", Weight: 0.08},
		},
		[]Device{
			{Kind: domain.DeviceMobile, Probability: 0.55, MeanSessionMinutes: 22, BaseCompletionRate: 0.62},
			{Kind: domain.DeviceDesktop, Probability: 0.30, MeanSessionMinutes: 35, BaseCompletionRate: 0.72},
			{Kind: domain.DeviceTablet, Probability: 0.15, MeanSessionMinutes: 28, BaseCompletionRate: 0.68},
		},
	)
	if err != nil {
		panic(err) // static data, cannot fail
	}
	return catalog
}
