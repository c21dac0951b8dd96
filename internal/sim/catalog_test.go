package sim

import (
	"errors"
	"testing"

	"edpulse/internal/domain"
)

func validCourses() []Course {
	return []Course{{ID: "C101", Weight: 0.6}, {ID: "C102", Weight: 0.4}}
}

func validDevices() []Device {
	return []Device{{Kind: domain.DeviceMobile, Probability: 1.0, MeanSessionMinutes: 25, BaseCompletionRate: 0.65}}
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name    string
		courses []Course
		devices []Device
	}{
		{name: "no courses", courses: nil, devices: validDevices()},
		{name: "no devices", courses: validCourses(), devices: nil},
		{
			name:    "zero course weights",
			courses: []Course{{ID: "C101", Weight: 0}, {ID: "C102", Weight: 0}},
			devices: validDevices(),
		},
		{
			name:    "negative course weight",
			courses: []Course{{ID: "C101", Weight: -0.5}, {ID: "C102", Weight: 1.5}},
			devices: validDevices(),
		},
		{
			name:    "zero device probabilities",
			courses: validCourses(),
			devices: []Device{{Kind: domain.DeviceMobile, Probability: 0}},
		},
		{
			name:    "negative device probability",
			courses: validCourses(),
			devices: []Device{{Kind: domain.DeviceMobile, Probability: -1}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCatalog(tc.courses, tc.devices); !errors.Is(err, domain.ErrInvalidCatalog) {
				t.Fatalf("NewCatalog error = %v, want ErrInvalidCatalog", err)
			}
		})
	}
}

func TestNewCatalogValid(t *testing.T) {
	c, err := NewCatalog(validCourses(), validDevices())
	if err != nil {
		t.Fatalf("NewCatalog returned error: %v", err)
	}
	if len(c.Courses) != 2 || len(c.Devices) != 1 {
		t.Fatalf("catalog shape mismatch: %d courses, %d devices", len(c.Courses), len(c.Devices))
	}
}

func TestDefaultCatalogDraws(t *testing.T) {
	c := DefaultCatalog()
	v := NewVariates(17)

	known := map[string]bool{}
	for _, course := range c.Courses {
		known[course.ID] = true
	}
	for i := 0; i < 200; i++ {
		course, err := c.DrawCourse(v)
		if err != nil {
			t.Fatalf("DrawCourse returned error: %v", err)
		}
		if !known[course.ID] {
			t.Fatalf("drew unknown course %q", course.ID)
		}
	}

	kinds := map[domain.DeviceKind]bool{}
	for i := 0; i < 500; i++ {
		device, err := c.DrawDevice(v)
		if err != nil {
			t.Fatalf("DrawDevice returned error: %v", err)
		}
		kinds[device.Kind] = true
	}
	for _, want := range []domain.DeviceKind{domain.DeviceMobile, domain.DeviceDesktop, domain.DeviceTablet} {
		if !kinds[want] {
			t.Fatalf("device %s never drawn over 500 draws", want)
		}
	}
}

func TestDeviceByKind(t *testing.T) {
	c := DefaultCatalog()
	if _, ok := c.DeviceByKind(domain.DeviceTablet); !ok {
		t.Fatal("tablet missing from default catalog")
	}
	if _, ok := c.DeviceByKind(domain.DeviceKind("watch")); ok {
		t.Fatal("unknown device kind reported as present")
	}
}
