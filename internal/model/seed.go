package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SeedData is a fixture set loaded by the seeder. Signups refer to campers and
// activities by their Ref key because ids are only known after insertion.
type SeedData struct {
	Activities []SeedActivity `yaml:"activities" json:"activities"`
	Campers    []SeedCamper   `yaml:"campers" json:"campers"`
	Signups    []SeedSignup   `yaml:"signups" json:"signups"`
}

// SeedActivity is an activity fixture
type SeedActivity struct {
	Ref        string `yaml:"ref" json:"ref"`
	Name       string `yaml:"name" json:"name"`
	Difficulty int    `yaml:"difficulty" json:"difficulty"`
}

// SeedCamper is a camper fixture
type SeedCamper struct {
	Ref  string `yaml:"ref" json:"ref"`
	Name string `yaml:"name" json:"name"`
	Age  int    `yaml:"age" json:"age"`
}

// SeedSignup is a signup fixture
type SeedSignup struct {
	Camper   string `yaml:"camper" json:"camper"`
	Activity string `yaml:"activity" json:"activity"`
	Time     int    `yaml:"time" json:"time"`
}

// ParseSeedData decodes a YAML fixture document and checks its references.
func ParseSeedData(data []byte) (*SeedData, error) {
	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Validate checks that refs are unique and that every signup points at a
// declared camper and activity. Field values are validated on insert.
func (d *SeedData) Validate() error {
	var errs FieldErrors

	activities := make(map[string]bool, len(d.Activities))
	for i, a := range d.Activities {
		field := fmt.Sprintf("activities[%d].ref", i)
		switch {
		case a.Ref == "":
			errs.add(field, ErrFieldRequired)
		case activities[a.Ref]:
			errs = append(errs, FieldError{Field: field, Message: "duplicate ref " + a.Ref})
		}
		activities[a.Ref] = true
	}

	campers := make(map[string]bool, len(d.Campers))
	for i, c := range d.Campers {
		field := fmt.Sprintf("campers[%d].ref", i)
		switch {
		case c.Ref == "":
			errs.add(field, ErrFieldRequired)
		case campers[c.Ref]:
			errs = append(errs, FieldError{Field: field, Message: "duplicate ref " + c.Ref})
		}
		campers[c.Ref] = true
	}

	for i, s := range d.Signups {
		if !campers[s.Camper] {
			errs = append(errs, FieldError{Field: fmt.Sprintf("signups[%d].camper", i), Message: "unknown camper ref " + s.Camper})
		}
		if !activities[s.Activity] {
			errs = append(errs, FieldError{Field: fmt.Sprintf("signups[%d].activity", i), Message: "unknown activity ref " + s.Activity})
		}
	}

	return errs.orNil()
}
