package model

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Camper is a registered participant. Name and Age are only assigned through
// NewCamper, SetName and SetAge so the field validators always run.
type Camper struct {
	ID   int64
	Name string
	Age  int
}

// NewCamper builds a camper after validating every field.
func NewCamper(name string, age int) (*Camper, error) {
	var errs FieldErrors
	c := &Camper{}
	errs.check("name", c.SetName(name))
	errs.check("age", c.SetAge(age))
	if err := errs.orNil(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetName assigns the camper name when it passes ValidateName.
func (c *Camper) SetName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	c.Name = name
	return nil
}

// SetAge assigns the camper age when it passes ValidateAge.
func (c *Camper) SetAge(age int) error {
	if err := ValidateAge(age); err != nil {
		return err
	}
	c.Age = age
	return nil
}

// CreateCamperRequest is the body of POST /campers
type CreateCamperRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// Build validates the request and returns the camper to insert.
func (r *CreateCamperRequest) Build() (*Camper, error) {
	var errs FieldErrors
	if r.Name == nil {
		errs.add("name", ErrFieldRequired)
	}
	if r.Age == nil {
		errs.add("age", ErrFieldRequired)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return NewCamper(*r.Name, *r.Age)
}

// camperSetters is the allow-list of fields a patch may assign.
var camperSetters = map[string]func(c *Camper, raw json.RawMessage) error{
	"name": func(c *Camper, raw json.RawMessage) error {
		var name string
		if err := decodeStrict(raw, &name); err != nil {
			return ErrFieldType
		}
		return c.SetName(name)
	},
	"age": func(c *Camper, raw json.RawMessage) error {
		var age int
		if err := decodeStrict(raw, &age); err != nil {
			return ErrFieldType
		}
		return c.SetAge(age)
	},
}

// CamperPatch is a partial update of field name to raw JSON value.
type CamperPatch map[string]json.RawMessage

// ApplyTo returns an updated copy of c. The original is never modified, so a
// rejected patch leaves no partially assigned state behind.
func (p CamperPatch) ApplyTo(c *Camper) (*Camper, error) {
	updated := *c

	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs FieldErrors
	for _, field := range keys {
		set, ok := camperSetters[field]
		if !ok {
			errs.add(field, ErrFieldNotAllowed)
			continue
		}
		errs.check(field, set(&updated, p[field]))
	}
	if err := errs.orNil(); err != nil {
		return nil, err
	}
	return &updated, nil
}

// decodeStrict rejects JSON null as well as type mismatches.
func decodeStrict(raw json.RawMessage, v interface{}) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return ErrFieldType
	}
	return json.Unmarshal(raw, v)
}
