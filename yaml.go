package mat

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Mat4, Vec3, and Quat marshal to flat YAML sequences in storage order,
// for transform entries in map and calibration metadata files.

func (m Mat4) MarshalYAML() (interface{}, error) {
	return m[:], nil
}

func (m *Mat4) UnmarshalYAML(node *yaml.Node) error {
	var v []float32
	if err := node.Decode(&v); err != nil {
		return err
	}
	if len(v) != 16 {
		return fmt.Errorf("mat4 must have 16 elements, got %d", len(v))
	}
	copy(m[:], v)
	return nil
}

func (v Vec3) MarshalYAML() (interface{}, error) {
	return v[:], nil
}

func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	var e []float32
	if err := node.Decode(&e); err != nil {
		return err
	}
	if len(e) != 3 {
		return fmt.Errorf("vec3 must have 3 elements, got %d", len(e))
	}
	copy(v[:], e)
	return nil
}

func (q Quat) MarshalYAML() (interface{}, error) {
	return q[:], nil
}

func (q *Quat) UnmarshalYAML(node *yaml.Node) error {
	var e []float32
	if err := node.Decode(&e); err != nil {
		return err
	}
	if len(e) != 4 {
		return fmt.Errorf("quaternion must have 4 elements, got %d", len(e))
	}
	copy(q[:], e)
	return nil
}
