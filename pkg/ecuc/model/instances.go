package model

import (
	"sort"

	"ecutools/arcfg/pkg/ecuc/errors"
)

func wrapInstanceNotFound(c *Container, id int) error {
	return errors.Newf(errors.KindInstanceNotFound, "instance %d does not exist", id).WithPath(c.Path)
}

// CurrentID selects the container's current instance when passed as an
// instance id.
const CurrentID = -1

// CreateInstance adds a fresh instance initialized to defaults and returns
// its id. Fails when the container's multiplicity bound is reached.
func (m *Model) CreateInstance(path string) (int, error) {
	c, err := m.Container(path)
	if err != nil {
		return 0, err
	}
	id, err := c.createInstance()
	if err != nil {
		return 0, err
	}
	m.recordChange(ActionCreateInstance, path, map[string]any{"instanceId": id})
	return id, nil
}

// DeleteInstance removes an instance and renumbers the survivors so ids
// stay dense and zero-based. CurrentID deletes the current instance.
func (m *Model) DeleteInstance(path string, id int) error {
	c, err := m.Container(path)
	if err != nil {
		return err
	}
	if id == CurrentID {
		id = c.Current
	}
	if err := c.deleteInstance(id); err != nil {
		return err
	}
	m.recordChange(ActionDeleteInstance, path, map[string]any{"instanceId": id})
	return nil
}

// SwitchInstance makes the given instance current.
func (m *Model) SwitchInstance(path string, id int) error {
	c, err := m.Container(path)
	if err != nil {
		return err
	}
	if id < 0 || id >= len(c.Instances) {
		return wrapInstanceNotFound(c, id)
	}
	old := c.Current
	c.Current = id
	m.recordChange(ActionSwitchInstance, path, map[string]any{"oldInstance": old, "newInstance": id})
	return nil
}

// SwitchNext advances the current instance, wrapping past the last one,
// and returns the new current id.
func (m *Model) SwitchNext(path string) (int, error) {
	c, err := m.Container(path)
	if err != nil {
		return 0, err
	}
	if len(c.Instances) == 0 {
		return 0, wrapInstanceNotFound(c, 0)
	}
	next := (c.Current + 1) % len(c.Instances)
	if err := m.SwitchInstance(path, next); err != nil {
		return 0, err
	}
	return next, nil
}

// SetVariableValue writes a variable on one instance and records the old
// and new values. CurrentID targets the current instance.
func (m *Model) SetVariableValue(path, name, value string, id int) error {
	c, err := m.Container(path)
	if err != nil {
		return err
	}
	if id == CurrentID {
		id = c.Current
	}
	old, err := c.value(name, id)
	if err != nil {
		return err
	}
	if err := c.setValue(name, value, id); err != nil {
		return err
	}
	m.recordChange(ActionModifyVariable, path, map[string]any{
		"variable":   name,
		"instanceId": id,
		"oldValue":   old,
		"newValue":   value,
	})
	return nil
}

// GetVariableValue reads a variable from one instance. CurrentID targets
// the current instance; an id beyond the dense range yields the default.
func (m *Model) GetVariableValue(path, name string, id int) (string, error) {
	c, err := m.Container(path)
	if err != nil {
		return "", err
	}
	if id == CurrentID {
		id = c.Current
	}
	return c.value(name, id)
}

// CopyInstance copies all variable values from one instance onto another
// and returns the target id. A target of CurrentID creates a fresh
// instance, subject to the multiplicity bound.
func (m *Model) CopyInstance(path string, src, dst int) (int, error) {
	c, err := m.Container(path)
	if err != nil {
		return 0, err
	}
	if src < 0 || src >= len(c.Instances) {
		return 0, wrapInstanceNotFound(c, src)
	}
	if dst == CurrentID {
		if dst, err = c.createInstance(); err != nil {
			return 0, err
		}
	} else if dst < 0 || dst >= len(c.Instances) {
		return 0, wrapInstanceNotFound(c, dst)
	}
	for name, value := range c.Instances[src].Variables {
		if err := c.setValue(name, value, dst); err != nil {
			return 0, err
		}
	}
	m.recordChange(ActionCopyInstance, path, map[string]any{"sourceInstance": src, "targetInstance": dst})
	return dst, nil
}

// ResetInstance restores one instance to the variable defaults. CurrentID
// targets the current instance.
func (m *Model) ResetInstance(path string, id int) error {
	c, err := m.Container(path)
	if err != nil {
		return err
	}
	if id == CurrentID {
		id = c.Current
	}
	if id < 0 || id >= len(c.Instances) {
		return wrapInstanceNotFound(c, id)
	}
	for name, v := range c.Variables {
		if err := c.setValue(name, v.DefaultValue(), id); err != nil {
			return err
		}
	}
	m.recordChange(ActionResetInstance, path, map[string]any{"instanceId": id})
	return nil
}

// ResetToDefaults restores every container to a single default instance
// and clears the modification history.
func (m *Model) ResetToDefaults() {
	for _, c := range m.walkAll() {
		c.Instances = nil
		c.Current = 0
		for _, v := range c.Variables {
			v.Values = nil
		}
		c.createInstance()
	}
	m.history = nil
}

// ListInstances returns the instances of a container in id order.
func (m *Model) ListInstances(path string) ([]*Instance, error) {
	c, err := m.Container(path)
	if err != nil {
		return nil, err
	}
	out := make([]*Instance, len(c.Instances))
	copy(out, c.Instances)
	return out, nil
}

// InstanceCount returns the number of instances, zero for unknown paths.
func (m *Model) InstanceCount(path string) int {
	if c, ok := m.containers[path]; ok {
		return len(c.Instances)
	}
	return 0
}

// CurrentInstance returns the current instance id, zero for unknown paths.
func (m *Model) CurrentInstance(path string) int {
	if c, ok := m.containers[path]; ok {
		return c.Current
	}
	return 0
}

// ModifiedVariables maps variable paths to their current-instance value,
// for variables that differ from their default.
func (m *Model) ModifiedVariables() map[string]string {
	out := map[string]string{}
	for _, c := range m.walkAll() {
		names := make([]string, 0, len(c.Variables))
		for n := range c.Variables {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			val, err := c.value(n, c.Current)
			if err == nil && val != c.Variables[n].DefaultValue() {
				out[c.Path+"/"+n] = val
			}
		}
	}
	return out
}
