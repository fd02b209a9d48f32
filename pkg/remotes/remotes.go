// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

// Package remotes maps decoded 32-bit NEC command words to named remote
// buttons. Tables are pure data: the decode pipeline never consults them,
// callers look up the raw word after decoding.
package remotes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Button is one named code on a remote
type Button struct {
	Name string `yaml:"name"`
	Code uint32 `yaml:"code"`
}

// Table holds the known codes for one remote device
type Table struct {
	Device  string   `yaml:"device"`
	Buttons []Button `yaml:"buttons"`
}

// Lookup returns the button name for a code, if the table knows it
func (t *Table) Lookup(code uint32) (string, bool) {
	for _, b := range t.Buttons {
		if b.Code == code {
			return b.Name, true
		}
	}
	return "", false
}

// Save writes the table to a YAML file
func (t *Table) Save(path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode table for %q: %w", t.Device, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write table file %s: %w", path, err)
	}
	return nil
}

// LoadTable reads a single-device table from a YAML file
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file %s: %w", path, err)
	}

	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse table file %s: %w", path, err)
	}
	if t.Device == "" {
		return nil, fmt.Errorf("table file %s has no device name", path)
	}
	return &t, nil
}

// Set is a collection of tables searched in order
type Set struct {
	tables []Table
}

// Builtin returns a set preloaded with the built-in device tables
func Builtin() *Set {
	s := &Set{}
	s.tables = append(s.tables, builtinTables...)
	return s
}

// Add appends a table to the set
func (s *Set) Add(t Table) {
	s.tables = append(s.tables, t)
}

// LoadFile loads a YAML table file into the set
func (s *Set) LoadFile(path string) error {
	t, err := LoadTable(path)
	if err != nil {
		return err
	}
	s.Add(*t)
	return nil
}

// Tables returns the tables in the set
func (s *Set) Tables() []Table {
	return s.tables
}

// Lookup searches every table for a code and returns the device and button
// names of the first match
func (s *Set) Lookup(code uint32) (device, button string, ok bool) {
	for i := range s.tables {
		if name, found := s.tables[i].Lookup(code); found {
			return s.tables[i].Device, name, true
		}
	}
	return "", "", false
}
