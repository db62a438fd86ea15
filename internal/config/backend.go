package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

type BackendType int

const (
	Auto BackendType = iota
	X11
	Hyprland
	Windows
)

func AllBackendTypes() []BackendType {
	return []BackendType{Auto, X11, Hyprland, Windows}
}

func (e BackendType) Value() string {
	switch e {
	case Auto:
		return "auto"
	case X11:
		return "x11"
	case Hyprland:
		return "hyprland"
	case Windows:
		return "windows"
	}
	return ""
}

func ParseBackendType(value string) (BackendType, error) {
	for _, enum := range AllBackendTypes() {
		if enum.Value() == value {
			return enum, nil
		}
	}
	return Auto, errors.New("invalid enum value")
}

func (e *BackendType) UnmarshalTOML(value any) error {
	sValue, ok := value.(string)
	if !ok {
		return fmt.Errorf("value %v is not a string type", value)
	}
	parsed, err := ParseBackendType(sValue)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (e *BackendType) UnmarshalYAML(value *yaml.Node) error {
	var sValue string
	if err := value.Decode(&sValue); err != nil {
		return fmt.Errorf("value %v is not a string type: %w", value.Value, err)
	}
	parsed, err := ParseBackendType(sValue)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (e BackendType) MarshalText() ([]byte, error) {
	return []byte(e.Value()), nil
}
