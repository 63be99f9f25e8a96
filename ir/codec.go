package ir

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a metadata file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported metadata file extension %q (expected .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Decode reads a module in the given format, links it and validates it.
func Decode(r io.Reader, format Format) (*Module, error) {
	var m Module
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode json metadata: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml metadata: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown metadata format %q", format)
	}

	m.Link()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Encode writes a module in the given format. Back references set by Link are
// dropped so the output round-trips through Decode.
func Encode(w io.Writer, m *Module, format Format) error {
	out := &Module{Name: m.Name}
	for _, t := range m.Types {
		out.Types = append(out.Types, detach(t, nil))
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown metadata format %q", format)
	}
}

// detach copies a declared type without the DeclaringType link to its parent.
func detach(t, parent *TypeDescriptor) *TypeDescriptor {
	cp := *t
	if cp.DeclaringType == parent {
		cp.DeclaringType = nil
	} else {
		cp.DeclaringType = reference(cp.DeclaringType)
	}
	cp.GenericArguments = references(t.GenericArguments)
	cp.Members = nil
	for _, m := range t.Members {
		cp.Members = append(cp.Members, detachMember(m, t))
	}
	return &cp
}

func detachMember(m *MemberDescriptor, owner *TypeDescriptor) *MemberDescriptor {
	cp := *m
	cp.DeclaringType = nil
	cp.Parameters = references(m.Parameters)
	if m.Type != nil {
		cp.Type = detach(m.Type, owner)
	}
	for _, acc := range []**MemberDescriptor{&cp.Getter, &cp.Setter, &cp.Adder, &cp.Remover} {
		if *acc != nil {
			*acc = detachMember(*acc, owner)
		}
	}
	return &cp
}

// reference copies the parts of a type that identify it, leaving out members.
func reference(t *TypeDescriptor) *TypeDescriptor {
	if t == nil {
		return nil
	}
	return &TypeDescriptor{
		Namespace:               t.Namespace,
		Name:                    t.Name,
		DeclaringType:           reference(t.DeclaringType),
		IsGenericType:           t.IsGenericType,
		IsGenericTypeDefinition: t.IsGenericTypeDefinition,
		GenericArguments:        references(t.GenericArguments),
		IsVisible:               t.IsVisible,
	}
}

func references(ts []*TypeDescriptor) []*TypeDescriptor {
	if len(ts) == 0 {
		return nil
	}
	out := make([]*TypeDescriptor, len(ts))
	for i, t := range ts {
		out[i] = reference(t)
	}
	return out
}
