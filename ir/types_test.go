package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeDescriptor_String(t *testing.T) {
	outer := &TypeDescriptor{Namespace: "N", Name: "Outer"}
	inner := &TypeDescriptor{Namespace: "ignored", Name: "Inner", DeclaringType: outer}
	deepest := &TypeDescriptor{Name: "Deepest", DeclaringType: inner}

	assert.Equal(t, "N.Outer", outer.String())
	assert.Equal(t, "N.Outer.Inner", inner.String())
	assert.Equal(t, "N.Outer.Inner.Deepest", deepest.String())
	assert.Equal(t, "Global", (&TypeDescriptor{Name: "Global"}).String())

	var nilType *TypeDescriptor
	assert.Equal(t, "<nil>", nilType.String())
}

func TestTypeDescriptor_IsConstructedGeneric(t *testing.T) {
	def := &TypeDescriptor{Name: "Box`1", IsGenericType: true, IsGenericTypeDefinition: true}
	constructed := &TypeDescriptor{Name: "Box`1", IsGenericType: true}
	plain := &TypeDescriptor{Name: "Box"}

	assert.False(t, def.IsConstructedGeneric())
	assert.True(t, constructed.IsConstructedGeneric())
	assert.False(t, plain.IsConstructedGeneric())
}

func TestTypeDescriptor_NestedTypes(t *testing.T) {
	inner := &TypeDescriptor{Name: "Inner"}
	outer := &TypeDescriptor{
		Name: "Outer",
		Members: []*MemberDescriptor{
			{Kind: KindField, Name: "f"},
			{Kind: KindNestedType, Type: inner},
			{Kind: KindNestedType},
		},
	}
	assert.Equal(t, []*TypeDescriptor{inner}, outer.NestedTypes())
	assert.False(t, outer.IsNested())
}
