package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Deleting a transformation must remove its steps at the store level; the
// delete path does no step cleanup of its own and relies on this constraint.
func TestTransformationStepsConstraint_CascadeDelete(t *testing.T) {
	field, ok := reflect.TypeOf(Transformation{}).FieldByName("Steps")
	require.True(t, ok)
	assert.Contains(t, field.Tag.Get("gorm"), "OnDelete:CASCADE")
}
