package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStepsCopiesByValue(t *testing.T) {
	template := []TemplateStep{
		{Order: 1, Name: "Screen", Role: "admin", Action: "screen", Required: true},
		{Order: 2, Name: "Approve", Role: "client", Action: "approve", AutoAdvance: true},
	}

	snapshot := SnapshotSteps(template)
	require.Len(t, snapshot, 2)

	for i, step := range snapshot {
		assert.Equal(t, template[i].Order, step.Order)
		assert.Equal(t, template[i].Name, step.Name)
		assert.Equal(t, template[i].Role, step.Role)
		assert.Equal(t, template[i].Action, step.Action)
		assert.Equal(t, template[i].Required, step.Required)
		assert.Equal(t, template[i].AutoAdvance, step.AutoAdvance)
		assert.Equal(t, "pending", step.Status)
		assert.NotEqual(t, uuid.Nil, step.StepID)
		assert.Nil(t, step.CompletedAt)
	}

	assert.NotEqual(t, snapshot[0].StepID, snapshot[1].StepID)

	// Later template edits must not reach the snapshot.
	template[0].Name = "Renamed"
	assert.Equal(t, "Screen", snapshot[0].Name)
}

func TestSnapshotStepsEmpty(t *testing.T) {
	assert.Empty(t, SnapshotSteps(nil))
}

func TestPrincipalFullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", Principal{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "Ada", Principal{FirstName: "Ada"}.FullName())
	assert.Equal(t, "Lovelace", Principal{LastName: "Lovelace"}.FullName())
}
