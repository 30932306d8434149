package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"waltgoat/walker-app/internal/catalog"
	"waltgoat/walker-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "seed-catalog")
}

func TestCatalogDump(t *testing.T) {
	out, err := execute(t, "catalog", "dump", "--category=", "--json=false")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, catalog.Default().Len()+1)

	out, err = execute(t, "catalog", "dump", "--category", "schiena", "--json")
	require.NoError(t, err)
	var exercises []domain.ExerciseDefinition
	require.NoError(t, json.Unmarshal([]byte(out), &exercises))
	require.NotEmpty(t, exercises)
	for _, ex := range exercises {
		assert.Equal(t, domain.CategoryBack, ex.Category)
	}

	_, err = execute(t, "catalog", "dump", "--category", "yoga", "--json=false")
	assert.Error(t, err)
}

func TestPlanPreview(t *testing.T) {
	out, err := execute(t, "plan", "preview",
		"--level", "Principiante", "--age", "72", "--energy", "3",
		"--days", "Lunedì,Mercoledì,Venerdì", "--pain", "ginocchia")
	require.NoError(t, err)

	var plan domain.WorkoutPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "Piano Automatico - Fascia 72", plan.Name)
	require.Len(t, plan.Days, 3)
	assert.Equal(t, 25, plan.Days[0].Activities[0].DurationMinutes)

	_, err = execute(t, "plan", "preview", "--energy", "20")
	assert.Error(t, err)
}
