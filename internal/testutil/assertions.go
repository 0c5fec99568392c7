// Package testutil provides common test utilities and assertions.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saffronius/acpgen/domain/entities"
)

// AssertJSONEqual compares two JSON strings for equality, ignoring formatting
func AssertJSONEqual(t *testing.T, expected, actual string, msgAndArgs ...interface{}) {
	t.Helper()

	var expectedJSON, actualJSON interface{}
	require.NoError(t, json.Unmarshal([]byte(expected), &expectedJSON), "expected JSON is invalid")
	require.NoError(t, json.Unmarshal([]byte(actual), &actualJSON), "actual JSON is invalid")

	assert.Equal(t, expectedJSON, actualJSON, msgAndArgs...)
}

// FindDiagnostics returns every diagnostic carrying the given code.
func FindDiagnostics(diags []entities.Diagnostic, code entities.Code) []entities.Diagnostic {
	var found []entities.Diagnostic
	for _, d := range diags {
		if d.Code == code {
			found = append(found, d)
		}
	}
	return found
}

// RequireDiagnostic asserts that exactly the given code is present at
// least once and returns its first occurrence.
func RequireDiagnostic(t *testing.T, diags []entities.Diagnostic, code entities.Code) entities.Diagnostic {
	t.Helper()

	found := FindDiagnostics(diags, code)
	require.NotEmpty(t, found, "expected diagnostic %s, got %v", code, diags)
	return found[0]
}

// RequireNoDiagnostic asserts that the given code is absent.
func RequireNoDiagnostic(t *testing.T, diags []entities.Diagnostic, code entities.Code) {
	t.Helper()

	require.Empty(t, FindDiagnostics(diags, code), "unexpected diagnostic %s", code)
}
