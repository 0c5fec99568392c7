package rulestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saffronius/acpgen/domain/entities"
	domainerrors "github.com/Saffronius/acpgen/domain/errors"
	"github.com/Saffronius/acpgen/infrastructure/rulestore"
	"github.com/Saffronius/acpgen/registry"
)

func TestFileStore_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	pack := `
services:
  - service: sns
    actions:
      read-only: ["sns:GetTopicAttributes"]
      write: ["sns:Publish"]
      admin: ["sns:*"]
    resources:
      - segment: topic
        template: "arn:aws:sns:*:*:%s"
`
	require.NoError(t, os.WriteFile(path, []byte(pack), 0o600))

	store := rulestore.NewFileStore(rulestore.WithPath(path))
	assert.Equal(t, path, store.ConfigPath())

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Services, 1)

	reg := registry.New(registry.WithRulePack(loaded))
	rule, ok := reg.Lookup("sns")
	require.True(t, ok)
	assert.Equal(t, []string{"sns:Publish"}, rule.ActionsFor(entities.AccessWrite))
}

func TestFileStore_Load_MissingFile(t *testing.T) {
	store := rulestore.NewFileStore(rulestore.WithPath(filepath.Join(t.TempDir(), "absent.yaml")))

	pack, err := store.Load()
	require.NoError(t, err, "a missing file is an empty pack, not an error")
	assert.Empty(t, pack.Services)
}

func TestFileStore_Load_MalformedPack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("services:\n  - service: sns\n"), 0o600))

	store := rulestore.NewFileStore(rulestore.WithPath(path))
	_, err := store.Load()
	require.Error(t, err)

	var packErr *domainerrors.RulePackError
	assert.ErrorAs(t, err, &packErr)
}
