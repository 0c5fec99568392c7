package canon_test

import (
	"testing"

	"github.com/Saffronius/acpgen/application/canon"
	"github.com/Saffronius/acpgen/domain/entities"
	"github.com/Saffronius/acpgen/registry"
)

func FuzzCanonicalize(f *testing.F) {
	reg := registry.New()

	f.Add("s3", "read-only", "data-bucket", "aws:SecureTransport", "true")
	f.Add("lambda", "write", "", "custom:Key", "x")
	f.Add("s3", "admin", "arn:aws:s3:::b/*", "", "")
	f.Add("weird service!", "read-only", "a/b/c", "aws:SourceIp", "::1")

	f.Fuzz(func(t *testing.T, service, level, ref, condKey, condValue string) {
		spec := entities.SpecDSL{
			Capabilities: []entities.Capability{
				{
					Service:      service,
					AccessLevel:  entities.AccessLevel(level),
					ResourceRefs: []string{ref},
					Conditions:   map[string]string{condKey: condValue},
				},
				{Service: service, AccessLevel: entities.AccessLevel(level)},
			},
		}

		doc, _, err := canon.Canonicalize(reg, spec)
		if err != nil {
			// Only a missing service field is a legitimate failure.
			if service != "" {
				t.Fatalf("unexpected error for service %q: %v", service, err)
			}
			return
		}

		// Sids must stay unique however the inputs collide.
		seen := make(map[string]bool)
		for _, stmt := range doc.Statement {
			if seen[stmt.Sid] {
				t.Fatalf("duplicate Sid %q", stmt.Sid)
			}
			seen[stmt.Sid] = true
			if len(stmt.Action) == 0 || len(stmt.Resource) == 0 {
				t.Fatalf("statement %q emitted without actions or resources", stmt.Sid)
			}
		}
	})
}
