package compare_test

import (
	"fmt"
	"testing"

	"github.com/Saffronius/acpgen/application/compare"
	"github.com/Saffronius/acpgen/domain/entities"
)

func syntheticDocument(statements int) entities.PolicyDocument {
	doc := entities.NewPolicyDocument()
	for i := 0; i < statements; i++ {
		doc.Statement = append(doc.Statement, entities.PolicyStatement{
			Sid:    fmt.Sprintf("Allow%d", i),
			Effect: entities.EffectAllow,
			Action: entities.StringOrList{
				fmt.Sprintf("svc%d:GetThing", i),
				fmt.Sprintf("svc%d:ListThings", i),
			},
			Resource: entities.StringOrList{
				fmt.Sprintf("arn:aws:svc%d:::thing-%d", i, i),
			},
		})
	}
	return doc
}

func BenchmarkCompare(b *testing.B) {
	baseline := syntheticDocument(50)
	candidate := syntheticDocument(60)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		compare.Compare(baseline, candidate)
	}
}

func BenchmarkAlignmentScore(b *testing.B) {
	report := compare.Compare(syntheticDocument(50), syntheticDocument(60))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		compare.AlignmentScore(report)
	}
}
