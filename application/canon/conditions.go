package canon

// conditionOperators maps well-known condition keys to the operator they
// take in the wire format. Keys not listed here, including tag-valued
// keys, default to StringEquals, the safest exact-match operator.
var conditionOperators = map[string]string{
	"aws:SecureTransport":        "Bool",
	"aws:MultiFactorAuthPresent": "Bool",
	"aws:SourceIp":               "IpAddress",
	"aws:CurrentTime":            "DateLessThan",
	"aws:EpochTime":              "NumericLessThan",
}

func operatorForConditionKey(key string) string {
	if op, ok := conditionOperators[key]; ok {
		return op
	}
	return "StringEquals"
}
