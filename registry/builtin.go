package registry

import "github.com/Saffronius/acpgen/domain/entities"

// builtinRules is the compiled-in service table. Deployments extend or
// override it with YAML rule packs; see RulePack.
func builtinRules() []ServiceRule {
	return []ServiceRule{
		{
			Service: "s3",
			Actions: map[entities.AccessLevel][]string{
				entities.AccessReadOnly: {"s3:GetObject", "s3:ListBucket", "s3:GetBucketLocation"},
				entities.AccessWrite:    {"s3:GetObject", "s3:ListBucket", "s3:PutObject", "s3:DeleteObject"},
				entities.AccessAdmin:    {"s3:*"},
			},
			// Read access needs both shapes: ListBucket scopes to the
			// bucket ARN, GetObject to the object ARN.
			ARNFormats: []ARNFormat{
				{Segment: "bucket", Template: "arn:aws:s3:::%s"},
				{Segment: "object", Template: "arn:aws:s3:::%s/*"},
			},
			ConditionKeys: []string{
				"aws:SourceIp", "aws:SourceVpc", "aws:SourceVpce", "aws:SecureTransport",
				"aws:userid", "aws:username", "aws:PrincipalTag/*", "aws:RequestTag/*",
				"s3:prefix", "s3:delimiter", "s3:max-keys", "s3:ExistingObjectTag/*",
				"s3:x-amz-server-side-encryption",
			},
			DataPlane: true,
		},
		{
			Service: "kms",
			Actions: map[entities.AccessLevel][]string{
				entities.AccessReadOnly: {"kms:Decrypt", "kms:DescribeKey"},
				entities.AccessWrite:    {"kms:Decrypt", "kms:Encrypt", "kms:GenerateDataKey"},
				entities.AccessAdmin:    {"kms:*"},
			},
			ARNFormats: []ARNFormat{
				{Segment: "key", Template: "arn:aws:kms:*:*:key/%s"},
			},
			ConditionKeys: []string{
				"aws:SourceIp", "aws:SourceVpc", "aws:SecureTransport", "aws:userid",
				"kms:ViaService", "kms:EncryptionContext:*", "kms:CallerAccount",
			},
			DataPlane: true,
		},
		{
			Service: "ec2",
			Actions: map[entities.AccessLevel][]string{
				entities.AccessReadOnly: {"ec2:Describe*", "ec2:List*"},
				entities.AccessWrite:    {"ec2:Describe*", "ec2:List*", "ec2:RunInstances", "ec2:TerminateInstances"},
				entities.AccessAdmin:    {"ec2:*"},
			},
			ARNFormats: []ARNFormat{
				{Segment: "instance", Template: "arn:aws:ec2:*:*:instance/%s"},
			},
			ConditionKeys: []string{
				"aws:SourceIp", "aws:SourceVpc", "aws:SecureTransport", "aws:userid",
				"ec2:Region", "ec2:ResourceTag/*", "ec2:Tenancy", "ec2:InstanceType",
			},
		},
		{
			Service: "dynamodb",
			Actions: map[entities.AccessLevel][]string{
				entities.AccessReadOnly: {"dynamodb:GetItem", "dynamodb:BatchGetItem", "dynamodb:Query", "dynamodb:Scan", "dynamodb:DescribeTable"},
				entities.AccessWrite:    {"dynamodb:GetItem", "dynamodb:Query", "dynamodb:PutItem", "dynamodb:UpdateItem", "dynamodb:DeleteItem"},
				entities.AccessAdmin:    {"dynamodb:*"},
			},
			ARNFormats: []ARNFormat{
				{Segment: "table", Template: "arn:aws:dynamodb:*:*:table/%s"},
			},
			ConditionKeys: []string{
				"aws:SourceIp", "aws:SecureTransport", "aws:PrincipalTag/*",
				"dynamodb:LeadingKeys", "dynamodb:Attributes", "dynamodb:Select",
			},
			DataPlane: true,
		},
		{
			Service: "sts",
			Actions: map[entities.AccessLevel][]string{
				entities.AccessReadOnly: {"sts:GetCallerIdentity"},
				entities.AccessWrite:    {"sts:AssumeRole", "sts:TagSession"},
				entities.AccessAdmin:    {"sts:*"},
			},
			ARNFormats: []ARNFormat{
				{Segment: "role", Template: "arn:aws:iam::*:role/%s"},
			},
			ConditionKeys: []string{
				"aws:SecureTransport", "aws:PrincipalTag/*", "sts:ExternalId",
			},
		},
	}
}
