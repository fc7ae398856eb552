package aws

import (
	"sort"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
)

// partitionRegions is the standard commercial partition, resolved offline
// the way botocore resolves its bundled endpoint metadata. Enumerating
// regions must not require any permission, so this is static data rather
// than an ec2:DescribeRegions call.
var partitionRegions = []string{
	"us-east-1",
	"us-east-2",
	"us-west-1",
	"us-west-2",
	"af-south-1",
	"ap-east-1",
	"ap-south-1",
	"ap-northeast-1",
	"ap-northeast-2",
	"ap-northeast-3",
	"ap-southeast-1",
	"ap-southeast-2",
	"ap-southeast-3",
	"ca-central-1",
	"eu-central-1",
	"eu-west-1",
	"eu-west-2",
	"eu-west-3",
	"eu-north-1",
	"eu-south-1",
	"me-south-1",
	"sa-east-1",
}

// SupportedServices lists the catalog without needing credentials.
func SupportedServices() []string {
	names := make([]string, 0, len(serviceRegistry))
	for name := range serviceRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsGlobal reports whether a service is zone-independent.
func IsGlobal(service string) bool {
	return serviceRegistry[service].global
}

// PartitionRegions returns a copy of the commercial partition region list.
func PartitionRegions() []string {
	regions := make([]string, len(partitionRegions))
	copy(regions, partitionRegions)
	return regions
}

// serviceDef wires one service into the session: whether it is
// zone-independent and how to build its operation set over a regional
// config.
type serviceDef struct {
	global bool
	build  func(cfg awssdk.Config) opSet
}

// serviceRegistry is the static catalog of scannable services. Operation
// sets only contain calls that are read-only by naming convention; the
// catalog's safe-prefix filter is still applied at discovery time.
var serviceRegistry = map[string]serviceDef{
	"application-autoscaling": {build: applicationAutoscalingOps},
	"ce":                      {global: true, build: costExplorerOps},
	"cloudtrail":              {build: cloudtrailOps},
	"cloudwatch":              {build: cloudwatchOps},
	"dynamodb":                {build: dynamodbOps},
	"ec2":                     {build: ec2Ops},
	"ecr":                     {build: ecrOps},
	"ecs":                     {build: ecsOps},
	"eks":                     {build: eksOps},
	"elasticache":             {build: elasticacheOps},
	"elbv2":                   {build: elbv2Ops},
	"iam":                     {global: true, build: iamOps},
	"lambda":                  {build: lambdaOps},
	"logs":                    {build: logsOps},
	"pricing":                 {global: true, build: pricingOps},
	"rds":                     {build: rdsOps},
	"redshift":                {build: redshiftOps},
	"route53":                 {global: true, build: route53Ops},
	"s3":                      {build: s3Ops},
	"sts":                     {global: true, build: stsOps},
	"wafv2":                   {build: wafv2Ops},
}
