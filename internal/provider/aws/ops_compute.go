package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/applicationautoscaling"
	aastypes "github.com/aws/aws-sdk-go-v2/service/applicationautoscaling/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/privsweep/privsweep/internal/scan"
)

func ec2Ops(cfg awssdk.Config) opSet {
	c := ec2.NewFromConfig(cfg)
	return opSet{
		"describe_instances": op("DescribeInstances", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeInstances(ctx, &ec2.DescribeInstancesInput{})
		}),
		"describe_volumes": op("DescribeVolumes", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{})
		}),
		"describe_snapshots": op("DescribeSnapshots", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeSnapshots(ctx, &ec2.DescribeSnapshotsInput{OwnerIds: []string{"self"}})
		}),
		"describe_images": op("DescribeImages", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeImages(ctx, &ec2.DescribeImagesInput{Owners: []string{"self"}})
		}),
		"describe_security_groups": op("DescribeSecurityGroups", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{})
		}),
		"describe_vpcs": op("DescribeVpcs", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{})
		}),
		"describe_subnets": op("DescribeSubnets", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{})
		}),
		"describe_route_tables": op("DescribeRouteTables", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeRouteTables(ctx, &ec2.DescribeRouteTablesInput{})
		}),
		"describe_addresses": op("DescribeAddresses", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{})
		}),
		"describe_nat_gateways": op("DescribeNatGateways", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeNatGateways(ctx, &ec2.DescribeNatGatewaysInput{})
		}),
		"describe_key_pairs": op("DescribeKeyPairs", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeKeyPairs(ctx, &ec2.DescribeKeyPairsInput{})
		}),
		"describe_availability_zones": op("DescribeAvailabilityZones", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{})
		}),
		"describe_instance_types": op("DescribeInstanceTypes", func(ctx context.Context, args scan.Args) (any, error) {
			input := &ec2.DescribeInstanceTypesInput{}
			if t := args.StringOr("InstanceType", ""); t != "" {
				input.InstanceTypes = []ec2types.InstanceType{ec2types.InstanceType(t)}
			}
			return c.DescribeInstanceTypes(ctx, input)
		}),
	}
}

func lambdaOps(cfg awssdk.Config) opSet {
	c := lambda.NewFromConfig(cfg)
	return opSet{
		"list_functions": op("ListFunctions", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListFunctions(ctx, &lambda.ListFunctionsInput{})
		}),
		"list_layers": op("ListLayers", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListLayers(ctx, &lambda.ListLayersInput{})
		}),
		"list_event_source_mappings": op("ListEventSourceMappings", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListEventSourceMappings(ctx, &lambda.ListEventSourceMappingsInput{})
		}),
		"get_account_settings": op("GetAccountSettings", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.GetAccountSettings(ctx, &lambda.GetAccountSettingsInput{})
		}),
		"get_function": op("GetFunction", func(ctx context.Context, args scan.Args) (any, error) {
			name, err := args.String("FunctionName")
			if err != nil {
				return nil, err
			}
			return c.GetFunction(ctx, &lambda.GetFunctionInput{FunctionName: awssdk.String(name)})
		}),
	}
}

func ecsOps(cfg awssdk.Config) opSet {
	c := ecs.NewFromConfig(cfg)
	return opSet{
		"list_clusters": op("ListClusters", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListClusters(ctx, &ecs.ListClustersInput{})
		}),
		"list_task_definitions": op("ListTaskDefinitions", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListTaskDefinitions(ctx, &ecs.ListTaskDefinitionsInput{})
		}),
		"list_services": op("ListServices", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListServices(ctx, &ecs.ListServicesInput{})
		}),
		"describe_clusters": op("DescribeClusters", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeClusters(ctx, &ecs.DescribeClustersInput{})
		}),
	}
}

func eksOps(cfg awssdk.Config) opSet {
	c := eks.NewFromConfig(cfg)
	return opSet{
		"list_clusters": op("ListClusters", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListClusters(ctx, &eks.ListClustersInput{})
		}),
		"describe_cluster": op("DescribeCluster", func(ctx context.Context, args scan.Args) (any, error) {
			name, err := args.String("Name")
			if err != nil {
				return nil, err
			}
			return c.DescribeCluster(ctx, &eks.DescribeClusterInput{Name: awssdk.String(name)})
		}),
		"list_nodegroups": op("ListNodegroups", func(ctx context.Context, args scan.Args) (any, error) {
			name, err := args.String("ClusterName")
			if err != nil {
				return nil, err
			}
			return c.ListNodegroups(ctx, &eks.ListNodegroupsInput{ClusterName: awssdk.String(name)})
		}),
	}
}

func ecrOps(cfg awssdk.Config) opSet {
	c := ecr.NewFromConfig(cfg)
	return opSet{
		"describe_repositories": op("DescribeRepositories", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeRepositories(ctx, &ecr.DescribeRepositoriesInput{})
		}),
		"get_authorization_token": op("GetAuthorizationToken", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.GetAuthorizationToken(ctx, &ecr.GetAuthorizationTokenInput{})
		}),
		"list_images": op("ListImages", func(ctx context.Context, args scan.Args) (any, error) {
			repo, err := args.String("RepositoryName")
			if err != nil {
				return nil, err
			}
			return c.ListImages(ctx, &ecr.ListImagesInput{RepositoryName: awssdk.String(repo)})
		}),
		"describe_images": op("DescribeImages", func(ctx context.Context, args scan.Args) (any, error) {
			repo, err := args.String("RepositoryName")
			if err != nil {
				return nil, err
			}
			return c.DescribeImages(ctx, &ecr.DescribeImagesInput{RepositoryName: awssdk.String(repo)})
		}),
	}
}

func applicationAutoscalingOps(cfg awssdk.Config) opSet {
	c := applicationautoscaling.NewFromConfig(cfg)
	return opSet{
		"describe_scalable_targets": op("DescribeScalableTargets", func(ctx context.Context, args scan.Args) (any, error) {
			ns, err := args.String("ServiceNamespace")
			if err != nil {
				return nil, err
			}
			return c.DescribeScalableTargets(ctx, &applicationautoscaling.DescribeScalableTargetsInput{
				ServiceNamespace: aastypes.ServiceNamespace(ns),
			})
		}),
		"describe_scaling_policies": op("DescribeScalingPolicies", func(ctx context.Context, args scan.Args) (any, error) {
			ns, err := args.String("ServiceNamespace")
			if err != nil {
				return nil, err
			}
			return c.DescribeScalingPolicies(ctx, &applicationautoscaling.DescribeScalingPoliciesInput{
				ServiceNamespace: aastypes.ServiceNamespace(ns),
			})
		}),
		"describe_scaling_activities": op("DescribeScalingActivities", func(ctx context.Context, args scan.Args) (any, error) {
			ns, err := args.String("ServiceNamespace")
			if err != nil {
				return nil, err
			}
			return c.DescribeScalingActivities(ctx, &applicationautoscaling.DescribeScalingActivitiesInput{
				ServiceNamespace: aastypes.ServiceNamespace(ns),
			})
		}),
	}
}
