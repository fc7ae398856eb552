package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/wafv2"
	wafv2types "github.com/aws/aws-sdk-go-v2/service/wafv2/types"
	"github.com/privsweep/privsweep/internal/scan"
)

func elbv2Ops(cfg awssdk.Config) opSet {
	c := elbv2.NewFromConfig(cfg)
	return opSet{
		"describe_load_balancers": op("DescribeLoadBalancers", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeLoadBalancers(ctx, &elbv2.DescribeLoadBalancersInput{})
		}),
		"describe_target_groups": op("DescribeTargetGroups", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeTargetGroups(ctx, &elbv2.DescribeTargetGroupsInput{})
		}),
		"describe_ssl_policies": op("DescribeSSLPolicies", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeSSLPolicies(ctx, &elbv2.DescribeSSLPoliciesInput{})
		}),
		"describe_listeners": op("DescribeListeners", func(ctx context.Context, args scan.Args) (any, error) {
			arn, err := args.String("LoadBalancerArn")
			if err != nil {
				return nil, err
			}
			return c.DescribeListeners(ctx, &elbv2.DescribeListenersInput{LoadBalancerArn: awssdk.String(arn)})
		}),
	}
}

func route53Ops(cfg awssdk.Config) opSet {
	c := route53.NewFromConfig(cfg)
	return opSet{
		"list_hosted_zones": op("ListHostedZones", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListHostedZones(ctx, &route53.ListHostedZonesInput{})
		}),
		"list_health_checks": op("ListHealthChecks", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListHealthChecks(ctx, &route53.ListHealthChecksInput{})
		}),
		"list_geo_locations": op("ListGeoLocations", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListGeoLocations(ctx, &route53.ListGeoLocationsInput{})
		}),
		"get_hosted_zone": op("GetHostedZone", func(ctx context.Context, args scan.Args) (any, error) {
			id, err := args.String("Id")
			if err != nil {
				return nil, err
			}
			return c.GetHostedZone(ctx, &route53.GetHostedZoneInput{Id: awssdk.String(id)})
		}),
	}
}

func wafv2Ops(cfg awssdk.Config) opSet {
	c := wafv2.NewFromConfig(cfg)
	scope := func(args scan.Args) (wafv2types.Scope, error) {
		s, err := args.String("Scope")
		if err != nil {
			return "", err
		}
		return wafv2types.Scope(s), nil
	}
	return opSet{
		"list_web_acls": op("ListWebACLs", func(ctx context.Context, args scan.Args) (any, error) {
			s, err := scope(args)
			if err != nil {
				return nil, err
			}
			return c.ListWebACLs(ctx, &wafv2.ListWebACLsInput{Scope: s})
		}),
		"list_ip_sets": op("ListIPSets", func(ctx context.Context, args scan.Args) (any, error) {
			s, err := scope(args)
			if err != nil {
				return nil, err
			}
			return c.ListIPSets(ctx, &wafv2.ListIPSetsInput{Scope: s})
		}),
		"list_rule_groups": op("ListRuleGroups", func(ctx context.Context, args scan.Args) (any, error) {
			s, err := scope(args)
			if err != nil {
				return nil, err
			}
			return c.ListRuleGroups(ctx, &wafv2.ListRuleGroupsInput{Scope: s})
		}),
	}
}
