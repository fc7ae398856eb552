package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	cetypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	"github.com/privsweep/privsweep/internal/scan"
)

func costExplorerOps(cfg awssdk.Config) opSet {
	c := costexplorer.NewFromConfig(cfg)
	return opSet{
		"list_cost_category_definitions": op("ListCostCategoryDefinitions", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListCostCategoryDefinitions(ctx, &costexplorer.ListCostCategoryDefinitionsInput{})
		}),
		"list_cost_allocation_tags": op("ListCostAllocationTags", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListCostAllocationTags(ctx, &costexplorer.ListCostAllocationTagsInput{})
		}),
		"get_cost_and_usage": op("GetCostAndUsage", func(ctx context.Context, args scan.Args) (any, error) {
			start, err := args.String("Start")
			if err != nil {
				return nil, err
			}
			end, err := args.String("End")
			if err != nil {
				return nil, err
			}
			return c.GetCostAndUsage(ctx, &costexplorer.GetCostAndUsageInput{
				Granularity: cetypes.GranularityDaily,
				Metrics:     []string{"UnblendedCost"},
				TimePeriod: &cetypes.DateInterval{
					Start: awssdk.String(start),
					End:   awssdk.String(end),
				},
			})
		}),
	}
}

func pricingOps(cfg awssdk.Config) opSet {
	c := pricing.NewFromConfig(cfg)
	return opSet{
		"describe_services": op("DescribeServices", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeServices(ctx, &pricing.DescribeServicesInput{})
		}),
		"get_products": op("GetProducts", func(ctx context.Context, args scan.Args) (any, error) {
			code, err := args.String("ServiceCode")
			if err != nil {
				return nil, err
			}
			return c.GetProducts(ctx, &pricing.GetProductsInput{ServiceCode: awssdk.String(code)})
		}),
		"get_attribute_values": op("GetAttributeValues", func(ctx context.Context, args scan.Args) (any, error) {
			code, err := args.String("ServiceCode")
			if err != nil {
				return nil, err
			}
			attr, err := args.String("AttributeName")
			if err != nil {
				return nil, err
			}
			return c.GetAttributeValues(ctx, &pricing.GetAttributeValuesInput{
				ServiceCode:   awssdk.String(code),
				AttributeName: awssdk.String(attr),
			})
		}),
	}
}
