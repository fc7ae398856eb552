package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/privsweep/privsweep/internal/scan"
)

func iamOps(cfg awssdk.Config) opSet {
	c := iam.NewFromConfig(cfg)
	return opSet{
		"list_users": op("ListUsers", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListUsers(ctx, &iam.ListUsersInput{})
		}),
		"list_roles": op("ListRoles", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListRoles(ctx, &iam.ListRolesInput{})
		}),
		"list_groups": op("ListGroups", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListGroups(ctx, &iam.ListGroupsInput{})
		}),
		"list_policies": op("ListPolicies", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListPolicies(ctx, &iam.ListPoliciesInput{})
		}),
		"list_account_aliases": op("ListAccountAliases", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListAccountAliases(ctx, &iam.ListAccountAliasesInput{})
		}),
		"list_access_keys": op("ListAccessKeys", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListAccessKeys(ctx, &iam.ListAccessKeysInput{})
		}),
		"list_mfa_devices": op("ListMFADevices", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListMFADevices(ctx, &iam.ListMFADevicesInput{})
		}),
		"get_account_summary": op("GetAccountSummary", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.GetAccountSummary(ctx, &iam.GetAccountSummaryInput{})
		}),
		"get_account_authorization_details": op("GetAccountAuthorizationDetails", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.GetAccountAuthorizationDetails(ctx, &iam.GetAccountAuthorizationDetailsInput{})
		}),
		"get_user": op("GetUser", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.GetUser(ctx, &iam.GetUserInput{})
		}),
	}
}

func stsOps(cfg awssdk.Config) opSet {
	c := sts.NewFromConfig(cfg)
	return opSet{
		"get_caller_identity": op("GetCallerIdentity", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
		}),
		"get_access_key_info": op("GetAccessKeyInfo", func(ctx context.Context, args scan.Args) (any, error) {
			key, err := args.String("AccessKeyId")
			if err != nil {
				return nil, err
			}
			return c.GetAccessKeyInfo(ctx, &sts.GetAccessKeyInfoInput{AccessKeyId: awssdk.String(key)})
		}),
	}
}

func cloudtrailOps(cfg awssdk.Config) opSet {
	c := cloudtrail.NewFromConfig(cfg)
	return opSet{
		"describe_trails": op("DescribeTrails", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeTrails(ctx, &cloudtrail.DescribeTrailsInput{})
		}),
		"list_trails": op("ListTrails", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListTrails(ctx, &cloudtrail.ListTrailsInput{})
		}),
		"list_public_keys": op("ListPublicKeys", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListPublicKeys(ctx, &cloudtrail.ListPublicKeysInput{})
		}),
		"get_trail_status": op("GetTrailStatus", func(ctx context.Context, args scan.Args) (any, error) {
			name, err := args.String("Name")
			if err != nil {
				return nil, err
			}
			return c.GetTrailStatus(ctx, &cloudtrail.GetTrailStatusInput{Name: awssdk.String(name)})
		}),
	}
}
