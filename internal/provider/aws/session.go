// Package aws implements the provider session and regional client
// collaborators over the AWS SDK. Operations are dispatched through static
// per-service tables, never run-time reflection.
package aws

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/privsweep/privsweep/internal/scan"
)

// signingRegion backs requests to zone-independent endpoints.
const signingRegion = "us-east-1"

// Options configures a session. Timeout and Retries apply to every client
// the session constructs; probes themselves never retry.
type Options struct {
	Profile string
	Timeout time.Duration
	Retries int
	Verbose bool
	Logger  *slog.Logger
}

// Session wraps a resolved AWS credential chain and hands out regional
// clients. One session serves an entire run.
type Session struct {
	cfg awssdk.Config
	sts *sts.Client
}

// NewSession loads the credential chain (shared profile or environment) and
// prepares the base config every regional client is copied from.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 3 * time.Second
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(signingRegion),
		config.WithRetryMaxAttempts(opts.Retries + 1),
		config.WithHTTPClient(awshttp.NewBuildableClient().WithDialerOptions(func(d *net.Dialer) {
			d.Timeout = opts.Timeout
		})),
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}

	// Local endpoint override, used for mocking and the localstack
	// integration test.
	if endpoint := os.Getenv("AWS_ENDPOINT_URL"); endpoint != "" {
		loadOpts = append(loadOpts, config.WithBaseEndpoint(endpoint))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	// Identify the tool in every request.
	cfg.APIOptions = append(cfg.APIOptions, func(stack *middleware.Stack) error {
		return stack.Build.Add(middleware.BuildMiddlewareFunc("PrivsweepUserAgent", func(ctx context.Context, input middleware.BuildInput, next middleware.BuildHandler) (
			middleware.BuildOutput, middleware.Metadata, error,
		) {
			if req, ok := input.Request.(*smithyhttp.Request); ok {
				ua := req.Header.Get("User-Agent")
				if ua == "" {
					ua = "privsweep"
				}
				req.Header.Set("User-Agent", fmt.Sprintf("%s (permission-probe)", ua))
			}
			return next.HandleBuild(ctx, input)
		}), middleware.After)
	})

	if opts.Verbose {
		log := opts.Logger
		if log == nil {
			log = slog.Default()
		}
		cfg.APIOptions = append(cfg.APIOptions, func(stack *middleware.Stack) error {
			return stack.Initialize.Add(middleware.InitializeMiddlewareFunc("CallLogger", func(ctx context.Context, input middleware.InitializeInput, next middleware.InitializeHandler) (
				middleware.InitializeOutput, middleware.Metadata, error,
			) {
				log.Debug("API call",
					"service", awsmiddleware.GetServiceID(ctx),
					"operation", awsmiddleware.GetOperationName(ctx),
				)
				return next.HandleInitialize(ctx, input)
			}), middleware.Before)
		})
	}

	return &Session{
		cfg: cfg,
		sts: sts.NewFromConfig(cfg),
	}, nil
}

// VerifyIdentity validates the credentials before any scanning starts and
// returns the caller ARN. A failure here is fatal to the whole run.
func (s *Session) VerifyIdentity(ctx context.Context) (string, error) {
	out, err := s.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed to get caller identity: %w", err)
	}
	return awssdk.ToString(out.Arn), nil
}

// AvailableServices lists every service the session can scan, sorted.
func (s *Session) AvailableServices() []string {
	return SupportedServices()
}

// AvailableRegions returns the partition regions a service deploys in, or
// nil for zone-independent services (which collapse to the global
// pseudo-region during resolution).
func (s *Session) AvailableRegions(service string) []string {
	def, ok := serviceRegistry[service]
	if !ok || def.global {
		return nil
	}
	regions := make([]string, len(partitionRegions))
	copy(regions, partitionRegions)
	return regions
}

// NewClient binds a service's operation table to one region. The global
// pseudo-region signs against us-east-1 but keeps its own identity in
// results.
func (s *Session) NewClient(ctx context.Context, service, region string) (scan.RegionalClient, error) {
	def, ok := serviceRegistry[service]
	if !ok {
		return nil, fmt.Errorf("unknown service %q", service)
	}

	cfg := s.cfg.Copy()
	if region == scan.GlobalRegion {
		cfg.Region = signingRegion
	} else {
		cfg.Region = region
	}

	return &Client{
		service: service,
		region:  region,
		ops:     def.build(cfg),
	}, nil
}
