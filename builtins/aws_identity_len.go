package builtins

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// awsIdentityLenPrimitive backs `aws_identity_len()`: calls STS
// GetCallerIdentity using the ambient AWS credential chain and returns
// the length of the caller's ARN. It is registered in Table like any
// other primitive but requires live AWS credentials to succeed, so no
// test in this module invokes it.
var awsIdentityLenPrimitive = Primitive{
	Name:  "aws_identity_len",
	Arity: 0,
	Call: func(args []int64) (int64, error) {
		ctx := context.Background()
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return 0, errFault("aws_identity_len: load config: %v", err)
		}
		client := sts.NewFromConfig(cfg)
		out, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
		if err != nil {
			return 0, errFault("aws_identity_len: get caller identity: %v", err)
		}
		if out.Arn == nil {
			return 0, nil
		}
		return int64(len(*out.Arn)), nil
	},
}
