// Package cloudclient invokes the solver's Lambda handler (cmd/mcgs-lambda)
// remotely, for the batch CLI's --cloud flag: instead of solving a case
// file in-process, ship its text to the configured function and decode
// the JSON response it returns.
package cloudclient

import (
	"context"
	"encoding/json"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// Request mirrors cmd/mcgs-lambda's Request payload.
type Request struct {
	CaseFile   string `json:"caseFile"`
	TimeoutSec int    `json:"timeoutSec"`
}

// CaseResult mirrors cmd/mcgs-lambda's CaseResult response entry.
type CaseResult struct {
	Case      string  `json:"case"`
	Games     int     `json:"games"`
	Player    string  `json:"player"`
	Expected  string  `json:"expected"`
	Actual    string  `json:"actual"`
	Status    string  `json:"status"`
	TimeMS    float64 `json:"timeMs"`
	NodeCount uint64  `json:"nodeCount"`
	Comments  string  `json:"comments,omitempty"`
}

// Response mirrors cmd/mcgs-lambda's Response.
type Response struct {
	Results []CaseResult `json:"results"`
}

// Client invokes a deployed solver Lambda function.
type Client struct {
	lambda       *lambda.Client
	functionName string
}

// New loads the default AWS SDK config (environment, shared config file,
// or an attached role, in that order) and returns a Client bound to
// functionName.
func New(ctx context.Context, functionName string) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("cloudclient: loading AWS config: %w", err)
	}
	return &Client{lambda: lambda.NewFromConfig(cfg), functionName: functionName}, nil
}

// Solve ships caseFileText to the function and returns its decoded reply.
func (c *Client) Solve(ctx context.Context, caseFileText string, timeoutSec int) (Response, error) {
	payload, err := json.Marshal(Request{CaseFile: caseFileText, TimeoutSec: timeoutSec})
	if err != nil {
		return Response{}, err
	}
	out, err := c.lambda.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: &c.functionName,
		Payload:      payload,
	})
	if err != nil {
		return Response{}, fmt.Errorf("cloudclient: invoking %s: %w", c.functionName, err)
	}
	if out.FunctionError != nil {
		return Response{}, fmt.Errorf("cloudclient: %s returned an error: %s", c.functionName, *out.FunctionError)
	}
	var resp Response
	if err := json.Unmarshal(out.Payload, &resp); err != nil {
		return Response{}, fmt.Errorf("cloudclient: decoding response: %w", err)
	}
	return resp, nil
}
