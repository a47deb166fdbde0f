package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/sirupsen/logrus"
)

// DefaultLambdaFunction is the translation manager function name
const DefaultLambdaFunction = "translation-manager"

// lambdaInvoker is the subset of *lambda.Client used by LambdaClient.
type lambdaInvoker interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// lambdaRequest is the translation manager input.
type lambdaRequest struct {
	Texts      []string `json:"texts"`
	SourceLang string   `json:"sourceLang"`
	TargetLang string   `json:"targetLang"`
}

// lambdaResponse is the translation manager output.
type lambdaResponse struct {
	Translations []string `json:"translations,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// LambdaClient implements Translator by invoking an AWS Lambda translation
// manager.
type LambdaClient struct {
	invoker      lambdaInvoker
	functionName string
	logger       *logrus.Logger
}

// NewLambdaClient loads the default AWS configuration (environment, shared
// config and credentials files) and creates a client for functionName.
func NewLambdaClient(ctx context.Context, functionName string, logger *logrus.Logger) (*LambdaClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return newLambdaClient(lambda.NewFromConfig(cfg), functionName, logger), nil
}

func newLambdaClient(invoker lambdaInvoker, functionName string, logger *logrus.Logger) *LambdaClient {
	if functionName == "" {
		functionName = DefaultLambdaFunction
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &LambdaClient{
		invoker:      invoker,
		functionName: functionName,
		logger:       logger,
	}
}

// Name returns the engine name
func (c *LambdaClient) Name() string {
	return "AWS Lambda (" + c.functionName + ")"
}

// Translate invokes the function with a single text
func (c *LambdaClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	payload, err := json.Marshal(lambdaRequest{
		Texts:      []string{text},
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"function":    c.functionName,
		"source_lang": sourceLang,
		"target_lang": targetLang,
	}).Debug("Invoking translation Lambda")

	result, err := c.invoker.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(c.functionName),
		Payload:      payload,
	})
	if err != nil {
		return "", fmt.Errorf("failed to invoke %s: %w", c.functionName, err)
	}

	if result.FunctionError != nil {
		return "", fmt.Errorf("lambda error: %s", *result.FunctionError)
	}

	var resp lambdaResponse
	if err := json.Unmarshal(result.Payload, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Error != "" {
		return "", errors.New(resp.Error)
	}
	if len(resp.Translations) == 0 {
		return "", errors.New("lambda returned no translations")
	}

	return resp.Translations[0], nil
}
