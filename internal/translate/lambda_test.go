package translate

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvoker struct {
	input  *lambda.InvokeInput
	output *lambda.InvokeOutput
	err    error
}

func (f *fakeInvoker) Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	f.input = params
	return f.output, f.err
}

func payload(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestLambdaClient_Translate(t *testing.T) {
	invoker := &fakeInvoker{
		output: &lambda.InvokeOutput{Payload: payload(t, lambdaResponse{Translations: []string{"ciao"}})},
	}
	client := newLambdaClient(invoker, "my-translator", newTestLogger())

	text, err := client.Translate(context.Background(), "hello", "auto", "it")
	require.NoError(t, err)
	assert.Equal(t, "ciao", text)

	require.NotNil(t, invoker.input)
	assert.Equal(t, "my-translator", aws.ToString(invoker.input.FunctionName))

	var sent lambdaRequest
	require.NoError(t, json.Unmarshal(invoker.input.Payload, &sent))
	assert.Equal(t, lambdaRequest{Texts: []string{"hello"}, SourceLang: "auto", TargetLang: "it"}, sent)
}

func TestLambdaClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		invoker *fakeInvoker
		errMsg  string
	}{
		{
			name:    "invoke failure",
			invoker: &fakeInvoker{err: errors.New("AccessDenied")},
			errMsg:  "failed to invoke translation-manager: AccessDenied",
		},
		{
			name:    "function error",
			invoker: &fakeInvoker{output: &lambda.InvokeOutput{FunctionError: aws.String("Unhandled")}},
			errMsg:  "lambda error: Unhandled",
		},
		{
			name:    "error field",
			invoker: &fakeInvoker{output: &lambda.InvokeOutput{Payload: []byte(`{"error":"unsupported language pair"}`)}},
			errMsg:  "unsupported language pair",
		},
		{
			name:    "empty translations",
			invoker: &fakeInvoker{output: &lambda.InvokeOutput{Payload: []byte(`{}`)}},
			errMsg:  "no translations",
		},
		{
			name:    "bad payload",
			invoker: &fakeInvoker{output: &lambda.InvokeOutput{Payload: []byte(`nope`)}},
			errMsg:  "failed to parse response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newLambdaClient(tt.invoker, "", newTestLogger())
			_, err := client.Translate(context.Background(), "hello", "auto", "fr")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLambdaClient_Name(t *testing.T) {
	client := newLambdaClient(&fakeInvoker{}, "", nil)
	assert.Equal(t, "AWS Lambda (translation-manager)", client.Name())
}
