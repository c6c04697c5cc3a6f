//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/burrow/astar"
	"github.com/katalvlaran/burrow/parse"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// maxExpansions bounds a single request so one pathological input cannot
// hold the function until its timeout.
const maxExpansions = 5_000_000

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	start, err := parse.JSON([]byte(body))
	if err != nil {
		return errResp(400, err.Error())
	}

	s := settings{
		Path:   gjson.Get(body, "path").Bool(),
		Direct: true,
		Limit:  maxExpansions,
	}
	if v := gjson.Get(body, "direct"); v.Exists() {
		s.Direct = v.Bool()
	}

	began := time.Now()
	rep, _, err := solve(ctx, start, s)
	if errors.Is(err, astar.ErrExpansionLimit) || errors.Is(err, context.DeadlineExceeded) {
		return errResp(422, err.Error())
	}
	if err != nil {
		return errResp(500, err.Error())
	}
	rep.RunID = uuid.NewString()
	rep.TimeMs = time.Since(began).Milliseconds()

	respJSON, _ := json.Marshal(rep)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
