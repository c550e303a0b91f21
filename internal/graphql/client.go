package graphql

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sl1tools/sl1probe/internal/logging"
)

type IGraphQlClient interface {
	Execute(
		ctx context.Context,
		request *Request,
	) (
		*Result,
		error,
	)
}

// GraphQlClient issues single-shot GraphQL requests against one endpoint
// with HTTP basic authentication. It holds no per-request state; every call
// to Execute is independent and no retry is ever attempted.
type GraphQlClient struct {
	HttpClient *http.Client
	logger     logging.ILogger
	endpoint   string
	username   string
	password   string
}

func NewGraphQlClient(
	logger logging.ILogger,
	endpoint string,
	username string,
	password string,
	insecureSkipVerify bool,
	timeout time.Duration,
) *GraphQlClient {

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecureSkipVerify {
		// SL1 lab instances use self-signed certificates
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &GraphQlClient{
		HttpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		logger:   logger,
		endpoint: endpoint,
		username: username,
		password: password,
	}
}

// Execute posts the request and classifies the outcome. A transport fault
// (DNS, connection refused, timeout, TLS handshake) is returned as the
// error with a nil result. Any body that parses as a GraphQL response is
// returned as a result, carrying whichever of data and errors the server
// populated.
func (c *GraphQlClient) Execute(
	ctx context.Context,
	request *Request,
) (
	*Result,
	error,
) {

	c.logger.LogWithFields(logrus.DebugLevel, GRAPHQL_EXECUTING_REQUEST,
		map[string]string{
			"endpoint": c.endpoint,
		})

	payload, err := c.createPayload(request)
	if err != nil {
		c.logger.Log(logrus.ErrorLevel, GRAPHQL_CREATING_PAYLOAD_HAS_FAILED)
		return nil, fmt.Errorf("%s: %w", GRAPHQL_CREATING_PAYLOAD_HAS_FAILED, err)
	}

	// Create request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, payload)
	if err != nil {
		c.logger.Log(logrus.ErrorLevel, GRAPHQL_CREATING_HTTP_REQUEST_HAS_FAILED)
		return nil, fmt.Errorf("%s: %w", GRAPHQL_CREATING_HTTP_REQUEST_HAS_FAILED, err)
	}

	// Add headers
	req.Header.Add("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.password)

	// Perform HTTP request
	res, err := c.HttpClient.Do(req)
	if err != nil {
		c.logger.Log(logrus.ErrorLevel, GRAPHQL_PERFORMING_HTTP_REQUEST_HAS_FAILED)
		return nil, fmt.Errorf("%s: %w", GRAPHQL_PERFORMING_HTTP_REQUEST_HAS_FAILED, err)
	}
	defer res.Body.Close()

	// Read HTTP response
	body, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.Log(logrus.ErrorLevel, GRAPHQL_READING_HTTP_RESPONSE_BODY_HAS_FAILED)
		return nil, fmt.Errorf("%s: %w", GRAPHQL_READING_HTTP_RESPONSE_BODY_HAS_FAILED, err)
	}

	// A GraphQL body can come back with a non-200 status as well; a parse
	// failure is only reported as such when the status gave no better hint.
	result := &Result{}
	if err := json.Unmarshal(body, result); err != nil {
		c.logger.LogWithFields(logrus.ErrorLevel, GRAPHQL_PARSING_HTTP_RESPONSE_BODY_HAS_FAILED,
			map[string]string{
				"statusCode": strconv.Itoa(res.StatusCode),
			})
		if res.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("graphql request returned status %d", res.StatusCode)
		}
		return nil, fmt.Errorf("%s: %w", GRAPHQL_PARSING_HTTP_RESPONSE_BODY_HAS_FAILED, err)
	}

	if result.HasErrors() {
		c.logger.LogWithFields(logrus.DebugLevel, GRAPHQL_RESPONSE_HAS_RETURNED_ERRORS,
			map[string]string{
				"numErrors": strconv.Itoa(len(result.Errors)),
			})
	}

	return result, nil
}

func (c *GraphQlClient) createPayload(
	request *Request,
) (
	*bytes.Buffer,
	error,
) {

	// Create JSON data
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}
	return bytes.NewBuffer(payload), nil
}
