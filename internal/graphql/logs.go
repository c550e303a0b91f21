package graphql

const (
	GRAPHQL_EXECUTING_REQUEST                     = "executing request"
	GRAPHQL_CREATING_PAYLOAD_HAS_FAILED           = "creating payload has failed"
	GRAPHQL_CREATING_HTTP_REQUEST_HAS_FAILED      = "creating http request has failed"
	GRAPHQL_PERFORMING_HTTP_REQUEST_HAS_FAILED    = "performing http request has failed"
	GRAPHQL_READING_HTTP_RESPONSE_BODY_HAS_FAILED = "reading response body has failed"
	GRAPHQL_PARSING_HTTP_RESPONSE_BODY_HAS_FAILED = "parsing response body has failed"
	GRAPHQL_RESPONSE_HAS_RETURNED_ERRORS          = "response has returned graphql errors"
	GRAPHQL_RESPONSE_HAS_NO_DATA                  = "response has no data"
)
