package elm

import (
	"fmt"

	"github.com/expipiplus1/servant-elm/ir"
)

// responseStrategy is the decoding path chosen for an endpoint's response.
type responseStrategy int

const (
	// strategyInvalid marks a descriptor with no response type. This is a
	// construction-time error, never a recoverable generation case.
	strategyInvalid responseStrategy = iota

	// strategyDecodable decodes the response body with the type's JSON
	// decoder.
	strategyDecodable

	// strategyEmptyResponse expects an empty body and succeeds with the
	// type's placeholder value, requiring the three shared helpers.
	strategyEmptyResponse
)

// selectStrategy decides the response path once per descriptor. The
// empty-response test is by tag value equality, so two declarations
// resolving to the same tag both count.
func (e *Emitter) selectStrategy(ep *ir.EndpointDescriptor) responseStrategy {
	if ep.Response == nil {
		return strategyInvalid
	}
	if e.empty[ep.Response] {
		return strategyEmptyResponse
	}
	return strategyDecodable
}

// buildResponseLines renders the call expression that sends the request and
// produces the endpoint's Task, plus any shared helper definitions the
// expression depends on.
func (e *Emitter) buildResponseLines(ep *ir.EndpointDescriptor) (string, []string, error) {
	switch e.selectStrategy(ep) {
	case strategyDecodable:
		decoder := e.resolver.Resolve(ep.Response).Decoder
		lines := "    Http.fromJson " + decoder + "\n" +
			"      (Http.send Http.defaultSettings request)"
		return lines, nil, nil

	case strategyEmptyResponse:
		placeholder := e.resolver.Resolve(ep.Response).TypeName
		lines := "    Http.send Http.defaultSettings request\n" +
			"      |> Task.mapError promoteError\n" +
			"      |> Task.andThen\n" +
			"          (handleResponse (emptyResponseHandler " + placeholder + "))"
		helpers := []string{
			emptyResponseHandlerHelper,
			handleResponseHelper,
			promoteErrorHelper,
		}
		return lines, helpers, nil

	default:
		return "", nil, fmt.Errorf("endpoint %s: missing response type", ep.FunctionName)
	}
}

// The three shared helper definitions. Their text is byte-stable so the
// module generator can deduplicate them by exact equality.

const emptyResponseHandlerHelper = `emptyResponseHandler : a -> String -> Task.Task Http.Error a
emptyResponseHandler x str =
  if String.isEmpty str then
    Task.succeed x
  else
    Task.fail (Http.UnexpectedPayload str)`

const handleResponseHelper = `handleResponse : (String -> Task.Task Http.Error a) -> Http.Response -> Task.Task Http.Error a
handleResponse handle response =
  if 200 <= response.status && response.status < 300 then
    case response.value of
      Http.Text str ->
        handle str

      _ ->
        Task.fail (Http.UnexpectedPayload "Response body is a blob, expecting a string.")
  else
    Task.fail (Http.BadResponse response.status response.statusText)`

const promoteErrorHelper = `promoteError : Http.RawError -> Http.Error
promoteError rawError =
  case rawError of
    Http.RawTimeout ->
      Http.Timeout

    Http.RawNetworkError ->
      Http.NetworkError`
