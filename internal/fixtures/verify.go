package fixtures

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"monzo-webhooks-go/internal/common"
	"monzo-webhooks-go/pkg/monzo"

	"go.uber.org/zap"
)

// Result is the outcome of checking one payload.
type Result struct {
	Name   string
	Kind   string
	Passed bool
	Detail string
}

type Verifier struct {
	logger *zap.Logger
}

func NewVerifier(logger *zap.Logger) *Verifier {
	return &Verifier{logger: logger}
}

// VerifyExamples checks every built-in example payload.
func (v *Verifier) VerifyExamples() []Result {
	examples := monzo.Examples()
	results := make([]Result, 0, len(examples))
	for _, example := range examples {
		results = append(results, v.Verify(example.Name, example.Kind, []byte(example.Payload), ""))
	}
	return results
}

// VerifyFixtures checks every payload file listed in a manifest.
func (v *Verifier) VerifyFixtures(fixtures []Fixture) []Result {
	results := make([]Result, 0, len(fixtures))
	for _, fixture := range fixtures {
		payload, err := os.ReadFile(fixture.File)
		if err != nil {
			v.logger.Error("Failed to read fixture",
				zap.String("fixture", fixture.Name),
				zap.String("file", fixture.File),
				zap.Error(err))
			results = append(results, Result{
				Name:   fixture.Name,
				Kind:   fixture.Kind,
				Detail: fmt.Sprintf("unreadable: %v", err),
			})
			continue
		}
		results = append(results, v.Verify(fixture.Name, fixture.Kind, payload, fixture.ExpectError))
	}
	return results
}

// Verify decodes payload as kind. When expectError is empty the payload must
// decode, and encoding it, decoding that and encoding again must give the
// same bytes. Otherwise decoding must fail for the named reason.
func (v *Verifier) Verify(name, kind string, payload []byte, expectError string) Result {
	result := Result{Name: name, Kind: kind}
	logger := v.logger.With(zap.String("fixture", name), zap.String("kind", kind))

	decoded, err := common.DecodeKind(kind, payload)
	if expectError != "" {
		return v.checkRejected(logger, result, err, expectError)
	}
	if err != nil {
		logger.Warn("Payload failed to decode", zap.Error(err))
		result.Detail = err.Error()
		return result
	}

	first, err := common.EncodeKind(kind, decoded)
	if err != nil {
		result.Detail = fmt.Sprintf("encode: %v", err)
		return result
	}

	redecoded, err := common.DecodeKind(kind, first)
	if err != nil {
		logger.Warn("Encoded payload failed to decode", zap.Error(err), zap.ByteString("encoded", first))
		result.Detail = fmt.Sprintf("decode of encoded payload: %v", err)
		return result
	}

	second, err := common.EncodeKind(kind, redecoded)
	if err != nil {
		result.Detail = fmt.Sprintf("re-encode: %v", err)
		return result
	}

	if !bytes.Equal(first, second) {
		logger.Warn("Re-encoded payload differs",
			zap.ByteString("first", first),
			zap.ByteString("second", second))
		result.Detail = "re-encoded payload differs"
		return result
	}

	logger.Debug("Payload round-tripped", zap.Int("encoded_bytes", len(first)))
	result.Passed = true
	result.Detail = "round trip ok"
	return result
}

func (v *Verifier) checkRejected(logger *zap.Logger, result Result, err error, expectError string) Result {
	want := reasons[expectError]
	switch {
	case err == nil:
		result.Detail = fmt.Sprintf("decoded, expected %s", expectError)
	case want == nil:
		result.Detail = fmt.Sprintf("unknown expected error %q", expectError)
	case !errors.Is(err, want):
		result.Detail = fmt.Sprintf("expected %s, got: %v", expectError, err)
	default:
		result.Passed = true
		result.Detail = fmt.Sprintf("rejected: %v", err)
	}

	if !result.Passed {
		logger.Warn("Payload was not rejected as expected",
			zap.String("expect_error", expectError),
			zap.Error(err))
	}
	return result
}

// Failed counts results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
