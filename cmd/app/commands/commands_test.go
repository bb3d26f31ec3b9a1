package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
	realtorMocks "github.com/allisson/leadlink/internal/realtor/http/mocks"
	realtorUseCase "github.com/allisson/leadlink/internal/realtor/usecase"
	sharelinkDomain "github.com/allisson/leadlink/internal/sharelink/domain"
	sharelinkMocks "github.com/allisson/leadlink/internal/sharelink/http/mocks"
)

const (
	testToken   = "rlt_42-1737626400123-3f2a7c1e-8b4d-4a8e-9f1a-2b3c4d5e6f70"
	testBaseURL = "https://app.example.com"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testShareLink() *sharelinkDomain.ShareLink {
	return &sharelinkDomain.ShareLink{
		Record: &sharelinkDomain.TokenRecord{
			Token:     testToken,
			CreatedAt: time.UnixMilli(1737626400123).UTC(),
			Active:    true,
			Metadata: sharelinkDomain.Metadata{
				RealtorID:   "rlt_42",
				RealtorName: "Jane Doe",
				CreatedBy:   "rlt_42",
			},
		},
		URL:        testBaseURL + "/public-lead-capture-form?token=" + testToken,
		PreviewURL: testBaseURL + "/public-lead-capture-form?token=" + testToken + "&preview=true",
	}
}

func TestRunCreateRealtor(t *testing.T) {
	ctx := context.Background()
	input := realtorUseCase.CreateRealtorInput{Name: "Jane Doe", Email: "jane@example.com"}
	realtor := &realtorDomain.Realtor{ID: "rlt_42", Name: "Jane Doe", Email: "jane@example.com"}

	t.Run("text", func(t *testing.T) {
		useCase := realtorMocks.NewMockRealtorUseCase(t)
		useCase.On("Create", ctx, input).Return(realtor, nil).Once()

		var out bytes.Buffer
		err := RunCreateRealtor(ctx, useCase, testLogger(), input, FormatText, &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Realtor ID: rlt_42")
	})

	t.Run("json", func(t *testing.T) {
		useCase := realtorMocks.NewMockRealtorUseCase(t)
		useCase.On("Create", ctx, input).Return(realtor, nil).Once()

		var out bytes.Buffer
		err := RunCreateRealtor(ctx, useCase, testLogger(), input, FormatJSON, &out)
		require.NoError(t, err)

		var result map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, "rlt_42", result["realtor_id"])
	})

	t.Run("use-case-error", func(t *testing.T) {
		useCase := realtorMocks.NewMockRealtorUseCase(t)
		useCase.On("Create", ctx, input).Return(nil, realtorDomain.ErrRealtorAlreadyExists).Once()

		err := RunCreateRealtor(ctx, useCase, testLogger(), input, FormatText, io.Discard)

		assert.ErrorIs(t, err, realtorDomain.ErrRealtorAlreadyExists)
	})

	t.Run("invalid-format", func(t *testing.T) {
		useCase := realtorMocks.NewMockRealtorUseCase(t)

		err := RunCreateRealtor(ctx, useCase, testLogger(), input, "xml", io.Discard)

		assert.ErrorContains(t, err, "invalid format")
	})
}

func TestRunShareLink(t *testing.T) {
	ctx := context.Background()

	t.Run("get-or-create-text", func(t *testing.T) {
		useCase := sharelinkMocks.NewMockShareLinkUseCase(t)
		useCase.On("GetOrCreate", ctx, "rlt_42").Return(testShareLink(), nil).Once()

		var out bytes.Buffer
		err := RunShareLink(ctx, useCase, testLogger(), "rlt_42", FormatText, &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Token: "+testToken)
		assert.Contains(t, out.String(), "Created At: 2025-01-23T10:00:00.123Z")
	})

	t.Run("regenerate-json", func(t *testing.T) {
		useCase := sharelinkMocks.NewMockShareLinkUseCase(t)
		useCase.On("Regenerate", ctx, "rlt_42").Return(testShareLink(), nil).Once()

		var out bytes.Buffer
		err := RunRegenerateShareLink(ctx, useCase, testLogger(), "rlt_42", FormatJSON, &out)
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, testToken, result["token"])
		assert.Equal(t, true, result["active"])
		assert.Contains(t, result["preview_url"], "&preview=true")
	})

	t.Run("realtor-not-found", func(t *testing.T) {
		useCase := sharelinkMocks.NewMockShareLinkUseCase(t)
		useCase.On("GetOrCreate", mock.Anything, "rlt_missing").Return(nil, realtorDomain.ErrRealtorNotFound).Once()

		err := RunShareLink(ctx, useCase, testLogger(), "rlt_missing", FormatText, io.Discard)

		assert.ErrorIs(t, err, realtorDomain.ErrRealtorNotFound)
	})
}

func TestInspectToken(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		inspection := InspectToken(testToken, testBaseURL)

		assert.True(t, inspection.Valid)
		assert.Equal(t, "rlt_42", inspection.RealtorID)
		assert.Equal(t, "2025-01-23T10:00:00.123Z", inspection.IssuedAt)
		assert.Equal(t, testBaseURL+"/public-lead-capture-form?token="+testToken, inspection.URL)
	})

	t.Run("non-numeric-timestamp", func(t *testing.T) {
		inspection := InspectToken("rlt_42-abc-def", testBaseURL)

		assert.True(t, inspection.Valid)
		assert.Empty(t, inspection.IssuedAt)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, token := range []string{"", "rlt_42", "rlt_42-", "rlt_42--abc", "a-b"} {
			inspection := InspectToken(token, testBaseURL)
			assert.False(t, inspection.Valid, token)
			assert.Empty(t, inspection.URL, token)
		}
	})
}

func TestRunInspectToken_YAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunInspectToken(testToken, testBaseURL, FormatYAML, &out))

	var result TokenInspection
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &result))
	assert.True(t, result.Valid)
	assert.Equal(t, "2025-01-23T10:00:00.123Z", result.IssuedAt)
}

func TestRunInspectToken(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunInspectToken("garbage", testBaseURL, FormatText, &out))
	assert.Contains(t, out.String(), "is not a valid share token")

	out.Reset()
	require.NoError(t, RunInspectToken(testToken, testBaseURL, FormatJSON, &out))

	var result TokenInspection
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.True(t, result.Valid)
	assert.Equal(t, "rlt_42", result.RealtorID)
}

type stubWorker struct {
	err error
}

func (w *stubWorker) Start(ctx context.Context) error {
	<-ctx.Done()
	if w.err != nil {
		return w.err
	}
	return ctx.Err()
}

func (w *stubWorker) ProcessEvents(ctx context.Context) error {
	return nil
}

func TestRunWorker(t *testing.T) {
	t.Run("canceled-is-clean-stop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.NoError(t, runWorker(ctx, &stubWorker{}, testLogger()))
	})

	t.Run("failure-is-reported", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := runWorker(ctx, &stubWorker{err: errors.New("boom")}, testLogger())
		assert.ErrorContains(t, err, "outbox worker stopped")
	})
}
