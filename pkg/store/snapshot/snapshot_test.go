package snapshot

import (
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/benefique/cfo-times/pkg/models/domain"
	"github.com/benefique/cfo-times/pkg/models/domain/domaintest"
)

func titanYAML(t *testing.T) string {
	t.Helper()
	data, err := builtinFS.ReadFile("builtin/titan.yaml")
	require.NoError(t, err)
	return string(data)
}

func problemFields(t *testing.T, err error) []string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	fields := make([]string, 0, len(verr.Problems))
	for _, p := range verr.Problems {
		fields = append(fields, p.Field)
	}
	return fields
}

func TestBuiltin_MatchesFixture(t *testing.T) {
	src, err := NewBuiltinSource("titan")
	require.NoError(t, err)
	assert.Equal(t, "builtin:titan", src.URI())

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domaintest.MustTitan(), got)
}

func TestBuiltin_Unknown(t *testing.T) {
	_, err := NewBuiltinSource("acme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "titan")
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"config": {"client_name": "Acme"}}`
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidSnapshot))
	assert.Contains(t, problemFields(t, err), "summary")
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestDecode_UnknownKey(t *testing.T) {
	doc := strings.Replace(titanYAML(t), "  cash_runway: 50", "  cash_runway: 50\n  cash_runaway: 50", 1)
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cash_runaway")
}

func TestDecode_MissingValuesAreReported(t *testing.T) {
	doc := titanYAML(t)
	doc = strings.Replace(doc, "  current: 193031\n", "", 1)
	doc = strings.Replace(doc, "    dscr: 1.42\n", "", 1)
	doc = strings.Replace(doc, "  current_day: 24\n", "  current_day: 40\n", 1)

	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)

	fields := problemFields(t, err)
	assert.Contains(t, fields, "cash.current")
	assert.Contains(t, fields, "entities[1].dscr")
	assert.Contains(t, fields, "config.current_day")
}

func TestDecode_BadDate(t *testing.T) {
	doc := strings.Replace(titanYAML(t), "report_date: January 24, 2026", "report_date: 24/01/2026", 1)
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, problemFields(t, err), "config.report_date")
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(titanYAML(t)), 0o644))

	got, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Titan Group", got.Config.ClientName)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.yaml")).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type mockObjectGetter struct {
	mock.Mock
}

func (m *mockObjectGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, *params.Bucket, *params.Key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func TestS3Source(t *testing.T) {
	client := new(mockObjectGetter)
	client.On("GetObject", mock.Anything, "reports", "titan/2026-01.yaml").Return(
		&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(titanYAML(t)))}, nil,
	)
	client.On("GetObject", mock.Anything, "reports", "missing.yaml").Return(nil, errors.New("NoSuchKey"))

	src := NewS3Source(client, "reports", "titan/2026-01.yaml")
	assert.Equal(t, "s3://reports/titan/2026-01.yaml", src.URI())

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.93, got.Consolidated.DSCR)

	_, err = NewS3Source(client, "reports", "missing.yaml").Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchKey")

	client.AssertExpectations(t)
}

type mockBlobOpener struct {
	mock.Mock
}

func (m *mockBlobOpener) OpenBlob(ctx context.Context, container, blob string) (io.ReadCloser, error) {
	args := m.Called(ctx, container, blob)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func TestAzblobSource(t *testing.T) {
	client := new(mockBlobOpener)
	client.On("OpenBlob", mock.Anything, "snapshots", "titan.yaml").
		Return(io.NopCloser(strings.NewReader(titanYAML(t))), nil)

	src := NewAzblobSource(client, "benefique", "snapshots", "titan.yaml")
	assert.Equal(t, "azblob://benefique/snapshots/titan.yaml", src.URI())

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.ActionItems, 3)
	client.AssertExpectations(t)
}

func TestRegistry_Open(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"azblob", "builtin", "file", "s3"}, r.ListSchemes())

	src, err := r.Open(context.Background(), "builtin:titan", Options{})
	require.NoError(t, err)
	assert.Equal(t, "builtin:titan", src.URI())

	src, err = r.Open(context.Background(), "./snapshots/titan.yaml", Options{})
	require.NoError(t, err)
	assert.Equal(t, "file://./snapshots/titan.yaml", src.URI())

	src, err = r.Open(context.Background(), "file:///srv/titan.yaml", Options{})
	require.NoError(t, err)
	assert.Equal(t, "file:///srv/titan.yaml", src.URI())

	_, err = r.Open(context.Background(), "ftp://host/titan.yaml", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ftp" is not registered`)

	_, err = r.Open(context.Background(), "s3://bucket-only", Options{})
	require.Error(t, err)

	_, err = r.Open(context.Background(), "azblob://account/container", Options{})
	require.Error(t, err)

	_, err = r.Open(context.Background(), " ", Options{})
	require.Error(t, err)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	factory := func(context.Context, *url.URL, Options) (Source, error) { return NewFileSource("x"), nil }

	require.NoError(t, r.Register("mem", factory))
	assert.Error(t, r.Register("mem", factory))
	assert.Error(t, r.Register("", factory))
	assert.Error(t, r.Register("nil", nil))

	src, err := r.Open(context.Background(), "mem:anything", Options{})
	require.NoError(t, err)
	assert.Equal(t, "file://x", src.URI())
}
