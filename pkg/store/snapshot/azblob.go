package snapshot

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/rs/zerolog"

	"github.com/benefique/cfo-times/pkg/models/domain"
)

const SchemeAzblob = "azblob"

// BlobOpener opens a blob for reading.
type BlobOpener interface {
	OpenBlob(ctx context.Context, container, blob string) (io.ReadCloser, error)
}

type azblobClient struct {
	client *azblob.Client
}

// NewAzblobClient connects to a storage account with the default Azure
// credential chain (environment, managed identity, Azure CLI).
func NewAzblobClient(account string) (BlobOpener, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}
	return newAzblobClient(account, cred)
}

func newAzblobClient(account string, cred azcore.TokenCredential) (BlobOpener, error) {
	serviceURL := fmt.Sprintf("https://%s.blob.core.windows.net/", account)
	client, err := azblob.NewClient(serviceURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client for %s: %w", account, err)
	}
	return &azblobClient{client: client}, nil
}

func (c *azblobClient) OpenBlob(ctx context.Context, container, blob string) (io.ReadCloser, error) {
	resp, err := c.client.DownloadStream(ctx, container, blob, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

type azblobSource struct {
	client    BlobOpener
	account   string
	container string
	blob      string
}

func NewAzblobSource(client BlobOpener, account, container, blob string) Source {
	return &azblobSource{client: client, account: account, container: container, blob: blob}
}

func (a *azblobSource) URI() string {
	return fmt.Sprintf("%s://%s/%s/%s", SchemeAzblob, a.account, a.container, a.blob)
}

func (a *azblobSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	zerolog.Ctx(ctx).Debug().Str("container", a.container).Str("blob", a.blob).Msg("downloading snapshot blob")

	body, err := a.client.OpenBlob(ctx, a.container, a.blob)
	if err != nil {
		return nil, fmt.Errorf("failed to download blob %s: %w", a.URI(), err)
	}
	defer body.Close()

	return decodeRemote(a.URI(), body)
}
