package docai

import (
	"context"
	"fmt"
	"os"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"github.com/uhk16/layout-parser-processor/internal/config"
)

// Layout chunking parameters sent with every request.
const (
	chunkSize               = 1000
	includeAncestorHeadings = true
)

// processClient is the slice of the Document AI SDK the client uses.
// Tests substitute a fake.
type processClient interface {
	ProcessDocument(ctx context.Context, req *documentaipb.ProcessRequest, opts ...gax.CallOption) (*documentaipb.ProcessResponse, error)
	Close() error
}

// Client sends documents to a single Document AI processor version.
type Client struct {
	api  processClient
	name string
}

// NewClient connects to the regional endpoint for cfg.Location and binds
// the processor-version resource name. The credentials file is passed
// explicitly; nothing is written to the process environment.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	api, err := documentai.NewDocumentProcessorClient(ctx,
		option.WithEndpoint(fmt.Sprintf("%s-documentai.googleapis.com:443", cfg.Location)),
		option.WithCredentialsFile(cfg.CredentialsPath),
	)
	if err != nil {
		return nil, fmt.Errorf("documentai client: %w", err)
	}

	return &Client{api: api, name: processorVersionName(cfg)}, nil
}

func processorVersionName(cfg *config.Config) string {
	return fmt.Sprintf("projects/%s/locations/%s/processors/%s/processorVersions/%s",
		cfg.ProjectID, cfg.Location, cfg.ProcessorID, cfg.ProcessorVersion)
}

func (c *Client) Close() error {
	return c.api.Close()
}

// Process uploads the whole file in one request, asking for layout-aware
// chunking, and returns the structured document. Errors from the remote
// call are wrapped, never retried.
func (c *Client) Process(ctx context.Context, filePath, mimeType string) (*documentaipb.Document, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}

	req := &documentaipb.ProcessRequest{
		Name: c.name,
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  content,
				MimeType: mimeType,
			},
		},
		ProcessOptions: &documentaipb.ProcessOptions{
			LayoutConfig: &documentaipb.ProcessOptions_LayoutConfig{
				ChunkingConfig: &documentaipb.ProcessOptions_LayoutConfig_ChunkingConfig{
					ChunkSize:               chunkSize,
					IncludeAncestorHeadings: includeAncestorHeadings,
				},
			},
		},
	}

	resp, err := c.api.ProcessDocument(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("process document: %w", err)
	}
	return resp.GetDocument(), nil
}
