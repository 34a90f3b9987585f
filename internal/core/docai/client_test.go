package docai

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"github.com/googleapis/gax-go/v2"

	"github.com/uhk16/layout-parser-processor/internal/config"
)

// fakeProcessClient records the last request instead of calling the API.
type fakeProcessClient struct {
	lastReq *documentaipb.ProcessRequest
	resp    *documentaipb.ProcessResponse
	err     error
	closed  bool
}

func (f *fakeProcessClient) ProcessDocument(_ context.Context, req *documentaipb.ProcessRequest, _ ...gax.CallOption) (*documentaipb.ProcessResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeProcessClient) Close() error {
	f.closed = true
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		CredentialsPath:  "/tmp/creds.json",
		ProjectID:        "proj-1",
		Location:         "eu",
		ProcessorID:      "abc123",
		ProcessorVersion: "rc",
	}
}

func TestProcessorVersionName(t *testing.T) {
	got := processorVersionName(testConfig())
	want := "projects/proj-1/locations/eu/processors/abc123/processorVersions/rc"
	if got != want {
		t.Errorf("processorVersionName() = %q, want %q", got, want)
	}
}

func TestProcessBuildsRequest(t *testing.T) {
	content := []byte("%PDF-1.4 fake body")
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	fake := &fakeProcessClient{resp: &documentaipb.ProcessResponse{
		Document: &documentaipb.Document{Text: "hello"},
	}}
	client := &Client{api: fake, name: processorVersionName(testConfig())}

	doc, err := client.Process(context.Background(), path, "application/pdf")
	if err != nil {
		t.Fatalf("Process(): %v", err)
	}
	if doc.GetText() != "hello" {
		t.Errorf("Process() document text = %q, want %q", doc.GetText(), "hello")
	}

	req := fake.lastReq
	if req == nil {
		t.Fatal("no request sent")
	}
	if want := "projects/proj-1/locations/eu/processors/abc123/processorVersions/rc"; req.GetName() != want {
		t.Errorf("request name = %q, want %q", req.GetName(), want)
	}

	raw := req.GetRawDocument()
	if raw == nil {
		t.Fatal("request carries no raw document")
	}
	if string(raw.GetContent()) != string(content) {
		t.Errorf("raw content = %q, want %q", raw.GetContent(), content)
	}
	if raw.GetMimeType() != "application/pdf" {
		t.Errorf("mime type = %q, want application/pdf", raw.GetMimeType())
	}

	cc := req.GetProcessOptions().GetLayoutConfig().GetChunkingConfig()
	if cc.GetChunkSize() != 1000 {
		t.Errorf("chunk size = %d, want 1000", cc.GetChunkSize())
	}
	if !cc.GetIncludeAncestorHeadings() {
		t.Error("include ancestor headings not set")
	}
}

func TestProcessMissingFile(t *testing.T) {
	fake := &fakeProcessClient{}
	client := &Client{api: fake, name: "projects/p/locations/eu/processors/x/processorVersions/rc"}

	_, err := client.Process(context.Background(), "/nonexistent/doc.pdf", "application/pdf")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if fake.lastReq != nil {
		t.Error("remote call made despite unreadable file")
	}
}

func TestProcessRemoteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	remoteErr := errors.New("quota exceeded")
	fake := &fakeProcessClient{err: remoteErr}
	client := &Client{api: fake, name: "projects/p/locations/eu/processors/x/processorVersions/rc"}

	_, err := client.Process(context.Background(), path, "application/pdf")
	if err == nil {
		t.Fatal("expected remote error to propagate")
	}
	if !errors.Is(err, remoteErr) {
		t.Errorf("error %v does not wrap the remote error", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error %q lost the remote message", err)
	}
}

func TestClose(t *testing.T) {
	fake := &fakeProcessClient{}
	client := &Client{api: fake}
	if err := client.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}
	if !fake.closed {
		t.Error("underlying client not closed")
	}
}
