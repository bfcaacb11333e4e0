package document_translator

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"translate-relay/pkg/types"
)

type fakeDocProvider struct {
	uploadHandle  types.DocumentHandle
	uploadErr     error
	statusPayload json.RawMessage
	statusErr     error
	downloadErr   error
	downloadPaths []string
	writeOnError  bool
}

func (f *fakeDocProvider) UploadDocument(ctx context.Context, filename string, data []byte, targetLang string) (types.DocumentHandle, error) {
	return f.uploadHandle, f.uploadErr
}

func (f *fakeDocProvider) DocumentStatus(ctx context.Context, handle types.DocumentHandle) (json.RawMessage, error) {
	return f.statusPayload, f.statusErr
}

func (f *fakeDocProvider) DownloadDocument(ctx context.Context, handle types.DocumentHandle, destPath string) error {
	f.downloadPaths = append(f.downloadPaths, destPath)
	if f.downloadErr != nil {
		if f.writeOnError {
			os.WriteFile(destPath, []byte("partial"), 0o600)
		}
		return f.downloadErr
	}
	return os.WriteFile(destPath, []byte("translated"), 0o600)
}

func TestDownload_TempPathUniquePerCall(t *testing.T) {
	provider := &fakeDocProvider{}
	svc := NewDocumentTranslatorService(zap.NewNop(), provider)
	handle := types.DocumentHandle{DocumentID: "doc-1", DocumentKey: "key-1"}

	first, err := svc.Download(context.Background(), handle, "result.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Remove(first)
	second, err := svc.Download(context.Background(), handle, "result.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Remove(second)

	if first == second {
		t.Errorf("temp paths must be unique per download, both were %q", first)
	}
	if !strings.HasSuffix(first, "-result.pdf") {
		t.Errorf("temp path must end with the requested filename, got %q", first)
	}
	if filepath.Dir(first) != os.TempDir() {
		t.Errorf("temp file must live in the system temp dir, got %q", first)
	}
}

func TestDownload_ProviderFailureLeavesNoFile(t *testing.T) {
	provider := &fakeDocProvider{downloadErr: errors.New("job not finished"), writeOnError: true}
	svc := NewDocumentTranslatorService(zap.NewNop(), provider)

	path, err := svc.Download(context.Background(), types.DocumentHandle{DocumentID: "doc-1", DocumentKey: "key-1"}, "result.pdf")
	if err == nil {
		t.Fatal("expected provider error to propagate")
	}
	if path != "" {
		t.Errorf("expected empty path on failure, got %q", path)
	}
	if len(provider.downloadPaths) != 1 {
		t.Fatalf("expected one download attempt, got %d", len(provider.downloadPaths))
	}
	if _, statErr := os.Stat(provider.downloadPaths[0]); !os.IsNotExist(statErr) {
		t.Error("temp file must be removed when the download fails")
	}
}

func TestDownload_SanitizesOutputFileName(t *testing.T) {
	provider := &fakeDocProvider{}
	svc := NewDocumentTranslatorService(zap.NewNop(), provider)

	path, err := svc.Download(context.Background(), types.DocumentHandle{DocumentID: "doc-1", DocumentKey: "key-1"}, "../../etc/result.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Remove(path)

	if filepath.Dir(path) != os.TempDir() {
		t.Errorf("path traversal in outputFileName must not escape the temp dir, got %q", path)
	}
}

func TestStatus_PassesPayloadThrough(t *testing.T) {
	payload := json.RawMessage(`{"status":"done","billed_characters":42}`)
	provider := &fakeDocProvider{statusPayload: payload}
	svc := NewDocumentTranslatorService(zap.NewNop(), provider)

	got, err := svc.Status(context.Background(), types.DocumentHandle{DocumentID: "doc-1", DocumentKey: "key-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("status payload mutated: %q", got)
	}
}
