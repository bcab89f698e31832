package download

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/spotify-dl/internal/errs"
	"github.com/ytget/spotify-dl/internal/model"
)

type fakeProvider struct {
	ids       []string
	err       error
	calls     int
	lastQuery string
}

func (f *fakeProvider) Search(ctx context.Context, query string) ([]string, error) {
	f.calls++
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.ids, nil
}

// fakeTranscode returns the scripted error per attempt and writes the
// target file on success, like the real pipeline would.
func fakeTranscode(results []error, attempts *[]string) transcodeFunc {
	return func(ctx context.Context, videoURL, outputTemplate string) error {
		i := len(*attempts)
		*attempts = append(*attempts, videoURL)

		var err error
		if i < len(results) {
			err = results[i]
		}
		if err != nil {
			return err
		}

		target := strings.Replace(outputTemplate, "%(ext)s", AudioFormat, 1)
		return os.WriteFile(target, []byte("audio"), 0o644)
	}
}

func testTrack() model.Track {
	return model.Track{ID: "t1", Artist: "Daft Punk", Title: "One More Time", Playable: true}
}

func TestFetchTrackNonPlayable(t *testing.T) {
	provider := &fakeProvider{ids: []string{"AAAAAAAAAAA"}}
	fetcher := NewFetcher(provider)

	ok := fetcher.FetchTrack(context.Background(), model.Track{Playable: false}, t.TempDir())
	if ok {
		t.Error("Expected false for non-playable entry")
	}
	if provider.calls != 0 {
		t.Errorf("Expected no search for non-playable entry, got %d calls", provider.calls)
	}
}

func TestFetchTrackExistingFileSkipsSearch(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "Daft Punk - One More Time.mp3")
	if err := os.WriteFile(existing, []byte("audio"), 0o644); err != nil {
		t.Fatalf("Failed to create existing file: %v", err)
	}

	provider := &fakeProvider{ids: []string{"AAAAAAAAAAA"}}
	fetcher := NewFetcher(provider)

	ok := fetcher.FetchTrack(context.Background(), testTrack(), dir)
	if !ok {
		t.Error("Expected true for pre-existing file")
	}
	if provider.calls != 0 {
		t.Errorf("Expected no network search on resume, got %d calls", provider.calls)
	}
}

func TestFetchTrackQueryShape(t *testing.T) {
	provider := &fakeProvider{ids: []string{"AAAAAAAAAAA"}}
	var attempts []string
	fetcher := &Fetcher{provider: provider, transcode: fakeTranscode(nil, &attempts)}

	fetcher.FetchTrack(context.Background(), testTrack(), t.TempDir())

	want := "One More Time Daft Punk official"
	if provider.lastQuery != want {
		t.Errorf("Search query = %q, want %q", provider.lastQuery, want)
	}
}

func TestFetchTrackSecondCandidateSucceeds(t *testing.T) {
	dir := t.TempDir()
	provider := &fakeProvider{ids: []string{"AAAAAAAAAAA", "BBBBBBBBBBB", "CCCCCCCCCCC"}}

	var attempts []string
	fetcher := &Fetcher{
		provider:  provider,
		transcode: fakeTranscode([]error{errors.New("format unavailable"), nil}, &attempts),
	}

	ok := fetcher.FetchTrack(context.Background(), testTrack(), dir)
	if !ok {
		t.Fatal("Expected true when the second candidate succeeds")
	}

	if len(attempts) != 2 {
		t.Errorf("Expected 2 attempts, got %d", len(attempts))
	}
	if !strings.HasSuffix(attempts[1], "BBBBBBBBBBB") {
		t.Errorf("Expected second attempt on second candidate, got %s", attempts[1])
	}

	target := filepath.Join(dir, "Daft Punk - One More Time.mp3")
	if _, err := os.Stat(target); err != nil {
		t.Errorf("Expected target file to exist: %v", err)
	}
}

func TestFetchTrackCandidateCap(t *testing.T) {
	provider := &fakeProvider{ids: []string{"AAAAAAAAAAA", "BBBBBBBBBBB", "CCCCCCCCCCC", "DDDDDDDDDDD", "EEEEEEEEEEE"}}

	fail := errors.New("unavailable")
	var attempts []string
	fetcher := &Fetcher{
		provider:  provider,
		transcode: fakeTranscode([]error{fail, fail, fail, fail, fail}, &attempts),
	}

	ok := fetcher.FetchTrack(context.Background(), testTrack(), t.TempDir())
	if ok {
		t.Error("Expected false when all candidates fail")
	}
	if len(attempts) != MaxCandidates {
		t.Errorf("Expected exactly %d attempts, got %d", MaxCandidates, len(attempts))
	}
}

func TestFetchTrackSearchFailure(t *testing.T) {
	provider := &fakeProvider{err: errs.ErrNoCandidates}
	var attempts []string
	fetcher := &Fetcher{provider: provider, transcode: fakeTranscode(nil, &attempts)}

	ok := fetcher.FetchTrack(context.Background(), testTrack(), t.TempDir())
	if ok {
		t.Error("Expected false when search fails")
	}
	if len(attempts) != 0 {
		t.Errorf("Expected no download attempts, got %d", len(attempts))
	}
}
