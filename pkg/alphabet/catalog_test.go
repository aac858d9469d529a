package alphabet

import (
	"context"
	goerrors "errors"
	"testing"

	"github.com/matzehuels/wordsearch/pkg/errors"
)

func TestBuiltinResolve(t *testing.T) {
	ctx := context.Background()
	cat := Builtin()

	tests := []struct {
		lang  string
		c     Case
		total int
	}{
		{"en", Lower, 26},
		{"en", Upper, 26},
		{"", Lower, 26},
		{"ES", Lower, 33},
		{"ru", Upper, 33},
		{"el", Upper, 24},
		{"ko", Lower, 11172},
	}
	for _, tt := range tests {
		tbl, err := cat.Resolve(ctx, tt.lang, tt.c)
		if err != nil {
			t.Errorf("Resolve(%q, %s): %v", tt.lang, tt.c, err)
			continue
		}
		if tbl.Total() != tt.total {
			t.Errorf("Resolve(%q, %s) has %d letters, want %d", tt.lang, tt.c, tbl.Total(), tt.total)
		}
	}
}

func TestResolveErrors(t *testing.T) {
	ctx := context.Background()
	cat := Builtin()

	tests := []struct {
		name string
		lang string
		c    Case
		code errors.Code
	}{
		{"unknown language", "xx", Lower, errors.ErrCodeUnsupportedLanguage},
		{"malformed language", "../en", Lower, errors.ErrCodeUnsupportedLanguage},
		{"unknown case", "en", Case("title"), errors.ErrCodeUnsupportedCase},
		{"caseless language", "ko", Upper, errors.ErrCodeUnsupportedCase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cat.Resolve(ctx, tt.lang, tt.c)
			if !errors.Is(err, tt.code) {
				t.Errorf("Resolve() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestResolveCachesTables(t *testing.T) {
	loads := 0
	cat := NewCatalog(LoaderFunc(func(ctx context.Context, name string) ([]byte, error) {
		loads++
		return builtinCatalog, nil
	}))
	ctx := context.Background()

	a, err := cat.Resolve(ctx, "en", Lower)
	if err != nil {
		t.Fatal(err)
	}
	b, err := cat.Resolve(ctx, "en", "")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("second Resolve derived a new table")
	}
	if _, err := cat.Resolve(ctx, "en", Upper); err != nil {
		t.Fatal(err)
	}
	if loads != 1 {
		t.Errorf("catalog loaded %d times, want 1", loads)
	}
}

func TestResolveLoadFailureNotRemembered(t *testing.T) {
	fail := true
	cat := NewCatalog(LoaderFunc(func(ctx context.Context, name string) ([]byte, error) {
		if fail {
			return nil, errors.New(errors.ErrCodeNetwork, "offline")
		}
		return builtinCatalog, nil
	}))
	ctx := context.Background()

	if _, err := cat.Resolve(ctx, "en", Lower); !errors.Is(err, errors.ErrCodeNetwork) {
		t.Fatalf("first Resolve() error = %v, want NETWORK_ERROR", err)
	}
	fail = false
	if _, err := cat.Resolve(ctx, "en", Lower); err != nil {
		t.Fatalf("second Resolve(): %v", err)
	}
}

func TestResolveInvalidCatalog(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"en": `},
		{"empty", `{}`},
		{"bad range", `{"en": {"ranges": ["a"]}}`},
		{"duplicate code", `{"en": {"ranges": [[97, 122]]}, "EN": {"ranges": [[65, 90]]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := NewCatalog(LoaderFunc(func(context.Context, string) ([]byte, error) {
				return []byte(tt.data), nil
			}))
			_, err := cat.Resolve(context.Background(), "en", Lower)
			if !errors.Is(err, errors.ErrCodeInvalidCatalog) {
				t.Errorf("Resolve() error = %v, want INVALID_CATALOG", err)
			}
		})
	}
}

func TestResolveMixedCaseKeys(t *testing.T) {
	ctx := context.Background()
	cat := NewCatalog(LoaderFunc(func(context.Context, string) ([]byte, error) {
		return []byte(`{"pt-BR": {"ranges": [[97, 122]]}}`), nil
	}))

	for _, code := range []string{"pt-BR", "pt-br", " PT-BR "} {
		tbl, err := cat.Resolve(ctx, code, Lower)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", code, err)
		}
		if tbl.Total() != 26 {
			t.Errorf("Resolve(%q) has %d letters, want 26", code, tbl.Total())
		}
	}

	infos, err := cat.Languages(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 || infos[0].Code != "pt-br" {
		t.Errorf("Languages() = %+v, want the single code pt-br", infos)
	}
}

func TestResolveEmptyRangeIsInvalid(t *testing.T) {
	cat := NewCatalog(LoaderFunc(func(context.Context, string) ([]byte, error) {
		return []byte(`{"xx": {"ranges": [[99, 97]]}}`), nil
	}))
	_, err := cat.Resolve(context.Background(), "xx", Lower)
	if !errors.Is(err, errors.ErrCodeInvalidCatalog) {
		t.Errorf("Resolve() error = %v, want INVALID_CATALOG", err)
	}
}

func TestResolveCancelledContext(t *testing.T) {
	cat := NewCatalog(LoaderFunc(func(ctx context.Context, _ string) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cat.Resolve(ctx, "en", Lower)
	if !goerrors.Is(err, context.Canceled) {
		t.Errorf("Resolve() error = %v, want context.Canceled", err)
	}
}

func TestLanguages(t *testing.T) {
	infos, err := Builtin().Languages(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) == 0 {
		t.Fatal("no languages")
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].Code >= infos[i].Code {
			t.Errorf("languages not sorted: %s before %s", infos[i-1].Code, infos[i].Code)
		}
	}

	byCode := make(map[string]LanguageInfo)
	for _, info := range infos {
		byCode[info.Code] = info
	}
	en, ok := byCode["en"]
	if !ok {
		t.Fatal("en missing")
	}
	if len(en.Cases) != 2 || en.Letters[Lower] != 26 || en.Letters[Upper] != 26 {
		t.Errorf("en info = %+v", en)
	}
	if en.Comment == "" {
		t.Error("en comment dropped")
	}
	if ko := byCode["ko"]; len(ko.Cases) != 1 || ko.Cases[0] != Lower {
		t.Errorf("ko cases = %v, want [lower]", ko.Cases)
	}
}
