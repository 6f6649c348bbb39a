package gallery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// setupGalleryRoot はテスト用のギャラリーディレクトリ構成を作成する
//
//	root/
//	  album/photo.jpg
//	  album/index.json
//	  empty/            (index.htmlなし)
//	  pages/index.html
//	  escape-link -> root外のファイル
func setupGalleryRoot(t *testing.T) (root string, outside string) {
	t.Helper()

	base := t.TempDir()
	root = filepath.Join(base, "gallery")
	outside = filepath.Join(base, "secret.txt")

	dirs := []string{
		filepath.Join(root, "album"),
		filepath.Join(root, "empty"),
		filepath.Join(root, "pages"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("テストディレクトリの作成に失敗しました: %v", err)
		}
	}

	files := map[string]string{
		filepath.Join(root, "album", "photo.jpg"):  "jpeg-bytes",
		filepath.Join(root, "album", "index.json"): `{"name":"album"}`,
		filepath.Join(root, "pages", "index.html"): "<html></html>",
		outside: "機密データ",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("テストファイルの作成に失敗しました: %v", err)
		}
	}

	// ルート外を指すシンボリックリンク
	if err := os.Symlink(outside, filepath.Join(root, "escape-link")); err != nil {
		t.Fatalf("シンボリックリンクの作成に失敗しました: %v", err)
	}

	return root, outside
}

// TestNewResolver はResolverの作成をテストする
func TestNewResolver(t *testing.T) {
	root, _ := setupGalleryRoot(t)

	resolver, err := NewResolver(root)
	if err != nil {
		t.Fatalf("Resolverの作成に失敗しました: %v", err)
	}
	if resolver.Root() == "" {
		t.Error("ルートが設定されていません")
	}
}

// TestNewResolverInvalidRoot は不正なルートでの作成失敗をテストする
func TestNewResolverInvalidRoot(t *testing.T) {
	// 存在しないディレクトリ
	if _, err := NewResolver(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("存在しないルートでエラーが期待されましたが、エラーが発生しませんでした")
	}

	// ディレクトリではないパス
	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("テストファイルの作成に失敗しました: %v", err)
	}
	if _, err := NewResolver(file); err == nil {
		t.Error("ファイルをルートに指定してエラーが期待されましたが、エラーが発生しませんでした")
	}
}

// TestResolve はURLパスの解決をテストする
func TestResolve(t *testing.T) {
	root, _ := setupGalleryRoot(t)

	resolver, err := NewResolver(root)
	if err != nil {
		t.Fatalf("Resolverの作成に失敗しました: %v", err)
	}

	testCases := []struct {
		name    string
		path    string
		wantErr error // nilなら解決成功を期待
	}{
		{"既存の画像ファイル", "/album/photo.jpg", nil},
		{"既存のJSONメタデータ", "/album/index.json", nil},
		{"index.htmlのあるディレクトリ", "/pages", nil},
		{"存在しないファイル", "/album/missing.png", ErrNotFound},
		{"存在しないアルバム", "/nothing/photo.jpg", ErrNotFound},
		{"ディレクトリトラバーサル", "/album/../../secret.txt", ErrNotFound},
		{"ルートへのトラバーサル", "/../../../etc/passwd", ErrNotFound},
		{"index.htmlのないディレクトリ", "/empty", ErrForbidden},
		{"index.htmlのないルート", "/", ErrForbidden},
		{"ルート外へのシンボリックリンク", "/escape-link", ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resolved, info, err := resolver.Resolve(tc.path)

			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("予期しないエラーが発生しました: %v", err)
				}
				if info == nil || info.IsDir() {
					t.Error("解決結果が通常ファイルではありません")
				}
				if !filepath.IsAbs(resolved) {
					t.Errorf("解決結果が絶対パスではありません: %s", resolved)
				}
				return
			}

			if !errors.Is(err, tc.wantErr) {
				t.Errorf("エラーの分類が一致しません: got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

// TestResolveDirectoryIndex はディレクトリのindex.html解決をテストする
func TestResolveDirectoryIndex(t *testing.T) {
	root, _ := setupGalleryRoot(t)

	resolver, err := NewResolver(root)
	if err != nil {
		t.Fatalf("Resolverの作成に失敗しました: %v", err)
	}

	resolved, _, err := resolver.Resolve("/pages")
	if err != nil {
		t.Fatalf("予期しないエラーが発生しました: %v", err)
	}
	if filepath.Base(resolved) != "index.html" {
		t.Errorf("index.htmlへ解決されていません: %s", resolved)
	}
}

// TestResolveNeverEscapesRoot はいかなる解決結果もルート外を指さないことをテストする
func TestResolveNeverEscapesRoot(t *testing.T) {
	root, outside := setupGalleryRoot(t)

	resolver, err := NewResolver(root)
	if err != nil {
		t.Fatalf("Resolverの作成に失敗しました: %v", err)
	}

	attempts := []string{
		"/../secret.txt",
		"/album/../../secret.txt",
		"/..%2Fsecret.txt",
		"/./../secret.txt",
		"/escape-link",
	}

	for _, attempt := range attempts {
		resolved, _, err := resolver.Resolve(attempt)
		if err == nil && resolved == outside {
			t.Errorf("ルート外のファイルへ解決されました: %s -> %s", attempt, resolved)
		}
	}
}
