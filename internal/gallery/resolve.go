package gallery

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound はファイルが存在しない、またはパスがルート外へ逃げている
	ErrNotFound = errors.New("ファイルが見つかりません")
	// ErrForbidden はディレクトリ一覧の要求、またはルート外シンボリックリンク
	ErrForbidden = errors.New("アクセスが禁止されています")
)

// Resolver はURLパスをギャラリールート配下のファイルパスへ解決する
// ルートは起動時に正規化され、以降は読み取り専用
type Resolver struct {
	root string
}

// NewResolver は新しいResolverを作成する
// ルートディレクトリにアクセスできない場合はエラーを返す（起動時に致命的）
func NewResolver(root string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("ギャラリールートの正規化に失敗: %w", err)
	}

	// シンボリックリンクを解決した実体パスを基準にする
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("ギャラリールートにアクセスできません: %w", err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("ギャラリールートの確認に失敗: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("ギャラリールートがディレクトリではありません: %s", root)
	}

	return &Resolver{root: resolved}, nil
}

// Root は正規化済みのルートディレクトリを返す
func (r *Resolver) Root() string {
	return r.root
}

// Resolve はURLパスをファイルパスへ解決する
// 戻り値のパスは必ずルート配下の実在ファイルを指す
//
// エラーの分類:
//   - ErrNotFound: ファイルが存在しない、またはパスがルート外を指す
//   - ErrForbidden: index.htmlのないディレクトリ、またはルート外へのシンボリックリンク
//   - それ以外: 予期しないI/Oエラー（呼び出し側でログに残す）
func (r *Resolver) Resolve(urlPath string) (string, os.FileInfo, error) {
	// パスを正規化してからルート配下に結合する
	// Cleanにより ".." はルートで打ち止めになる
	clean := path.Clean("/" + urlPath)
	full := filepath.Join(r.root, filepath.FromSlash(clean))
	if !r.contains(full) {
		return "", nil, ErrNotFound
	}

	// シンボリックリンクを解決し、実体がルート配下にあることを確認する
	resolved, err := filepath.EvalSymlinks(full)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, ErrNotFound
		}
		return "", nil, fmt.Errorf("パスの解決に失敗: %w", err)
	}
	if !r.contains(resolved) {
		return "", nil, ErrForbidden
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, ErrNotFound
		}
		return "", nil, fmt.Errorf("ファイルの確認に失敗: %w", err)
	}

	// ディレクトリ一覧は配信しない
	// index.htmlが存在する場合のみそれを配信する
	if info.IsDir() {
		return r.resolveIndex(resolved)
	}

	return resolved, info, nil
}

// resolveIndex はディレクトリ内のindex.htmlを解決する
func (r *Resolver) resolveIndex(dir string) (string, os.FileInfo, error) {
	index := filepath.Join(dir, "index.html")

	resolved, err := filepath.EvalSymlinks(index)
	if err != nil {
		// index.htmlがないディレクトリは一覧の要求とみなす
		return "", nil, ErrForbidden
	}
	if !r.contains(resolved) {
		return "", nil, ErrForbidden
	}

	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		return "", nil, ErrForbidden
	}

	return resolved, info, nil
}

// contains はパスがルート配下（ルート自身を含む）にあるかを判定する
func (r *Resolver) contains(p string) bool {
	return p == r.root || strings.HasPrefix(p, r.root+string(filepath.Separator))
}
