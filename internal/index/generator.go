package index

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	// 画像ヘッダーのデコードに使用するフォーマットを登録する
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const (
	indexFileName = "index.json"
	thumbnailDir  = "thumbnails"
)

// Generator はギャラリーのインデックスとサムネイルを生成する
type Generator struct {
	root        string
	config      Config
	thumbnailer *Thumbnailer
}

// NewGenerator は新しいGeneratorを作成する
func NewGenerator(root string, cfg Config) *Generator {
	return &Generator{
		root:        root,
		config:      cfg,
		thumbnailer: NewThumbnailer(cfg.ThumbnailSize),
	}
}

// Run は全アルバムを処理してインデックスを生成する
func (g *Generator) Run(ctx context.Context) error {
	// サムネイル生成に必要なImageMagickの存在を先に確認する
	if g.config.Thumbnails && !g.config.DryRun {
		if err := g.thumbnailer.Check(); err != nil {
			return fmt.Errorf("サムネイル生成の前提確認に失敗: %w", err)
		}
	}

	albums, err := g.listAlbums()
	if err != nil {
		return fmt.Errorf("アルバム一覧の取得に失敗: %w", err)
	}

	// ルートのindex.jsonを生成
	rootIndex := RootIndex{
		Albums:    albums,
		Generated: time.Now(),
	}
	if g.config.DryRun {
		log.Printf("ルートindex.jsonを生成します（DryRun）: アルバム%d件", len(albums))
	} else {
		if err := g.writeJSON(filepath.Join(g.root, indexFileName), rootIndex); err != nil {
			return fmt.Errorf("ルートindex.jsonの生成に失敗: %w", err)
		}
		log.Printf("ルートindex.jsonを生成しました: アルバム%d件", len(albums))
	}

	// 各アルバムのindex.jsonを生成
	for _, album := range albums {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.generateAlbum(ctx, filepath.Join(g.root, album)); err != nil {
			return fmt.Errorf("アルバムの処理に失敗 (%s): %w", album, err)
		}
	}

	return nil
}

// listAlbums はギャラリールート直下のアルバムディレクトリ名を返す
func (g *Generator) listAlbums() ([]string, error) {
	entries, err := os.ReadDir(g.root)
	if err != nil {
		return nil, err
	}

	albums := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			albums = append(albums, entry.Name())
		}
	}

	// 出力を安定させるためにソートする
	sort.Strings(albums)
	return albums, nil
}

// generateAlbum は1アルバムのサムネイルとindex.jsonを生成する
func (g *Generator) generateAlbum(ctx context.Context, dir string) error {
	name := filepath.Base(dir)
	thumbDir := filepath.Join(dir, thumbnailDir)

	if g.config.Thumbnails && !g.config.DryRun {
		if err := os.MkdirAll(thumbDir, 0755); err != nil {
			return fmt.Errorf("サムネイルディレクトリの作成に失敗: %w", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("アルバムの読み込みに失敗: %w", err)
	}

	// 事前にスライスの容量を確保（prealloc）
	images := make([]ImageInfo, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !g.isTarget(entry.Name()) {
			continue
		}

		srcPath := filepath.Join(dir, entry.Name())

		// 画像ヘッダーをデコードして検証する
		width, height, err := probeImage(srcPath)
		if err != nil {
			log.Printf("警告: 無効な画像をスキップします (%s/%s): %v", name, entry.Name(), err)
			continue
		}

		// サムネイルを生成する
		if g.config.Thumbnails {
			thumbPath := filepath.Join(thumbDir, entry.Name())
			if g.config.DryRun {
				log.Printf("サムネイルを生成します（DryRun）: %s", thumbPath)
			} else if err := g.thumbnailer.Create(ctx, srcPath, thumbPath); err != nil {
				log.Printf("警告: サムネイル生成に失敗しました (%s/%s): %v", name, entry.Name(), err)
				continue
			}
		}

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("ファイル情報の取得に失敗 (%s): %w", entry.Name(), err)
		}

		images = append(images, ImageInfo{
			Name:      entry.Name(),
			Width:     width,
			Height:    height,
			Size:      info.Size(),
			Modified:  info.ModTime(),
			Thumbnail: thumbnailDir + "/" + entry.Name(),
		})
	}

	albumIndex := AlbumIndex{
		Name:      name,
		Images:    images,
		Count:     len(images),
		Generated: time.Now(),
	}

	if g.config.DryRun {
		log.Printf("index.jsonを生成します（DryRun）: %s (画像%d枚)", name, len(images))
		return nil
	}

	if err := g.writeJSON(filepath.Join(dir, indexFileName), albumIndex); err != nil {
		return fmt.Errorf("index.jsonの生成に失敗: %w", err)
	}
	log.Printf("index.jsonを生成しました: %s (画像%d枚)", name, len(images))
	return nil
}

// isTarget は対象拡張子の画像ファイルかを判定する
func (g *Generator) isTarget(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, target := range g.config.Extensions {
		if ext == strings.ToLower(target) {
			return true
		}
	}
	return false
}

// probeImage は画像ヘッダーをデコードして寸法を取得する
// デコードできないファイルは画像として無効とみなす
func probeImage(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// writeJSON はJSONを一時ファイルに書いてからリネームする
// 配信中のリクエストが書きかけのindex.jsonを読まないようにするため
func (g *Generator) writeJSON(dest string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("JSONへの変換に失敗: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(dest), fmt.Sprintf(".%s.%s", indexFileName, uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("一時ファイルの書き込みに失敗: %w", err)
	}

	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp) // cleanup中のエラーは無視
		return fmt.Errorf("index.jsonの置き換えに失敗: %w", err)
	}
	return nil
}
