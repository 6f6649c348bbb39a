package index

import (
	"time"
)

// Config はインデックス生成の設定
type Config struct {
	Enabled       bool     `yaml:"enabled"`        // 起動時にインデックスを再生成するか
	Extensions    []string `yaml:"extensions"`     // 対象とする画像拡張子
	Thumbnails    bool     `yaml:"thumbnails"`     // サムネイルを生成するか
	ThumbnailSize Size     `yaml:"thumbnail_size"` // サムネイルのサイズ
	DryRun        bool     `yaml:"dry_run"`        // 書き込みを行わない
}

// Size はサムネイルの寸法
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultConfig はインデックス生成のデフォルト設定を返す
func DefaultConfig() Config {
	return Config{
		Enabled:       false,
		Extensions:    []string{".jpg", ".jpeg", ".png", ".gif"},
		Thumbnails:    true,
		ThumbnailSize: Size{Width: 300, Height: 300},
		DryRun:        false,
	}
}

// ImageInfo は画像1枚のメタデータ（index.jsonのimages要素）
type ImageInfo struct {
	Name      string    `json:"name"`      // ファイル名
	Width     int       `json:"width"`     // 画像幅
	Height    int       `json:"height"`    // 画像高さ
	Size      int64     `json:"size"`      // ファイルサイズ（バイト）
	Modified  time.Time `json:"modified"`  // 最終更新時刻
	Thumbnail string    `json:"thumbnail"` // サムネイルの相対パス
}

// AlbumIndex はアルバム単位のindex.json
type AlbumIndex struct {
	Name      string      `json:"name"`      // アルバム名（ディレクトリ名）
	Images    []ImageInfo `json:"images"`    // 画像メタデータ一覧
	Count     int         `json:"count"`     // 画像数
	Generated time.Time   `json:"generated"` // 生成時刻
}

// RootIndex はギャラリールートのindex.json
type RootIndex struct {
	Albums    []string  `json:"albums"`    // アルバム名一覧
	Generated time.Time `json:"generated"` // 生成時刻
}
