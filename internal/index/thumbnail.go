package index

import (
	"context"
	"fmt"
	"os/exec"
)

// Thumbnailer はImageMagickのconvertコマンドでサムネイルを生成する
type Thumbnailer struct {
	size Size
}

// NewThumbnailer は新しいThumbnailerを作成する
func NewThumbnailer(size Size) *Thumbnailer {
	return &Thumbnailer{size: size}
}

// Check はImageMagickが利用可能かを確認する
func (t *Thumbnailer) Check() error {
	if _, err := exec.LookPath("convert"); err != nil {
		return fmt.Errorf("ImageMagickが見つかりません（convertコマンドが必要です）: %w", err)
	}
	return nil
}

// Create はサムネイルを生成する
// 指定サイズで中央を切り抜き、品質80のJPEG相当で出力する
func (t *Thumbnailer) Create(ctx context.Context, src, dst string) error {
	cmd := exec.CommandContext(ctx, "convert",
		src,
		"-thumbnail", fmt.Sprintf("%dx%d^", t.size.Width, t.size.Height),
		"-gravity", "center",
		"-extent", fmt.Sprintf("%dx%d", t.size.Width, t.size.Height),
		"-quality", "80",
		dst,
	)

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("convertの実行に失敗: %w: %s", err, output)
	}
	return nil
}
