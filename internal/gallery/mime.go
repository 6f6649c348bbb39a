package gallery

import (
	"path"
	"strings"
)

// DefaultContentType は未知の拡張子に対するフォールバック
const DefaultContentType = "application/octet-stream"

// contentTypes は拡張子からMIMEタイプへの変換テーブル
// 起動後は読み取り専用なので全ハンドラで共有できる
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".json": "application/json",
	".html": "text/html; charset=utf-8",
}

// ContentTypeFor はファイルパスの拡張子からContent-Typeを決定する
// 拡張子が未知の場合や拡張子がない場合はDefaultContentTypeを返す
func ContentTypeFor(p string) string {
	ext := strings.ToLower(path.Ext(p))
	if contentType, ok := contentTypes[ext]; ok {
		return contentType
	}
	return DefaultContentType
}
