package server

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"shashinkan/internal/gallery"

	"github.com/gin-gonic/gin"
)

// handleHealth はヘルスチェックエンドポイントの実装
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleGallery はギャラリー配信の入口
// メソッドごとに分岐し、対応しないメソッドには405を返す
func (s *Server) handleGallery(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead:
		s.serveFile(c)
	case http.MethodOptions:
		s.handlePreflight(c)
	default:
		c.Header("Allow", "GET, HEAD, OPTIONS")
		writeStatus(c, http.StatusMethodNotAllowed)
	}
}

// writeStatus は本体なしでステータスのみを書き込む
// NoRouteハンドラ内でginの既定404本体が付与されるのを防ぐ
func writeStatus(c *gin.Context, code int) {
	c.Status(code)
	c.Writer.WriteHeaderNow()
}

// handlePreflight はCORSプリフライトへの応答
// JSONメタデータのみ対象で、それ以外のパスへのOPTIONSは受け付けない
func (s *Server) handlePreflight(c *gin.Context) {
	urlPath := c.Request.URL.Path
	if !gallery.IsJSON(urlPath) {
		c.Header("Allow", "GET, HEAD")
		writeStatus(c, http.StatusMethodNotAllowed)
		return
	}

	rule := s.rules.Select(urlPath)
	rule.Apply(c.Writer.Header(), time.Now())
	writeStatus(c, http.StatusNoContent)
}

// serveFile はGET/HEADに対してファイルを配信する
func (s *Server) serveFile(c *gin.Context) {
	urlPath := c.Request.URL.Path

	filePath, info, err := s.resolver.Resolve(urlPath)
	if err != nil {
		s.writeResolveError(c, err)
		return
	}

	// ルールのヘッダーを設定
	rule := s.rules.Select(urlPath)
	rule.Apply(c.Writer.Header(), time.Now())

	contentType := gallery.ContentTypeFor(filePath)

	// HEADはヘッダーのみを返す
	if c.Request.Method == http.MethodHead {
		c.Header("Content-Type", contentType)
		c.Header("Content-Length", strconv.FormatInt(info.Size(), 10))
		writeStatus(c, http.StatusOK)
		return
	}

	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			writeStatus(c, http.StatusNotFound)
			return
		}
		log.Printf("ファイルのオープンに失敗しました: %v", err)
		writeStatus(c, http.StatusInternalServerError)
		return
	}
	defer func() {
		_ = f.Close() // cleanup中のエラーは無視
	}()

	// 本体をストリーミング配信する
	// クライアント切断はコピー中の書き込みエラーとして現れ、その時点で打ち切られる
	c.DataFromReader(http.StatusOK, info.Size(), contentType, f, nil)
}

// writeResolveError は解決エラーをHTTPステータスへ変換する
// 内部パスはクライアントへ返さない
func (s *Server) writeResolveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gallery.ErrNotFound):
		writeStatus(c, http.StatusNotFound)
	case errors.Is(err, gallery.ErrForbidden):
		writeStatus(c, http.StatusForbidden)
	default:
		log.Printf("ファイル解決中に予期しないエラーが発生しました: %v", err)
		writeStatus(c, http.StatusInternalServerError)
	}
}
