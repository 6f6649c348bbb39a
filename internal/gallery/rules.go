package gallery

import (
	"net/http"
	"strings"
	"time"
)

// Header はレスポンスヘッダーの名前と値の組
type Header struct {
	Name  string
	Value string
}

// HeaderSet は順序付きのヘッダー集合（キーは一意）
type HeaderSet []Header

// Apply はヘッダー集合を定義順にレスポンスヘッダーへ設定する
func (hs HeaderSet) Apply(h http.Header) {
	for _, header := range hs {
		h.Set(header.Name, header.Value)
	}
}

// Rule はパスパターンに対応する配信ポリシー
type Rule struct {
	Headers HeaderSet
	// MaxAge が正の場合、現在時刻からの相対でExpiresヘッダーを付与する
	MaxAge time.Duration
}

// Apply はルールのヘッダーをレスポンスへ設定する
func (r *Rule) Apply(h http.Header, now time.Time) {
	r.Headers.Apply(h)
	if r.MaxAge > 0 {
		h.Set("Expires", now.Add(r.MaxAge).UTC().Format(http.TimeFormat))
	}
}

// Rules はルーティングルール一式
// デフォルトルールと*.json向けの上書きルールの2つのみ存在する
type Rules struct {
	Default Rule
	JSON    Rule
}

// NewRules はルーティングルール一式を構築する
// 起動時に一度だけ呼び、以降は読み取り専用として共有する
func NewRules() *Rules {
	return &Rules{
		Default: Rule{
			Headers: HeaderSet{
				{Name: "Access-Control-Allow-Origin", Value: "*"},
				{Name: "Cache-Control", Value: "public, no-transform"},
			},
			MaxAge: 365 * 24 * time.Hour,
		},
		JSON: Rule{
			Headers: HeaderSet{
				{Name: "Access-Control-Allow-Origin", Value: "*"},
				{Name: "Access-Control-Allow-Methods", Value: "GET, OPTIONS"},
				{Name: "Access-Control-Allow-Headers", Value: "Accept,Authorization,Cache-Control"},
			},
		},
	}
}

// Select はリクエストパスに適用するルールを返す
func (r *Rules) Select(urlPath string) *Rule {
	if strings.HasSuffix(urlPath, ".json") {
		return &r.JSON
	}
	return &r.Default
}

// IsJSON はJSONルールの対象パスかどうかを返す
func IsJSON(urlPath string) bool {
	return strings.HasSuffix(urlPath, ".json")
}
