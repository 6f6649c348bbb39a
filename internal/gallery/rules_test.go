package gallery

import (
	"net/http"
	"testing"
	"time"
)

// TestRulesSelect はパスに応じたルールの選択をテストする
func TestRulesSelect(t *testing.T) {
	rules := NewRules()

	testCases := []struct {
		name     string
		path     string
		wantJSON bool
	}{
		{"JSONメタデータ", "/album/index.json", true},
		{"ルート直下のJSON", "/index.json", true},
		{"JPEG画像", "/album/photo.jpg", false},
		{"拡張子なし", "/album", false},
		{"jsonを含むが拡張子ではない", "/album/json-notes.txt", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rule := rules.Select(tc.path)
			isJSON := rule == &rules.JSON
			if isJSON != tc.wantJSON {
				t.Errorf("ルールの選択が一致しません: got JSON=%v, want JSON=%v", isJSON, tc.wantJSON)
			}
			if IsJSON(tc.path) != tc.wantJSON {
				t.Errorf("IsJSONの判定が一致しません: got %v, want %v", IsJSON(tc.path), tc.wantJSON)
			}
		})
	}
}

// TestDefaultRuleHeaders はデフォルトルールのヘッダー付与をテストする
func TestDefaultRuleHeaders(t *testing.T) {
	rules := NewRules()
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	h := make(http.Header)
	rules.Default.Apply(h, now)

	if got := h.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Originが一致しません: got %q, want %q", got, "*")
	}
	if got := h.Get("Cache-Control"); got != "public, no-transform" {
		t.Errorf("Cache-Controlが一致しません: got %q, want %q", got, "public, no-transform")
	}

	// Expiresは現在時刻の1年後
	expires, err := time.Parse(http.TimeFormat, h.Get("Expires"))
	if err != nil {
		t.Fatalf("Expiresの解析に失敗しました: %v", err)
	}
	expected := now.Add(365 * 24 * time.Hour)
	if !expires.Equal(expected) {
		t.Errorf("Expiresが一致しません: got %v, want %v", expires, expected)
	}

	// JSONルール専用のヘッダーは付与されない
	if h.Get("Access-Control-Allow-Methods") != "" {
		t.Error("デフォルトルールにAccess-Control-Allow-Methodsが付与されています")
	}
}

// TestJSONRuleHeaders はJSONルールのヘッダー付与をテストする
func TestJSONRuleHeaders(t *testing.T) {
	rules := NewRules()

	h := make(http.Header)
	rules.JSON.Apply(h, time.Now())

	expected := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, OPTIONS",
		"Access-Control-Allow-Headers": "Accept,Authorization,Cache-Control",
	}
	for name, want := range expected {
		if got := h.Get(name); got != want {
			t.Errorf("%sが一致しません: got %q, want %q", name, got, want)
		}
	}

	// キャッシュ系のヘッダーは付与されない
	if h.Get("Cache-Control") != "" {
		t.Error("JSONルールにCache-Controlが付与されています")
	}
	if h.Get("Expires") != "" {
		t.Error("JSONルールにExpiresが付与されています")
	}
}

// TestHeaderSetOrder はヘッダー集合が定義順に適用されることをテストする
func TestHeaderSetOrder(t *testing.T) {
	hs := HeaderSet{
		{Name: "X-First", Value: "1"},
		{Name: "X-Second", Value: "2"},
		{Name: "X-First", Value: "overwritten"},
	}

	h := make(http.Header)
	hs.Apply(h)

	// 同名キーは後勝ちで一意になる
	if got := h.Get("X-First"); got != "overwritten" {
		t.Errorf("同名ヘッダーの上書きが一致しません: got %q", got)
	}
	if len(h.Values("X-First")) != 1 {
		t.Errorf("同名ヘッダーが重複しています: %v", h.Values("X-First"))
	}
}
