package config

import (
	"fmt"
	"os"
	"time"

	"shashinkan/internal/index"

	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Gallery GalleryConfig `yaml:"gallery"`
	Index   index.Config  `yaml:"index"`
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string `yaml:"host"` // リッスンするホスト
	Port int    `yaml:"port"` // リッスンするポート番号

	// タイムアウト設定
	ReadTimeout  Duration `yaml:"read_timeout"`  // 読み込みタイムアウト
	WriteTimeout Duration `yaml:"write_timeout"` // 書き込みタイムアウト
}

// Duration はYAMLで"10s"形式の時間指定を受け付けるtime.Durationのラッパー
type Duration time.Duration

// UnmarshalYAML はyaml.Unmarshalerの実装
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("時間指定の解析に失敗 (%s): %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// GalleryConfig はギャラリー配信の設定
type GalleryConfig struct {
	// 配信対象のルートディレクトリ
	// 配下のアルバムディレクトリと画像ファイルが配信コーパスの全てになる
	Root string `yaml:"root"`
}

// Load は設定を読み込む
// デフォルト値の上にSHASHINKAN_CONFIGで指定したYAMLファイルを重ね、
// 最後に環境変数で上書きする
func Load() (*Config, error) {
	// デフォルト設定を作成
	cfg := &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  Duration(10 * time.Second),
			WriteTimeout: Duration(30 * time.Second),
		},
		Gallery: GalleryConfig{
			Root: "./gallery",
		},
		Index: index.DefaultConfig(),
	}

	// 設定ファイルがあれば読み込む
	if path := os.Getenv("SHASHINKAN_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("設定ファイルの解析に失敗: %w", err)
		}
	}

	// 環境変数で上書き
	cfg.Server.Host = getEnvOrDefault("SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvAsIntOrDefault("PORT", cfg.Server.Port)
	cfg.Gallery.Root = getEnvOrDefault("GALLERY_ROOT", cfg.Gallery.Root)

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
// ギャラリールートの実在確認は起動時にResolverが行う
func (c *Config) Validate() error {
	// サーバー設定の検証
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}

	// ギャラリー設定の検証
	if c.Gallery.Root == "" {
		return fmt.Errorf("ギャラリールートが設定されていません")
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}
