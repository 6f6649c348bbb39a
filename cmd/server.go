// Package main はShashinkanサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"shashinkan/internal/config"
	"shashinkan/internal/index"
	"shashinkan/internal/server"
)

func main() {
	// コマンドラインオプション
	var (
		host      = flag.String("host", "", "サーバーのホスト (デフォルト: 0.0.0.0)")
		port      = flag.Int("port", 0, "サーバーのポート (デフォルト: 8080)")
		root      = flag.String("root", "", "ギャラリーのルートディレクトリ (デフォルト: ./gallery)")
		genIndex  = flag.Bool("index", false, "起動前にindex.jsonとサムネイルを再生成")
		indexOnly = flag.Bool("index-only", false, "インデックスの生成のみを行い終了")
		dryRun    = flag.Bool("dry-run", false, "インデックス生成で書き込みを行わない")
		help      = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("Shashinkan")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *root != "" {
		cfg.Gallery.Root = *root
	}
	if *dryRun {
		cfg.Index.DryRun = true
	}

	// コンテキストを作成
	ctx := context.Background()

	// インデックスの生成
	if *genIndex || *indexOnly || cfg.Index.Enabled {
		gen := index.NewGenerator(cfg.Gallery.Root, cfg.Index)
		if err := gen.Run(ctx); err != nil {
			log.Fatalf("インデックスの生成に失敗しました: %v", err)
		}
		if *indexOnly {
			return
		}
	}

	// サーバーを作成
	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("サーバーの作成に失敗しました: %v", err)
	}

	// サーバーを起動
	log.Printf("Shashinkan サーバーを起動します: %s", cfg.ServerAddress())
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
