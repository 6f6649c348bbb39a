// Package server は、HTTPサーバーとギャラリー配信を管理します。
//
// このパッケージは、HTTPサーバーの起動、ルーティング、
// 静的画像ファイルの配信を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - ギャラリーファイルの配信（GET/HEAD）
//   - JSONメタデータへのCORSプリフライト応答（OPTIONS）
//   - キャッシュ・CORSヘッダーの付与
//   - エラーのHTTPステータスへの変換
//
// 仕様:
//   - ルーティングはgin-gonic/ginを使用
//   - リクエストごとに独立・ステートレスに処理する
//   - ルールとMIMEテーブルは起動時に構築し、全ハンドラで共有する
//   - グレースフルシャットダウンに対応
//   - 多数クライアントの同時接続をサポート
package server
