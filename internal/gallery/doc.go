// Package gallery ギャラリー配信のルーティングポリシーを担う
//
// # 責務
// - URLパスからギャラリールート配下のファイルへの解決
// - ディレクトリトラバーサルとルート外シンボリックリンクの拒否
// - 拡張子からContent-Typeへの変換テーブルの提供
// - ルートルール（デフォルト / JSONメタデータ）とヘッダー集合の提供
//
// # 仕様
// - ルールと変換テーブルは起動時に構築され、以降は読み取り専用
// - 全ハンドラ間で同期なしに共有できる（実行時の変更は存在しない）
// - ディレクトリ一覧は常に禁止（index.htmlがある場合のみ配信）
// - ルート外を指すシンボリックリンクはForbiddenとして扱う
package gallery
