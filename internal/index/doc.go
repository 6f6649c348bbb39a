// Package index ギャラリーのインデックスとサムネイルの生成を担う
//
// # 責務
// - アルバムディレクトリの走査と画像ファイルの検証
// - アルバムごとのindex.json（画像メタデータ一覧）の生成
// - ルートindex.json（アルバム一覧）の生成
// - ImageMagick経由でのサムネイル生成
//
// # 仕様
// - ギャラリールート直下の各ディレクトリを1アルバムとして扱う
// - 画像はヘッダーをデコードして検証し、壊れたファイルはスキップする
// - index.jsonは一時ファイルに書いてからリネームする（配信中の部分読みを防ぐ）
// - DryRunでは書き込みを行わず、実行予定の内容のみログに出す
//
// # 前提要件
//   - ImageMagick: サムネイル生成に使用
//     Ubuntu/Debian: sudo apt install imagemagick
//     Red Hat/Fedora: sudo dnf install ImageMagick
package index
